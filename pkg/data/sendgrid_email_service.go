package data

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

const subjectRouteReport = "Route report: %s to %s"

var errNoRecipient = errors.New("no recipient to send to. aborting")

type emailsService struct {
	config *configs.Config
	logger *slog.Logger
}

func NewSendgridEmailService(config *configs.Config, logger *slog.Logger) definition.EmailsService {
	return &emailsService{config: config, logger: logger}
}

// SendReport mails the finished PDF as an attachment. It runs only after
// the report exists on disk, so a delivery failure never loses the report.
func (s *emailsService) SendReport(_ context.Context, req *definition.SendReportRequest) error {
	if req.To == "" {
		return errNoRecipient
	}
	pdf, err := os.ReadFile(req.OutputPath)
	if err != nil {
		return errors.Wrap(err, "EmailsService.SendReport: read report")
	}

	m := s.makeMail(
		fmt.Sprintf(subjectRouteReport, req.Origin, req.Destination),
		fmt.Sprintf("Route report for %s to %s is attached.", req.Origin, req.Destination),
		mail.NewEmail("", req.To),
	)

	a := mail.NewAttachment()
	a.SetContent(base64.StdEncoding.EncodeToString(pdf))
	a.SetType("application/pdf")
	a.SetFilename(filepath.Base(req.OutputPath))
	a.SetDisposition("attachment")
	m.AddAttachment(a)

	return s.send(m)
}

func (s *emailsService) makeMail(subject, body string, tos ...*mail.Email) *mail.SGMailV3 {
	from := s.config.SendGrid.From
	p := mail.NewPersonalization()
	p.AddTos(tos...)

	m := mail.NewV3Mail()
	m.Subject = subject
	m.SetFrom(mail.NewEmail(from.Name, from.Email))
	m.AddContent(mail.NewContent("text/plain", body))
	m.AddPersonalizations(p)
	return m
}

func (s *emailsService) send(m *mail.SGMailV3) error {
	sendGrid := s.config.SendGrid
	request := sendgrid.GetRequest(sendGrid.APIKey, sendGrid.SendEndpoint, sendGrid.Host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)
	response, err := sendgrid.API(request)
	if err != nil {
		return errors.Wrap(err, "EmailsService.send")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("EmailsService.send: status %d: %s", response.StatusCode, response.Body)
	}
	s.logger.Debug("report emailed", slog.Int("status", response.StatusCode))
	return nil
}
