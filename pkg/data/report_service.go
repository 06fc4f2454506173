package data

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"os"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/pkg/errors"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/internal/output"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

//go:embed templates/route_report.html
var reportTemplateHTML string

var reportTmpl = template.Must(template.New("route_report").Parse(reportTemplateHTML))

type reportService struct {
	config *configs.Config
	logger *slog.Logger
}

func NewReportService(config *configs.Config, logger *slog.Logger) definition.ReportService {
	return &reportService{config: config, logger: logger}
}

type reportData struct {
	Origin        string
	Destination   string
	DistanceKm    float64
	Duration      string
	OneWayCost    float64
	RoundTripCost float64
	Currency      string
	ImagePath     string
	ImageWidth    int
	Version       string
	Date          string
}

// createPDF renders HTML into a single-page PDF at outputPath. It is a
// package variable so tests can run the builder without a wkhtmltopdf
// binary installed.
var createPDF = func(html []byte, outputPath string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return err
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Dpi.Set(150)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.Encoding.Set("UTF-8")
	page.DisableSmartShrinking.Set(true)
	page.EnableLocalFileAccess.Set(true)

	pdfg.AddPage(page)
	if err = pdfg.Create(); err != nil {
		return err
	}
	return pdfg.WriteFile(outputPath)
}

// Build embeds the map image through a temporary file that is removed on
// every exit path, then writes the finished document to OutputPath.
func (s *reportService) Build(_ context.Context, req *definition.BuildReportRequest) error {
	tmp, err := os.CreateTemp("", "route_map_*.png")
	if err != nil {
		return &definition.DocumentWriteError{Err: errors.Wrap(err, "ReportService.Build: temp image")}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(req.Image); err != nil {
		tmp.Close()
		return &definition.DocumentWriteError{Err: errors.Wrap(err, "ReportService.Build: write temp image")}
	}
	if err = tmp.Close(); err != nil {
		return &definition.DocumentWriteError{Err: errors.Wrap(err, "ReportService.Build: close temp image")}
	}

	var buf bytes.Buffer
	err = reportTmpl.Execute(&buf, &reportData{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DistanceKm:    req.Route.DistanceKm,
		Duration:      req.Route.DurationText,
		OneWayCost:    req.OneWayCost,
		RoundTripCost: req.RoundTripCost,
		Currency:      s.config.Report.Currency,
		ImagePath:     tmpPath,
		ImageWidth:    s.config.Report.ImageWidth,
		Version:       s.config.Version,
		Date:          output.Now().Format("Jan 2, 2006"),
	})
	if err != nil {
		return &definition.DocumentWriteError{Err: errors.Wrap(err, "ReportService.Build: render template")}
	}

	if err = createPDF(buf.Bytes(), req.OutputPath); err != nil {
		return &definition.DocumentWriteError{Err: errors.Wrap(err, "ReportService.Build")}
	}
	s.logger.Debug("report written", slog.String("path", req.OutputPath))
	return nil
}
