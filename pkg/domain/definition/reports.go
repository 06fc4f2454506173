package definition

import "context"

type BuildReportRequest struct {
	Origin        string
	Destination   string
	Route         *RouteResult
	Image         []byte
	OneWayCost    float64
	RoundTripCost float64
	OutputPath    string
}

// ReportService lays the route facts and the map image out into a
// single-page document at OutputPath.
type ReportService interface {
	Build(ctx context.Context, request *BuildReportRequest) error
}

type SendReportRequest struct {
	To          string
	Origin      string
	Destination string
	OutputPath  string
}

type EmailsService interface {
	SendReport(ctx context.Context, request *SendReportRequest) error
}
