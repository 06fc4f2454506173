package definition

import "context"

// RouteResult holds the facts extracted from the first leg of the first
// returned route. EncodedPath is passed through to the map renderer
// unmodified.
type RouteResult struct {
	DistanceKm   float64
	DurationText string
	EncodedPath  string
}

type DirectionsService interface {
	FetchRoute(ctx context.Context, origin, destination string) (*RouteResult, error)
}

type StaticMapService interface {
	RenderRoute(ctx context.Context, encodedPath string) ([]byte, error)
}

type BuildTripRequest struct {
	Origin      string
	Destination string
	OutputPath  string
}

type TripSummary struct {
	Route         *RouteResult
	OneWayCost    float64
	RoundTripCost float64
	OutputPath    string
}

type TripService interface {
	BuildReport(ctx context.Context, request *BuildTripRequest) (*TripSummary, error)
}
