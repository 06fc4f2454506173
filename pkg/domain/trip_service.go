package domain

import (
	"context"
	"log/slog"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

type tripService struct {
	directions definition.DirectionsService
	staticMaps definition.StaticMapService
	reports    definition.ReportService
	config     *configs.Config
	logger     *slog.Logger
}

func NewTripService(
	directions definition.DirectionsService,
	staticMaps definition.StaticMapService,
	reports definition.ReportService,
	config *configs.Config,
	logger *slog.Logger,
) definition.TripService {
	return &tripService{
		directions: directions,
		staticMaps: staticMaps,
		reports:    reports,
		config:     config,
		logger:     logger,
	}
}

// BuildReport runs fetch, render and build in order. The first failure
// aborts the run; no later stage is entered after an error.
func (s *tripService) BuildReport(ctx context.Context, request *definition.BuildTripRequest) (*definition.TripSummary, error) {
	route, err := s.directions.FetchRoute(ctx, request.Origin, request.Destination)
	if err != nil {
		return nil, err
	}

	oneWay := route.DistanceKm * s.config.Report.RatePerKm
	roundTrip := oneWay * 2

	image, err := s.staticMaps.RenderRoute(ctx, route.EncodedPath)
	if err != nil {
		return nil, err
	}

	err = s.reports.Build(ctx, &definition.BuildReportRequest{
		Origin:        request.Origin,
		Destination:   request.Destination,
		Route:         route,
		Image:         image,
		OneWayCost:    oneWay,
		RoundTripCost: roundTrip,
		OutputPath:    request.OutputPath,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("trip report built",
		slog.String("output", request.OutputPath),
		slog.Float64("oneWayCost", oneWay))
	return &definition.TripSummary{
		Route:         route,
		OneWayCost:    oneWay,
		RoundTripCost: roundTrip,
		OutputPath:    request.OutputPath,
	}, nil
}
