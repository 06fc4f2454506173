package domain

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
)

type fakeDirections struct {
	route *definition.RouteResult
	err   error
	calls int
}

func (f *fakeDirections) FetchRoute(_ context.Context, origin, destination string) (*definition.RouteResult, error) {
	f.calls++
	return f.route, f.err
}

type fakeStaticMaps struct {
	image []byte
	err   error
	calls int
}

func (f *fakeStaticMaps) RenderRoute(_ context.Context, encodedPath string) ([]byte, error) {
	f.calls++
	return f.image, f.err
}

type fakeReports struct {
	err   error
	calls int
	last  *definition.BuildReportRequest
}

func (f *fakeReports) Build(_ context.Context, req *definition.BuildReportRequest) error {
	f.calls++
	f.last = req
	return f.err
}

func tripRequest() *definition.BuildTripRequest {
	return &definition.BuildTripRequest{
		Origin:      "Berlin",
		Destination: "Hamburg",
		OutputPath:  "route_map_test.pdf",
	}
}

func TestBuildReport_Costs(t *testing.T) {
	directions := &fakeDirections{route: &definition.RouteResult{
		DistanceKm:   289.123,
		DurationText: "3 hours 2 mins",
		EncodedPath:  "abc",
	}}
	staticMaps := &fakeStaticMaps{image: []byte("png")}
	reports := &fakeReports{}
	svc := NewTripService(directions, staticMaps, reports, configs.Default(), testLogger())

	summary, err := svc.BuildReport(context.Background(), tripRequest())

	require.NoError(t, err)
	assert.InDelta(t, 289.123*0.3, summary.OneWayCost, 1e-9)
	assert.InDelta(t, summary.OneWayCost*2, summary.RoundTripCost, 1e-9)
	assert.Equal(t, "route_map_test.pdf", summary.OutputPath)

	require.NotNil(t, reports.last)
	assert.Equal(t, []byte("png"), reports.last.Image)
	assert.Equal(t, "3 hours 2 mins", reports.last.Route.DurationText)
	assert.InDelta(t, summary.OneWayCost, reports.last.OneWayCost, 1e-9)
}

func TestBuildReport_ConfigurableRate(t *testing.T) {
	cfg := configs.Default()
	cfg.Report.RatePerKm = 0.5
	directions := &fakeDirections{route: &definition.RouteResult{DistanceKm: 100}}
	svc := NewTripService(directions, &fakeStaticMaps{}, &fakeReports{}, cfg, testLogger())

	summary, err := svc.BuildReport(context.Background(), tripRequest())

	require.NoError(t, err)
	assert.InDelta(t, 50.0, summary.OneWayCost, 1e-9)
	assert.InDelta(t, 100.0, summary.RoundTripCost, 1e-9)
}

func TestBuildReport_DirectionsFailureStopsPipeline(t *testing.T) {
	directions := &fakeDirections{err: errors.Wrap(definition.ErrNoRouteFound, "DirectionsService.FetchRoute")}
	staticMaps := &fakeStaticMaps{}
	reports := &fakeReports{}
	svc := NewTripService(directions, staticMaps, reports, configs.Default(), testLogger())

	_, err := svc.BuildReport(context.Background(), tripRequest())

	require.ErrorIs(t, err, definition.ErrNoRouteFound)
	assert.Equal(t, 0, staticMaps.calls, "static map must not be requested after a failed fetch")
	assert.Equal(t, 0, reports.calls)
}

func TestBuildReport_RenderFailureStopsPipeline(t *testing.T) {
	directions := &fakeDirections{route: &definition.RouteResult{DistanceKm: 10, EncodedPath: "abc"}}
	staticMaps := &fakeStaticMaps{err: &definition.ServiceError{Status: 500, Body: "boom"}}
	reports := &fakeReports{}
	svc := NewTripService(directions, staticMaps, reports, configs.Default(), testLogger())

	_, err := svc.BuildReport(context.Background(), tripRequest())

	var serviceErr *definition.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, 500, serviceErr.Status)
	assert.Equal(t, 0, reports.calls)
}

func TestBuildReport_ReportFailureSurfaces(t *testing.T) {
	directions := &fakeDirections{route: &definition.RouteResult{DistanceKm: 10, EncodedPath: "abc"}}
	reports := &fakeReports{err: &definition.DocumentWriteError{Err: errors.New("disk full")}}
	svc := NewTripService(directions, &fakeStaticMaps{}, reports, configs.Default(), testLogger())

	_, err := svc.BuildReport(context.Background(), tripRequest())

	var writeErr *definition.DocumentWriteError
	require.ErrorAs(t, err, &writeErr)
}
