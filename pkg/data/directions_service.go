package data

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

const pathDirections = "/maps/api/directions/json"

type directionsService struct {
	apiKey     string
	config     *configs.Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewDirectionsService(apiKey string, config *configs.Config, logger *slog.Logger) definition.DirectionsService {
	return &directionsService{
		apiKey: apiKey,
		config: config,
		httpClient: &http.Client{
			Timeout: config.Maps.Timeout,
		},
		logger: logger,
	}
}

func (s *directionsService) FetchRoute(ctx context.Context, origin, destination string) (*definition.RouteResult, error) {
	params := url.Values{
		"origin":      {origin},
		"destination": {destination},
		"mode":        {"driving"},
		"units":       {"metric"},
		"key":         {s.apiKey},
	}
	fullURL := s.config.Maps.DirectionsURL + pathDirections + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "DirectionsService.FetchRoute")
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, wireError(err, "DirectionsService.FetchRoute")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "DirectionsService.FetchRoute: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(&definition.ServiceError{Status: resp.StatusCode, Body: string(body)}, "DirectionsService.FetchRoute")
	}

	var dr directionsResponse
	if err = json.Unmarshal(body, &dr); err != nil {
		return nil, errors.Wrap(err, "DirectionsService.FetchRoute: decode response")
	}
	if len(dr.Routes) == 0 || len(dr.Routes[0].Legs) == 0 {
		return nil, errors.Wrap(&definition.NoRouteError{Body: string(body)}, "DirectionsService.FetchRoute")
	}

	route := dr.Routes[0]
	leg := route.Legs[0]
	encoded := route.OverviewPolyline.Points
	// The path is otherwise opaque, but a polyline the renderer cannot draw
	// is better caught here than as a blank map.
	if _, err = maps.DecodePolyline(encoded); err != nil {
		return nil, errors.Wrap(err, "DirectionsService.FetchRoute: overview polyline")
	}

	result := &definition.RouteResult{
		DistanceKm:   float64(leg.Distance.Value) / 1000,
		DurationText: leg.Duration.Text,
		EncodedPath:  encoded,
	}
	s.logger.Debug("route fetched",
		slog.Float64("distanceKm", result.DistanceKm),
		slog.String("duration", result.DurationText))
	return result, nil
}

// wireError maps transport-level failures. A timeout is still a service
// error, just one without a status line.
func wireError(err error, op string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return errors.Wrap(&definition.ServiceError{Body: "request timed out: " + uerr.Error()}, op)
	}
	return errors.Wrap(err, op)
}

// Directions API response, trimmed to the fields read.

type directionsResponse struct {
	Routes []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Legs             []directionsLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

type directionsLeg struct {
	Distance struct {
		Value int `json:"value"` // meters
	} `json:"distance"`
	Duration struct {
		Text string `json:"text"`
	} `json:"duration"`
}
