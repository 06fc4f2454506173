package data

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/VinothKuppanna/routemap-go/configs"
	"github.com/VinothKuppanna/routemap-go/pkg/domain/definition"
	"github.com/pkg/errors"
)

const pathStaticMap = "/maps/api/staticmap"

type staticMapService struct {
	apiKey     string
	config     *configs.Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewStaticMapService(apiKey string, config *configs.Config, logger *slog.Logger) definition.StaticMapService {
	return &staticMapService{
		apiKey: apiKey,
		config: config,
		httpClient: &http.Client{
			Timeout: config.Maps.Timeout,
		},
		logger: logger,
	}
}

// RenderRoute fetches a static map with the encoded path drawn as an
// overlay. The returned bytes are not validated here; decoding happens
// when the image is embedded into the report.
func (s *staticMapService) RenderRoute(ctx context.Context, encodedPath string) ([]byte, error) {
	params := url.Values{
		"size":    {s.config.Maps.Size},
		"scale":   {strconv.Itoa(s.config.Maps.Scale)},
		"maptype": {s.config.Maps.MapType},
		"path":    {"enc:" + encodedPath},
		"key":     {s.apiKey},
	}
	fullURL := s.config.Maps.StaticMapURL + pathStaticMap + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "StaticMapService.RenderRoute")
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, wireError(err, "StaticMapService.RenderRoute")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "StaticMapService.RenderRoute: read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrap(&definition.ServiceError{Status: resp.StatusCode, Body: string(body)}, "StaticMapService.RenderRoute")
	}

	s.logger.Debug("map rendered", slog.Int("bytes", len(body)))
	return body, nil
}
