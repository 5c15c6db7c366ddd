package nldi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-hydrodata/clients/nldi")

// DefaultDrainageServiceURL is the public USGS hydro network linked data
// index.
const DefaultDrainageServiceURL string = "https://labs.waterdata.usgs.gov/api/nldi"

// NavigationMode selects the direction of a network trace.
type NavigationMode string

const (
	// UpstreamTributaries walks the entire network upstream of a reach,
	// tributaries included.
	UpstreamTributaries NavigationMode = "upstreamTributaries"
	// UpstreamMain follows the main channel upstream only.
	UpstreamMain NavigationMode = "upstreamMain"
)

func (m NavigationMode) path() (string, error) {
	switch m {
	case UpstreamTributaries:
		return "UT", nil
	case UpstreamMain:
		return "UM", nil
	}

	return "", fmt.Errorf("%w: unknown navigation mode %q", domain.ErrInvalidArgument, string(m))
}

//go:generate moq -rm -out nldi_mock.go . NetworkClient

// NetworkClient talks to an NLDI style drainage network service.
type NetworkClient interface {
	NetworkIDForStation(ctx context.Context, stationID string) (string, error)
	Trace(ctx context.Context, networkID string, mode NavigationMode) ([]string, error)
	Catchments(ctx context.Context, reachIDs []string) (map[string]float64, error)
	BasinPolygon(ctx context.Context, networkID string) (*domain.FeatureCollection, error)
}

func NewNetworkClient(drainageServiceURL string) NetworkClient {
	return &networkClient{drainageServiceURL: drainageServiceURL}
}

type networkClient struct {
	drainageServiceURL string
}

func (c *networkClient) NetworkIDForStation(ctx context.Context, stationID string) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "retrieve-network-id")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/linked-data/nwissite/USGS-%s", c.drainageServiceURL, stationID)

	body, status, err := c.fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if status == http.StatusNotFound {
		err = fmt.Errorf("%w: station %s is unknown to the drainage service", domain.ErrStationNotFound, stationID)
		return "", err
	}

	var fc struct {
		Features []struct {
			Properties struct {
				Comid string `json:"comid"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err = json.Unmarshal(body, &fc); err != nil {
		err = fmt.Errorf("%w: failed to unmarshal response: %s", domain.ErrUpstreamService, err.Error())
		return "", err
	}

	if len(fc.Features) == 0 {
		err = fmt.Errorf("%w: station %s is unknown to the drainage service", domain.ErrStationNotFound, stationID)
		return "", err
	}

	comid := fc.Features[0].Properties.Comid
	if comid == "" {
		err = fmt.Errorf("%w: response carried no network id", domain.ErrUpstreamService)
		return "", err
	}

	return comid, nil
}

func (c *networkClient) Trace(ctx context.Context, networkID string, mode NavigationMode) ([]string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "trace-flowlines")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	modePath, err := mode.path()
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/linked-data/comid/%s/navigation/%s/flowlines?distance=9999", c.drainageServiceURL, networkID, modePath)

	body, status, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		err = fmt.Errorf("%w: network id %s is unknown to the drainage service", domain.ErrUpstreamService, networkID)
		return nil, err
	}

	var fc struct {
		Features []struct {
			Properties struct {
				Comid string `json:"nhdplus_comid"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err = json.Unmarshal(body, &fc); err != nil {
		err = fmt.Errorf("%w: failed to unmarshal response: %s", domain.ErrUpstreamService, err.Error())
		return nil, err
	}

	reachIDs := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Properties.Comid != "" {
			reachIDs = append(reachIDs, f.Properties.Comid)
		}
	}

	return reachIDs, nil
}

func (c *networkClient) Catchments(ctx context.Context, reachIDs []string) (map[string]float64, error) {
	var err error
	ctx, span := tracer.Start(ctx, "retrieve-catchments")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	areas := map[string]float64{}

	if len(reachIDs) == 0 {
		return areas, nil
	}

	url := fmt.Sprintf("%s/nhdplus/catchments?comids=%s", c.drainageServiceURL, strings.Join(reachIDs, ","))

	body, status, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		err = fmt.Errorf("%w: catchments are unknown to the drainage service", domain.ErrUpstreamService)
		return nil, err
	}

	var fc struct {
		Features []struct {
			Properties struct {
				FeatureID json.Number `json:"featureid"`
				AreaSqKm  float64     `json:"areasqkm"`
			} `json:"properties"`
		} `json:"features"`
	}

	if err = json.Unmarshal(body, &fc); err != nil {
		err = fmt.Errorf("%w: failed to unmarshal response: %s", domain.ErrUpstreamService, err.Error())
		return nil, err
	}

	for _, f := range fc.Features {
		areas[f.Properties.FeatureID.String()] = f.Properties.AreaSqKm
	}

	return areas, nil
}

func (c *networkClient) BasinPolygon(ctx context.Context, networkID string) (*domain.FeatureCollection, error) {
	var err error
	ctx, span := tracer.Start(ctx, "retrieve-basin")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/linked-data/comid/%s/basin", c.drainageServiceURL, networkID)

	body, status, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		err = fmt.Errorf("%w: network id %s has no basin in the drainage service", domain.ErrUpstreamService, networkID)
		return nil, err
	}

	fc := &domain.FeatureCollection{}
	if err = json.Unmarshal(body, fc); err != nil {
		err = fmt.Errorf("%w: failed to unmarshal response: %s", domain.ErrUpstreamService, err.Error())
		return nil, err
	}

	if len(fc.Features) != 1 {
		err = fmt.Errorf("%w: basin response holds %d features, expected one", domain.ErrUpstreamService, len(fc.Features))
		return nil, err
	}

	if err = fc.Features[0].Geometry.Validate(); err != nil {
		err = fmt.Errorf("%w: basin geometry is invalid: %s", domain.ErrUpstreamService, err.Error())
		return nil, err
	}

	// the service is free to format its JSON, but callers compare and persist
	// basins byte for byte, so the coordinate bytes leave here in their
	// canonical compact form
	if err = fc.Features[0].Geometry.CompactCoordinates(); err != nil {
		err = fmt.Errorf("%w: %s", domain.ErrUpstreamService, err.Error())
		return nil, err
	}

	// tag untagged responses so that cached and fresh geometries compare equal
	fc.EnsureCRS()

	return fc, nil
}

func (c *networkClient) fetch(ctx context.Context, url string) ([]byte, int, error) {
	logger := logging.GetFromContext(ctx)

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %s", err.Error())
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to send request: %s", domain.ErrUpstreamService, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: failed to read response body: %s", domain.ErrUpstreamService, err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logger.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")

		return nil, resp.StatusCode, fmt.Errorf("%w: drainage service returned status code %d", domain.ErrUpstreamService, resp.StatusCode)
	}

	return body, resp.StatusCode, nil
}
