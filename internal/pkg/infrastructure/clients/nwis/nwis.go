package nwis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-hydrodata/clients/nwis")

// DefaultSiteServiceURL is the public USGS water services site endpoint.
const DefaultSiteServiceURL string = "https://waterservices.usgs.gov/nwis/site"

//go:generate moq -rm -out nwis_mock.go . SiteDirectory

// SiteDirectory resolves gauging stations against an NWIS style site
// service, either by their id or by a geographic search window.
type SiteDirectory interface {
	LookupByID(ctx context.Context, stationID string) (domain.StationRecord, error)
	LookupByBBox(ctx context.Context, box domain.BoundingBox) ([]domain.StationRecord, error)
}

func NewSiteDirectory(siteServiceURL string) SiteDirectory {
	return &siteDirectory{siteServiceURL: siteServiceURL}
}

type siteDirectory struct {
	siteServiceURL string
}

func (d *siteDirectory) LookupByID(ctx context.Context, stationID string) (domain.StationRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "lookup-site-by-id")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if stationID == "" {
		err = fmt.Errorf("%w: station id must not be empty", domain.ErrInvalidArgument)
		return domain.StationRecord{}, err
	}

	url := fmt.Sprintf("%s?format=rdb&sites=%s&hasDataTypeCd=dv", d.siteServiceURL, stationID)

	rows, found, err := d.requestSites(ctx, url)
	if err != nil {
		return domain.StationRecord{}, err
	}

	if !found || len(rows) == 0 {
		err = fmt.Errorf("%w: no site with id %s", domain.ErrStationNotFound, stationID)
		return domain.StationRecord{}, err
	}

	// the site service may append rows for subsites, the first row is the
	// station itself
	record, ok := rows[0].record()
	if !ok {
		err = fmt.Errorf("%w: site %s record is incomplete", domain.ErrUpstreamService, stationID)
		return domain.StationRecord{}, err
	}

	return record, nil
}

func (d *siteDirectory) LookupByBBox(ctx context.Context, box domain.BoundingBox) ([]domain.StationRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "lookup-sites-by-bbox")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s?format=rdb&bBox=%s&hasDataTypeCd=dv", d.siteServiceURL, box.String())

	rows, found, err := d.requestSites(ctx, url)
	if err != nil {
		return nil, err
	}

	records := make([]domain.StationRecord, 0, len(rows))

	if !found {
		// the site service answers 404 when the window holds no sites
		return records, nil
	}

	for _, row := range rows {
		if record, ok := row.record(); ok {
			records = append(records, record)
		}
	}

	return records, nil
}

func (d *siteDirectory) requestSites(ctx context.Context, url string) ([]siteRow, bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "retrieve-sites")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx)

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request: %s", err.Error())
		return nil, false, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: failed to send request: %s", domain.ErrUpstreamService, err.Error())
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}

	if resp.StatusCode != http.StatusOK {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logger.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msg("request failed")

		err = fmt.Errorf("%w: site service returned status code %d", domain.ErrUpstreamService, resp.StatusCode)
		return nil, false, err
	}

	rows, err := parseRDB(resp.Body)
	if err != nil {
		err = fmt.Errorf("%w: %s", domain.ErrUpstreamService, err.Error())
		return nil, false, err
	}

	return rows, true, nil
}
