package hydrology

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/stations"
	"github.com/hydrologics/api-hydrodata/internal/pkg/application/services/watersheds"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("api-hydrodata/svcs/hydrology")

// NewStationParams seeds a station construction. Exactly one of StationID
// and Coordinate identifies the station, Start and End bound the period of
// interest and are carried along untouched.
type NewStationParams struct {
	Start time.Time
	End   time.Time

	StationID  string
	Coordinate *domain.Coordinate
}

// HydrologyService builds fully resolved stations, watershed included.
type HydrologyService interface {
	NewStation(ctx context.Context, p NewStationParams) (*Station, error)
}

func NewHydrologyService(ctx context.Context, log zerolog.Logger, stationSvc stations.StationService, watershedSvc watersheds.WatershedService) HydrologyService {
	return &hydrologySvc{
		stations:   stationSvc,
		watersheds: watershedSvc,

		ctx: ctx,
		log: log,
	}
}

type hydrologySvc struct {
	stations   stations.StationService
	watersheds watersheds.WatershedService

	ctx context.Context
	log zerolog.Logger
}

func (svc *hydrologySvc) NewStation(ctx context.Context, p NewStationParams) (*Station, error) {
	var err error
	ctx, span := tracer.Start(ctx, "new-station")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	hasID := p.StationID != ""
	hasCoordinate := p.Coordinate != nil

	if hasID == hasCoordinate {
		err = fmt.Errorf("%w: exactly one of station id and coordinate must be supplied", domain.ErrInvalidArgument)
		return nil, err
	}

	var record domain.StationRecord

	if hasID {
		record, err = svc.stations.ResolveByID(ctx, p.StationID)
	} else {
		record, err = svc.stations.ResolveByCoordinate(ctx, *p.Coordinate)
	}

	if err != nil {
		return nil, err
	}

	// the watershed belongs to the resolved identity, which for coordinate
	// seeds is not something the caller supplied
	network, err := svc.watersheds.Resolve(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	logger.Info().Msgf("constructed station %s with %d tributaries upstream", record.ID, len(network.Tributaries))

	return &Station{
		start:   p.Start,
		end:     p.End,
		record:  record,
		network: network,
	}, nil
}

// Station is an immutable pairing of a resolved station record and its
// drainage network. Accessors hand out copies, so no caller can reach back
// into a constructed station.
type Station struct {
	start time.Time
	end   time.Time

	record  domain.StationRecord
	network domain.DrainageNetwork
}

func (s *Station) Start() time.Time {
	return s.start
}

func (s *Station) End() time.Time {
	return s.end
}

func (s *Station) Record() domain.StationRecord {
	return s.record
}

func (s *Station) Network() domain.DrainageNetwork {
	network := s.network

	network.Tributaries = slices.Clone(s.network.Tributaries)
	network.MainChannel = slices.Clone(s.network.MainChannel)

	if s.network.Basin.CRS != nil {
		crs := *s.network.Basin.CRS
		network.Basin.CRS = &crs
	}

	network.Basin.Features = make([]domain.Feature, len(s.network.Basin.Features))
	for i, f := range s.network.Basin.Features {
		f.Properties = cloneProperties(f.Properties)
		f.Geometry.Coordinates = slices.Clone(f.Geometry.Coordinates)
		network.Basin.Features[i] = f
	}

	return network
}

// cloneProperties copies a decoded JSON object all the way down. Feature
// properties can nest objects and arrays, and a shallow copy would leave
// those shared with the station.
func cloneProperties(p map[string]any) map[string]any {
	if p == nil {
		return nil
	}

	clone := make(map[string]any, len(p))
	for k, v := range p {
		clone[k] = clonePropertyValue(v)
	}

	return clone
}

func clonePropertyValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneProperties(v)
	case []any:
		clone := make([]any, len(v))
		for i := range v {
			clone[i] = clonePropertyValue(v[i])
		}
		return clone
	default:
		return v
	}
}

const reprMargin = 15

// String renders the classic four line station summary.
func (s *Station) String() string {
	b := strings.Builder{}

	fmt.Fprintf(&b, "%-*s", reprMargin, fmt.Sprintf("[ID: %s] ", s.record.ID))
	fmt.Fprintf(&b, "Watershed: %s\n", s.record.Name)
	fmt.Fprintf(&b, "%*sCoordinates: (%.3f, %.3f)\n", reprMargin, "", s.record.Coordinate.Longitude, s.record.Coordinate.Latitude)
	fmt.Fprintf(&b, "%*sAltitude: %.0f m above %s\n", reprMargin, "", s.record.AltitudeM, s.record.Datum)
	fmt.Fprintf(&b, "%*sDrainage area: %.0f sqkm.", reprMargin, "", s.network.DrainageAreaSqKm)

	return b.String()
}
