package stations

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/clients/nwis"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("api-hydrodata/svcs/stations")

// DefaultSearchHalfWidth widens a coordinate into a one by one degree
// search window.
const DefaultSearchHalfWidth float64 = 0.5

//go:generate moq -rm -out stationsvc_mock.go . StationService

// StationService resolves station seeds, id or coordinate, into full
// station records.
type StationService interface {
	ResolveByID(ctx context.Context, stationID string) (domain.StationRecord, error)
	ResolveByCoordinate(ctx context.Context, c domain.Coordinate) (domain.StationRecord, error)
}

func NewStationService(ctx context.Context, log zerolog.Logger, directory nwis.SiteDirectory, searchHalfWidth float64) StationService {
	if searchHalfWidth <= 0 {
		searchHalfWidth = DefaultSearchHalfWidth
	}

	return &stationSvc{
		directory:       directory,
		searchHalfWidth: searchHalfWidth,

		ctx: ctx,
		log: log,
	}
}

type stationSvc struct {
	directory       nwis.SiteDirectory
	searchHalfWidth float64

	ctx context.Context
	log zerolog.Logger
}

func (svc *stationSvc) ResolveByID(ctx context.Context, stationID string) (domain.StationRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-station-by-id")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	record, err := svc.directory.LookupByID(ctx, stationID)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to resolve station %s", stationID)
		return domain.StationRecord{}, err
	}

	if !usable(record) {
		err = fmt.Errorf("%w: station %s has no usable record", domain.ErrStationNotFound, stationID)
		return domain.StationRecord{}, err
	}

	return record, nil
}

func (svc *stationSvc) ResolveByCoordinate(ctx context.Context, c domain.Coordinate) (domain.StationRecord, error) {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-nearest-station")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	box := domain.NewBoundingBox(c, svc.searchHalfWidth)

	candidates, err := svc.directory.LookupByBBox(ctx, box)
	if err != nil {
		logger.Error().Err(err).Msg("failed to search for stations")
		return domain.StationRecord{}, err
	}

	nearest, found := nearestTo(c, candidates)
	if !found {
		err = fmt.Errorf("%w: nothing usable inside %s", domain.ErrNoStationFound, box.String())
		return domain.StationRecord{}, err
	}

	logger.Info().Msgf("resolved (%f,%f) to station %s", c.Longitude, c.Latitude, nearest.ID)

	return nearest, nil
}

// nearestTo picks the candidate closest to c by squared planar distance in
// degree space. The window is narrow enough that the planar ranking matches
// the geodesic one. Coincident candidates resolve to the smallest site id.
func nearestTo(c domain.Coordinate, candidates []domain.StationRecord) (domain.StationRecord, bool) {
	usableCandidates := make([]domain.StationRecord, 0, len(candidates))
	for _, candidate := range candidates {
		if usable(candidate) {
			usableCandidates = append(usableCandidates, candidate)
		}
	}

	if len(usableCandidates) == 0 {
		return domain.StationRecord{}, false
	}

	// id order first, so that distance ties settle deterministically
	slices.SortFunc(usableCandidates, func(a, b domain.StationRecord) bool {
		return a.ID < b.ID
	})

	best := usableCandidates[0]
	bestDist := planarDistSq(c, best.Coordinate)

	for _, candidate := range usableCandidates[1:] {
		if d := planarDistSq(c, candidate.Coordinate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	return best, true
}

func planarDistSq(a, b domain.Coordinate) float64 {
	dLon := a.Longitude - b.Longitude
	dLat := a.Latitude - b.Latitude

	return dLon*dLon + dLat*dLat
}

// usable weeds out records that cannot seed a resolution, ids are required
// and gage altitudes below the vertical datum are considered bad data.
func usable(r domain.StationRecord) bool {
	return r.ID != "" && r.AltitudeM >= 0
}
