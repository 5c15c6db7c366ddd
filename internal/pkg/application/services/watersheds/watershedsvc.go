package watersheds

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/clients/nldi"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/repositories/basincache"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("api-hydrodata/svcs/watersheds")

//go:generate moq -rm -out watershedsvc_mock.go . WatershedService

// WatershedService aggregates the drainage network upstream of a station
// into a single summary, basin geometry included.
type WatershedService interface {
	Resolve(ctx context.Context, stationID string) (domain.DrainageNetwork, error)
}

func NewWatershedService(ctx context.Context, log zerolog.Logger, client nldi.NetworkClient, cache basincache.BasinCache) WatershedService {
	return &watershedSvc{
		client: client,
		cache:  cache,

		ctx: ctx,
		log: log,
	}
}

type watershedSvc struct {
	client nldi.NetworkClient
	cache  basincache.BasinCache

	ctx context.Context
	log zerolog.Logger
}

func (svc *watershedSvc) Resolve(ctx context.Context, stationID string) (domain.DrainageNetwork, error) {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-watershed")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	networkID, err := svc.client.NetworkIDForStation(ctx, stationID)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to locate station %s in the drainage network", stationID)
		return domain.DrainageNetwork{}, err
	}

	// the two traces are independent, run them concurrently and join before
	// aggregating anything
	var tributaryTrace, mainChannel []string

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ids, err := svc.client.Trace(groupCtx, networkID, nldi.UpstreamTributaries)
		if err != nil {
			return err
		}
		tributaryTrace = ids
		return nil
	})

	g.Go(func() error {
		ids, err := svc.client.Trace(groupCtx, networkID, nldi.UpstreamMain)
		if err != nil {
			return err
		}
		mainChannel = ids
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error().Err(err).Msgf("failed to trace network %s", networkID)
		return domain.DrainageNetwork{}, err
	}

	// a reach can appear more than once in a trace, areas are summed over
	// the deduplicated set only
	set := map[string]struct{}{}
	for _, id := range tributaryTrace {
		set[id] = struct{}{}
	}

	reachIDs := maps.Keys(set)
	slices.Sort(reachIDs)

	areas, err := svc.client.Catchments(ctx, reachIDs)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to retrieve catchments for network %s", networkID)
		return domain.DrainageNetwork{}, err
	}

	tributaries := make([]domain.Reach, 0, len(reachIDs))
	totalArea := 0.0

	for _, id := range reachIDs {
		area := areas[id]
		tributaries = append(tributaries, domain.Reach{ID: id, AreaSqKm: area})
		totalArea += area
	}

	basin, err := svc.basinForStation(ctx, stationID, networkID)
	if err != nil {
		return domain.DrainageNetwork{}, err
	}

	return domain.DrainageNetwork{
		NetworkID:        networkID,
		Tributaries:      tributaries,
		MainChannel:      mainChannel,
		DrainageAreaSqKm: totalArea,
		Basin:            *basin,
	}, nil
}

// basinForStation consults the cache before the drainage service, and a
// fetched geometry is persisted before it is returned so that the next
// resolution is served from disk.
func (svc *watershedSvc) basinForStation(ctx context.Context, stationID, networkID string) (*domain.FeatureCollection, error) {
	var err error
	ctx, span := tracer.Start(ctx, "resolve-basin")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx)

	basin, found, err := svc.cache.Read(ctx, stationID)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to read cached basin for station %s", stationID)
		return nil, err
	}

	if found {
		return basin, nil
	}

	basin, err = svc.client.BasinPolygon(ctx, networkID)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to retrieve basin for network %s", networkID)
		return nil, err
	}

	if err = svc.cache.Write(ctx, stationID, basin); err != nil {
		logger.Error().Err(err).Msgf("failed to persist basin for station %s", stationID)
		return nil, err
	}

	logger.Info().Msgf("cached basin geometry for station %s", stationID)

	// every later resolution is served from disk, so this one hands out the
	// persisted form as well and all callers see the exact same bytes
	basin, found, err = svc.cache.Read(ctx, stationID)
	if err != nil {
		logger.Error().Err(err).Msgf("failed to read back persisted basin for station %s", stationID)
		return nil, err
	}

	if !found {
		err = fmt.Errorf("%w: basin for station %s is gone right after it was written", domain.ErrPersistence, stationID)
		return nil, err
	}

	return basin, nil
}
