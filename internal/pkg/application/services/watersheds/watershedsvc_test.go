package watersheds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/clients/nldi"
	"github.com/hydrologics/api-hydrodata/internal/pkg/infrastructure/repositories/basincache"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestResolveAggregatesTheUpstreamNetwork(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(t.TempDir()))

	network, err := svc.Resolve(context.Background(), "01467087")
	is.NoErr(err)

	is.Equal(network.NetworkID, "4781767")
	is.Equal(network.MainChannel, []string{"4781767", "4781765"})

	// the duplicated reach is counted once and the set is ordered
	is.Equal(len(network.Tributaries), 3)
	is.Equal(network.Tributaries[0].ID, "4781093")
	is.Equal(network.Tributaries[1].ID, "4781765")
	is.Equal(network.Tributaries[2].ID, "4781767")
	is.Equal(network.DrainageAreaSqKm, 4.0)

	is.Equal(len(client.CatchmentsCalls()), 1) // one batched catchment request
	is.Equal(client.CatchmentsCalls()[0].ReachIDs, []string{"4781093", "4781765", "4781767"})

	is.Equal(len(client.TraceCalls()), 2)
	modes := map[nldi.NavigationMode]bool{}
	for _, call := range client.TraceCalls() {
		modes[call.Mode] = true
	}
	is.True(modes[nldi.UpstreamTributaries])
	is.True(modes[nldi.UpstreamMain])
}

func TestSecondResolveServesBasinFromCache(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(t.TempDir()))

	first, err := svc.Resolve(context.Background(), "01467087")
	is.NoErr(err)

	second, err := svc.Resolve(context.Background(), "01467087")
	is.NoErr(err)

	is.Equal(len(client.BasinPolygonCalls()), 1) // the second resolution must not fetch geometry

	// the raw coordinate bytes are the persisted compact form on both
	// resolutions, even though the mocked client hands the geometry out the
	// way a pretty printing producer would format it
	firstCoords := string(first.Basin.Features[0].Geometry.Coordinates)
	secondCoords := string(second.Basin.Features[0].Geometry.Coordinates)

	is.Equal(firstCoords, `[[[-75.139,40.001],[-75.043,40.001],[-75.043,40.072],[-75.139,40.001]]]`)
	is.Equal(firstCoords, secondCoords) // cached geometry is bit identical

	firstBasin, err := json.Marshal(first.Basin)
	is.NoErr(err)
	secondBasin, err := json.Marshal(second.Basin)
	is.NoErr(err)

	is.Equal(string(firstBasin), string(secondBasin))
}

func TestCorruptCacheEntryIsNeverRefetched(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)

	dataDir := t.TempDir()
	is.NoErr(os.MkdirAll(filepath.Join(dataDir, "01467087"), 0o755))
	is.NoErr(os.WriteFile(filepath.Join(dataDir, "01467087", "geometry.geojson"), []byte("{broken"), 0o644))

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(dataDir))

	_, err := svc.Resolve(context.Background(), "01467087")
	is.True(errors.Is(err, domain.ErrPersistence))
	is.Equal(len(client.BasinPolygonCalls()), 0) // corruption must surface, not trigger a refetch
}

func TestFailedBasinWriteFailsTheResolution(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)

	dataDir := t.TempDir()
	// a file where the station directory should be makes the write fail
	is.NoErr(os.WriteFile(filepath.Join(dataDir, "01467087"), []byte{}, 0o644))

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(dataDir))

	_, err := svc.Resolve(context.Background(), "01467087")
	is.True(errors.Is(err, domain.ErrPersistence))
	is.Equal(len(client.BasinPolygonCalls()), 1) // the geometry was fetched but could not be kept
}

func TestTraceFailureAbortsBeforeAggregation(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)
	client.TraceFunc = func(ctx context.Context, networkID string, mode nldi.NavigationMode) ([]string, error) {
		return nil, fmt.Errorf("%w: drainage service returned status code 502", domain.ErrUpstreamService)
	}

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(t.TempDir()))

	_, err := svc.Resolve(context.Background(), "01467087")
	is.True(errors.Is(err, domain.ErrUpstreamService))
	is.Equal(len(client.CatchmentsCalls()), 0)
}

func TestEmptyTraceYieldsZeroArea(t *testing.T) {
	is := is.New(t)
	client := defaultNetworkClientMock(is)
	client.TraceFunc = func(ctx context.Context, networkID string, mode nldi.NavigationMode) ([]string, error) {
		return []string{}, nil
	}
	client.CatchmentsFunc = func(ctx context.Context, reachIDs []string) (map[string]float64, error) {
		return map[string]float64{}, nil
	}

	svc := NewWatershedService(context.Background(), zerolog.Logger{}, client, basincache.New(t.TempDir()))

	network, err := svc.Resolve(context.Background(), "01467087")
	is.NoErr(err)
	is.Equal(network.DrainageAreaSqKm, 0.0)
	is.Equal(len(network.Tributaries), 0)
}

func defaultNetworkClientMock(is *is.I) *nldi.NetworkClientMock {
	return &nldi.NetworkClientMock{
		NetworkIDForStationFunc: func(ctx context.Context, stationID string) (string, error) {
			return "4781767", nil
		},
		TraceFunc: func(ctx context.Context, networkID string, mode nldi.NavigationMode) ([]string, error) {
			if mode == nldi.UpstreamMain {
				return []string{"4781767", "4781765"}, nil
			}
			// tributary traces revisit reaches where branches rejoin
			return []string{"4781767", "4781765", "4781093", "4781765"}, nil
		},
		CatchmentsFunc: func(ctx context.Context, reachIDs []string) (map[string]float64, error) {
			return map[string]float64{
				"4781767": 1.25,
				"4781765": 2.5,
				"4781093": 0.25,
			}, nil
		},
		BasinPolygonFunc: func(ctx context.Context, networkID string) (*domain.FeatureCollection, error) {
			return testBasin(is), nil
		},
	}
}

func testBasin(is *is.I) *domain.FeatureCollection {
	// formatted the way a pretty printing producer would send it
	const body = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [ [ [-75.139, 40.001], [-75.043, 40.001], [-75.043, 40.072], [-75.139, 40.001] ] ]
      }
    }
  ]
}`

	fc := &domain.FeatureCollection{}
	is.NoErr(json.Unmarshal([]byte(body), fc))
	fc.EnsureCRS()

	return fc
}
