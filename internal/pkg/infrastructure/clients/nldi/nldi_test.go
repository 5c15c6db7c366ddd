package nldi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hydrologics/api-hydrodata/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestNetworkIDForStation(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, nwissiteJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	networkID, err := client.NetworkIDForStation(context.Background(), "01467087")
	is.NoErr(err)
	is.Equal(networkID, "4781767")
}

func TestNetworkIDForStationMapsNotFound(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusNotFound, "")
	defer server.Close()

	client := NewNetworkClient(server.URL)

	_, err := client.NetworkIDForStation(context.Background(), "99999999")
	is.True(errors.Is(err, domain.ErrStationNotFound))
}

func TestTraceReturnsReachIDsInServedOrder(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, flowlinesJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	reachIDs, err := client.Trace(context.Background(), "4781767", UpstreamTributaries)
	is.NoErr(err)

	is.Equal(reachIDs, []string{"4781767", "4781765", "4781093"})
}

func TestTraceRejectsUnknownNavigationMode(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, flowlinesJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	_, err := client.Trace(context.Background(), "4781767", NavigationMode("downstream"))
	is.True(errors.Is(err, domain.ErrInvalidArgument))
}

func TestCatchmentsAreKeyedByFeatureID(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, catchmentsJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	areas, err := client.Catchments(context.Background(), []string{"4781767", "4781765"})
	is.NoErr(err)

	is.Equal(len(areas), 2)
	is.Equal(areas["4781767"], 1.9602)
	is.Equal(areas["4781765"], 4.4271)
}

func TestCatchmentsSkipsRequestForEmptySet(t *testing.T) {
	is := is.New(t)

	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewNetworkClient(server.URL)

	areas, err := client.Catchments(context.Background(), []string{})
	is.NoErr(err)
	is.Equal(len(areas), 0)
	is.True(!requested) // no upstream call for an empty reach set
}

func TestBasinPolygonTagsUntaggedGeometry(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, basinJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	fc, err := client.BasinPolygon(context.Background(), "4781767")
	is.NoErr(err)

	is.Equal(len(fc.Features), 1)
	is.Equal(fc.CRS.Properties.Name, domain.CRSNameWGS84)

	rings, err := fc.Features[0].Geometry.PolygonRings()
	is.NoErr(err)
	is.Equal(len(rings), 1)
}

func TestBasinPolygonCompactsCoordinateBytes(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusOK, basinJson)
	defer server.Close()

	client := NewNetworkClient(server.URL)

	fc, err := client.BasinPolygon(context.Background(), "4781767")
	is.NoErr(err)

	// the served body separates its coordinates with whitespace, the
	// returned bytes carry the compact form the cache persists
	is.Equal(string(fc.Features[0].Geometry.Coordinates), `[[[-75.139,40.001],[-75.043,40.001],[-75.043,40.072],[-75.139,40.072],[-75.139,40.001]]]`)
}

func TestBasinPolygonRejectsMultiFeatureResponse(t *testing.T) {
	is := is.New(t)

	fc := domain.FeatureCollection{}
	is.NoErr(json.Unmarshal([]byte(basinJson), &fc))
	fc.Features = append(fc.Features, fc.Features[0])
	body, err := json.Marshal(fc)
	is.NoErr(err)

	server := setupMockService(http.StatusOK, string(body))
	defer server.Close()

	client := NewNetworkClient(server.URL)

	_, err = client.BasinPolygon(context.Background(), "4781767")
	is.True(errors.Is(err, domain.ErrUpstreamService))
}

func TestResponsesAboveBadRequestWrapUpstreamError(t *testing.T) {
	is := is.New(t)
	server := setupMockService(http.StatusBadGateway, "")
	defer server.Close()

	client := NewNetworkClient(server.URL)

	_, err := client.Trace(context.Background(), "4781767", UpstreamMain)
	is.True(errors.Is(err, domain.ErrUpstreamService))
}

func setupMockService(responseCode int, responseBody string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(responseCode)
		w.Write([]byte(responseBody))
	}))
}

const nwissiteJson string = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"geometry": {
			"type": "Point",
			"coordinates": [-75.0838889, 40.00861111]
		},
		"properties": {
			"identifier": "USGS-01467087",
			"name": "Frankford Creek at Castor Ave, Philadelphia, PA",
			"comid": "4781767",
			"uri": "https://waterdata.usgs.gov/nwis/inventory?agency_code=USGS&site_no=01467087"
		}
	}]
}`

const flowlinesJson string = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"geometry": {"type": "LineString", "coordinates": [[-75.084, 40.009], [-75.086, 40.012]]},
		"properties": {"nhdplus_comid": "4781767"}
	}, {
		"type": "Feature",
		"geometry": {"type": "LineString", "coordinates": [[-75.086, 40.012], [-75.091, 40.018]]},
		"properties": {"nhdplus_comid": "4781765"}
	}, {
		"type": "Feature",
		"geometry": {"type": "LineString", "coordinates": [[-75.091, 40.018], [-75.102, 40.031]]},
		"properties": {"nhdplus_comid": "4781093"}
	}]
}`

const catchmentsJson string = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"geometry": {"type": "Polygon", "coordinates": [[[-75.08, 40.0], [-75.1, 40.0], [-75.1, 40.02], [-75.08, 40.0]]]},
		"properties": {"featureid": 4781767, "areasqkm": 1.9602}
	}, {
		"type": "Feature",
		"geometry": {"type": "Polygon", "coordinates": [[[-75.1, 40.02], [-75.12, 40.02], [-75.12, 40.04], [-75.1, 40.02]]]},
		"properties": {"featureid": 4781765, "areasqkm": 4.4271}
	}]
}`

const basinJson string = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {},
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[-75.139, 40.001], [-75.043, 40.001], [-75.043, 40.072], [-75.139, 40.072], [-75.139, 40.001]]]
		}
	}]
}`
