package domain

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

const basinJSON = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[-75.583800,39.508600],[-74.583800,39.508600],[-74.583800,40.508600],[-75.583800,39.508600]]]}}]}`

func TestFeatureCollectionSurvivesRoundTrip(t *testing.T) {
	is := is.New(t)

	fc := FeatureCollection{}
	is.NoErr(json.Unmarshal([]byte(basinJSON), &fc))

	first, err := json.Marshal(fc)
	is.NoErr(err)

	again := FeatureCollection{}
	is.NoErr(json.Unmarshal(first, &again))

	second, err := json.Marshal(again)
	is.NoErr(err)

	is.Equal(string(first), string(second)) // encoding must be stable across cache round trips
}

func TestPolygonRingsDecodeCoordinates(t *testing.T) {
	is := is.New(t)

	fc := FeatureCollection{}
	is.NoErr(json.Unmarshal([]byte(basinJSON), &fc))

	rings, err := fc.Features[0].Geometry.PolygonRings()
	is.NoErr(err)

	is.Equal(len(rings), 1)
	is.Equal(len(rings[0]), 4)
	is.Equal(rings[0][0][0], -75.5838)
}

func TestCompactCoordinatesStripsFormatting(t *testing.T) {
	is := is.New(t)

	g := Geometry{
		Type:        GeometryTypePolygon,
		Coordinates: json.RawMessage("[ [ [-75.5, 40.0],\n    [-75.4, 40.0], [-75.4, 40.1], [-75.5, 40.0] ] ]"),
	}

	is.NoErr(g.CompactCoordinates())
	is.Equal(string(g.Coordinates), `[[[-75.5,40.0],[-75.4,40.0],[-75.4,40.1],[-75.5,40.0]]]`)

	is.NoErr(g.CompactCoordinates()) // compacting is idempotent
	is.Equal(string(g.Coordinates), `[[[-75.5,40.0],[-75.4,40.0],[-75.4,40.1],[-75.5,40.0]]]`)
}

func TestValidateRejectsUnsupportedGeometry(t *testing.T) {
	is := is.New(t)

	g := Geometry{Type: "Point", Coordinates: json.RawMessage(`[-75.5,40.0]`)}

	err := g.Validate()
	is.True(err != nil) // points cannot describe a basin
}

func TestValidateRejectsEmptyCollection(t *testing.T) {
	is := is.New(t)

	fc := NewFeatureCollection()

	err := fc.Validate()
	is.True(err != nil)
}

func TestEnsureCRSOnlyFillsMissingTag(t *testing.T) {
	is := is.New(t)

	fc := FeatureCollection{Type: "FeatureCollection"}
	fc.EnsureCRS()
	is.Equal(fc.CRS.Properties.Name, CRSNameWGS84)

	fc.CRS.Properties.Name = "urn:ogc:def:crs:EPSG::3857"
	fc.EnsureCRS()
	is.Equal(fc.CRS.Properties.Name, "urn:ogc:def:crs:EPSG::3857") // an existing tag is left alone
}
