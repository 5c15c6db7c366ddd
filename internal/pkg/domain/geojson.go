package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	GeometryTypePolygon      = "Polygon"
	GeometryTypeMultiPolygon = "MultiPolygon"

	// CRSNameWGS84 is the urn form of the coordinate reference system used by
	// the drainage service and expected in persisted basin files.
	CRSNameWGS84 = "urn:ogc:def:crs:OGC:1.3:CRS84"
)

// FeatureCollection is a GeoJSON feature collection. Basin geometries are
// carried and persisted in this form.
type FeatureCollection struct {
	Type     string    `json:"type"`
	CRS      *CRS      `json:"crs,omitempty"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry keeps its coordinates as raw JSON so that geometries of any
// nesting depth survive decoding unchanged. The encoder compacts raw JSON
// when marshaling, so the compact byte form is the one that round trips
// byte for byte through the cache.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

type CRS struct {
	Type       string        `json:"type"`
	Properties CRSProperties `json:"properties"`
}

type CRSProperties struct {
	Name string `json:"name"`
}

// NewFeatureCollection returns an empty collection tagged with the WGS84
// reference system.
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{
		Type: "FeatureCollection",
		CRS: &CRS{
			Type:       "name",
			Properties: CRSProperties{Name: CRSNameWGS84},
		},
		Features: []Feature{},
	}
}

// EnsureCRS tags the collection with the WGS84 reference system if the
// producer left it out.
func (fc *FeatureCollection) EnsureCRS() {
	if fc.CRS == nil {
		fc.CRS = &CRS{
			Type:       "name",
			Properties: CRSProperties{Name: CRSNameWGS84},
		}
	}
}

// Validate checks that the collection holds at least one feature and that
// every geometry is a well formed polygon or multipolygon.
func (fc FeatureCollection) Validate() error {
	if len(fc.Features) == 0 {
		return fmt.Errorf("feature collection contains no features")
	}

	for i, f := range fc.Features {
		if err := f.Geometry.Validate(); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks that the geometry is a polygon or multipolygon and that
// its coordinates decode as such.
func (g Geometry) Validate() error {
	switch g.Type {
	case GeometryTypePolygon:
		rings, err := g.PolygonRings()
		if err != nil {
			return err
		}
		if len(rings) == 0 {
			return fmt.Errorf("polygon contains no rings")
		}
	case GeometryTypeMultiPolygon:
		polys, err := g.MultiPolygonRings()
		if err != nil {
			return err
		}
		if len(polys) == 0 {
			return fmt.Errorf("multipolygon contains no polygons")
		}
	default:
		return fmt.Errorf("unsupported geometry type %s", g.Type)
	}

	return nil
}

// CompactCoordinates rewrites the coordinate bytes in their compact form,
// the form the encoder persists them in. A producer is free to format its
// JSON, so freshly decoded and cached geometries only compare equal after
// compaction.
func (g *Geometry) CompactCoordinates() error {
	compacted := bytes.Buffer{}
	if err := json.Compact(&compacted, g.Coordinates); err != nil {
		return fmt.Errorf("failed to compact %s coordinates: %w", g.Type, err)
	}

	g.Coordinates = compacted.Bytes()

	return nil
}

// PolygonRings decodes the coordinates of a Polygon geometry.
func (g Geometry) PolygonRings() ([][][]float64, error) {
	if g.Type != GeometryTypePolygon {
		return nil, fmt.Errorf("geometry is a %s, not a %s", g.Type, GeometryTypePolygon)
	}

	rings := [][][]float64{}
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
		return nil, fmt.Errorf("failed to decode polygon coordinates: %w", err)
	}

	return rings, nil
}

// MultiPolygonRings decodes the coordinates of a MultiPolygon geometry.
func (g Geometry) MultiPolygonRings() ([][][][]float64, error) {
	if g.Type != GeometryTypeMultiPolygon {
		return nil, fmt.Errorf("geometry is a %s, not a %s", g.Type, GeometryTypeMultiPolygon)
	}

	polys := [][][][]float64{}
	if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
		return nil, fmt.Errorf("failed to decode multipolygon coordinates: %w", err)
	}

	return polys, nil
}
