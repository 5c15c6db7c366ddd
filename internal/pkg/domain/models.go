package domain

import "fmt"

// metersPerFoot is the international foot definition.
const metersPerFoot = 0.3048

// FeetToMeters converts a vertical measure in feet to meters.
func FeetToMeters(feet float64) float64 {
	return feet * metersPerFoot
}

// Coordinate is a position in decimal degrees, WGS84, longitude first.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func NewCoordinate(longitude, latitude float64) Coordinate {
	return Coordinate{Longitude: longitude, Latitude: latitude}
}

// BoundingBox is a geographic search window.
type BoundingBox struct {
	MinLongitude float64
	MinLatitude  float64
	MaxLongitude float64
	MaxLatitude  float64
}

// NewBoundingBox returns a box centered on c, extending halfWidth degrees in
// each direction along both axes.
func NewBoundingBox(c Coordinate, halfWidth float64) BoundingBox {
	return BoundingBox{
		MinLongitude: c.Longitude - halfWidth,
		MinLatitude:  c.Latitude - halfWidth,
		MaxLongitude: c.Longitude + halfWidth,
		MaxLatitude:  c.Latitude + halfWidth,
	}
}

// String renders the box as minLon,minLat,maxLon,maxLat with six decimals,
// the form the NWIS site service expects in its bBox parameter.
func (b BoundingBox) String() string {
	return fmt.Sprintf("%.6f,%.6f,%.6f,%.6f", b.MinLongitude, b.MinLatitude, b.MaxLongitude, b.MaxLatitude)
}

// StationRecord is the resolved identity of a gauging station.
type StationRecord struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
	AltitudeM  float64    `json:"altitude"`
	Datum      string     `json:"datum"`
}

// Reach is a single flow line in a drainage network, identified by its
// NHDPlus common identifier.
type Reach struct {
	ID       string  `json:"id"`
	AreaSqKm float64 `json:"areasqkm"`
}

// DrainageNetwork is the aggregated watershed upstream of a station.
type DrainageNetwork struct {
	NetworkID        string            `json:"networkId"`
	Tributaries      []Reach           `json:"tributaries"`
	MainChannel      []string          `json:"mainChannel"`
	DrainageAreaSqKm float64           `json:"drainageAreaSqKm"`
	Basin            FeatureCollection `json:"basin"`
}
