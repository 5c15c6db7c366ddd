package domain

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestFeetToMeters(t *testing.T) {
	is := is.New(t)

	m := FeetToMeters(100.0)

	is.True(math.Abs(m-30.48) <= 1e-6) // 100 feet is 30.48 meters
}

func TestFeetToMetersZero(t *testing.T) {
	is := is.New(t)
	is.Equal(FeetToMeters(0), 0.0)
}

func TestNewBoundingBoxIsCenteredOnCoordinate(t *testing.T) {
	is := is.New(t)

	box := NewBoundingBox(NewCoordinate(-75.0838, 40.0086), 0.5)

	is.Equal(box.MinLongitude, -75.5838)
	is.Equal(box.MaxLongitude, -74.5838)
	is.Equal(box.MinLatitude, 39.5086)
	is.Equal(box.MaxLatitude, 40.5086)
}

func TestBoundingBoxStringUsesSixDecimals(t *testing.T) {
	is := is.New(t)

	box := NewBoundingBox(NewCoordinate(-75.5, 40.0), 0.5)

	is.Equal(box.String(), "-76.000000,39.500000,-75.000000,40.500000")
}
