package domain

import "errors"

// Sentinel errors shared by the resolution and watershed services. Callers
// classify failures with errors.Is and map them to transport specific codes.
var (
	// ErrInvalidArgument flags caller input that fails validation before any
	// remote service is contacted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStationNotFound means a station id did not match any known station.
	ErrStationNotFound = errors.New("station not found")
	// ErrNoStationFound means a search window contained no usable station.
	ErrNoStationFound = errors.New("no station found within search window")
	// ErrUpstreamService wraps failures in the site or drainage services.
	ErrUpstreamService = errors.New("upstream service failure")
	// ErrPersistence wraps failures while reading or writing cached geometry.
	ErrPersistence = errors.New("persistence failure")
)
