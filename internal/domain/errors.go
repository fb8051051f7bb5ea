package domain

import "errors"

var (
	// ErrCacheMiss is returned when a shop has no cached snapshot
	ErrCacheMiss = errors.New("snapshot not found in cache")

	// ErrNoObservations is returned when a source yields an empty sequence
	ErrNoObservations = errors.New("source yielded no observations")

	// ErrUnknownShop is returned when a shop identifier is not registered
	ErrUnknownShop = errors.New("unknown shop identifier")

	// ErrRunInProgress is returned when a refresh is requested while a run is active
	ErrRunInProgress = errors.New("aggregation run already in progress")

	// ErrCacheUnavailable is returned when the snapshot store cannot be reached
	ErrCacheUnavailable = errors.New("snapshot store unavailable")
)
