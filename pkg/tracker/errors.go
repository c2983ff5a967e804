package tracker

import "errors"

// Tracker-specific errors.
var (
	ErrUnsupportedTracker = errors.New("unsupported tracker")
	ErrNotFound           = errors.New("record not found")
	ErrUnauthorized       = errors.New("unauthorized access to tracker API")
	ErrRateLimited        = errors.New("rate limited by tracker API")
	ErrAssetUnavailable   = errors.New("asset unavailable")
)
