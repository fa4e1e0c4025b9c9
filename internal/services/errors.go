package services

import "errors"

// Sentinel errors surfaced by services and mapped to API errors by the
// transport layer.
var (
	// ErrNoData indicates the dashboard dataset is empty or was never loaded
	ErrNoData = errors.New("no dashboard data available")
	// ErrAnimationUnavailable indicates the decorative animation could not
	// be fetched; the dashboard renders without it
	ErrAnimationUnavailable = errors.New("animation not available")
)
