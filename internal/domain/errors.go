package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. a traveler count below 1).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInconsistentTotal is returned by the cost split engine when a breakdown's
// total does not match the sum of its components within rounding tolerance.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrInconsistentTotal = errors.New("cost total does not match its components")

// ErrRenderInProgress is returned when a render is requested while another
// render for the same session is still running. It is a no-op signal, not a
// failure: nothing was queued and nothing was produced.
var ErrRenderInProgress = errors.New("render already in progress")

// ErrRenderFailed wraps any composition or serialization failure.
// No partial artifact accompanies it.
var ErrRenderFailed = errors.New("render failed")
