package domain

import "errors"

// ErrInvalidRequest is returned when a required query parameter is missing or
// malformed. User-correctable; handlers map it to HTTP 400 and clients must
// not retry it.
var ErrInvalidRequest = errors.New("invalid request")

// ErrUpstreamUnavailable is returned by the locator only when the local
// fallback itself fails after the upstream provider already has. An upstream
// failure alone is never surfaced; it is absorbed by the fallback.
// Handlers map this to HTTP 500.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrRetrievalFailed is the terminal error the retrieval client settles into
// after exhausting its retries. Surfaced as a retryable error state,
// never a crash.
var ErrRetrievalFailed = errors.New("retrieval failed")

// ErrNotFound is returned by repo functions when the requested resource does
// not exist in the store.
var ErrNotFound = errors.New("not found")
