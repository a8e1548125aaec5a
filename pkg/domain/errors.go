package domain

import "errors"

// ErrCacheMiss is returned by document caches when a key has no entry.
var ErrCacheMiss = errors.New("document not cached")

// ErrMissingAuth is returned when neither an API key nor an OAuth token is
// configured for the design source.
var ErrMissingAuth = errors.New("either an API key or an OAuth token must be provided")
