package store

import "errors"

// ErrNotFound is returned by Load when no fingerprint is stored under
// the given key. It is not one of pkg/constellate's core errors: the
// store is a convenience adapter, not a recognition engine.
var ErrNotFound = errors.New("store: no fingerprint stored under this key")
