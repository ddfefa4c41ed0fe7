package repository

import "errors"

// ErrNotFound is returned when a record does not exist for the given key.
var ErrNotFound = errors.New("record not found")

// ErrIDConflict is returned when slug generation keeps colliding with
// existing employee links. With an 8-char Base62 namespace this practically
// never happens, but the store checks rather than assumes.
var ErrIDConflict = errors.New("could not allocate a unique link id")
