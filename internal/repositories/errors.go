package repositories

import "errors"

// ErrNotFound is returned when no row matches a lookup, an update or a delete.
var ErrNotFound = errors.New("record not found")
