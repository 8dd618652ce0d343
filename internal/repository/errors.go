package repository

import "errors"

// ErrNotFound is returned, wrapped, when a keyed row does not exist.
var ErrNotFound = errors.New("not found")
