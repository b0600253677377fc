package repository

import "errors"

// Sentinel kinds for token store errors.
var (
	ErrNotFound = errors.New("token not found")
	ErrClosed   = errors.New("token store closed")
)
