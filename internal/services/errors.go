package services

import "errors"

// Sentinel errors services wrap so handlers can map them to HTTP
// status codes with errors.Is.
var (
	ErrInvalid  = errors.New("invalid request")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)
