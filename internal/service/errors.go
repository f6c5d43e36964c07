package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the controller boundary.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("not authorized for this resource")
	ErrUnauthorized = errors.New("authentication failed")
	ErrConflict     = errors.New("conflicting state")
)
