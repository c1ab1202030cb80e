package services

import "errors"

var (
	// ErrInvalidData is returned for a missing body, a missing patch document or a non-positive id.
	ErrInvalidData = errors.New("invalid data")
	// ErrIDMismatch is returned when the route id and the body id differ.
	ErrIDMismatch = errors.New("route id does not match body id")
)
