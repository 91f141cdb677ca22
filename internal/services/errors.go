package services

import (
	"errors"
)

// Typed failures surfaced by the service layer. Handlers and middleware map
// them onto HTTP statuses; anything else is a store failure and stays generic.
var (
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidDirection = errors.New("invalid vote direction")
)
