package campaign

import "errors"

// Sentinel errors for the campaign service layer.
var (
	ErrNotFound         = errors.New("campaign not found")
	ErrProspectNotFound = errors.New("prospect not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrValidation       = errors.New("invalid input")
)
