package domain

import "errors"

// Domain errors
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrFutureDate       = errors.New("date is in the future")
	ErrInvalidOffset    = errors.New("offset must be a signed integer")
	ErrUnknownDirective = errors.New("unknown format directive")
	ErrTrailingPercent  = errors.New("format ends with a bare %")
)
