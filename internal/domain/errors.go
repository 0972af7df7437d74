package domain

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
	ErrValidation        = errors.New("validation failed")
)

// IsDomain reports whether err carries one of the domain sentinels and is safe to show to a caller.
func IsDomain(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount, ErrInsufficientFunds, ErrNotFound, ErrConflict,
		ErrInvalidTransition, ErrForbidden, ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
