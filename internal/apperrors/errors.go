// Package apperrors defines the error kinds the domain services surface.
// Services wrap these sentinels with fmt.Errorf and %w; handlers match them
// with errors.Is to pick an HTTP status.
package apperrors

import "errors"

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness or business-rule invariant would be
	// violated (duplicate name, duplicate purchase, insufficient balance).
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument means malformed input caught inside the domain,
	// even when the boundary layer should already have filtered it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds is raised by balance debits and translated to
	// ErrConflict by the purchase flow.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
