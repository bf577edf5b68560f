// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let the reconciliation layer
// distinguish "the row does not exist" from a store failure: a missing
// row is normal (the two record sources are only loosely linked) while
// a store failure is logged before likewise being treated as absence.
package repository

import "errors"

// ErrOrderNotFound is returned when no order row matches the requested
// checkout session.
var ErrOrderNotFound = errors.New("order not found")

// ErrBookingNotFound is returned when no booking row exists for the
// requested identifier.
var ErrBookingNotFound = errors.New("booking not found")
