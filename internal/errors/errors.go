package errors

import "errors"

// Lookup failures: the caller supplied an id that does not exist. These are
// real errors, never business outcomes.
var ErrShowNotFound = errors.New("show not found")
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidOperation marks a lifecycle or business-rule violation, such as
// starting a show that has already ended. "Nothing available to book" is NOT
// one of these - that is an ordinary result carried in the outcome message.
var ErrInvalidOperation = errors.New("invalid operation")
