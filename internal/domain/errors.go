package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and adapters.
var (
	// ErrNotFound is returned when the backend answers 404 for a resource
	// (after any endpoint-shape fallbacks have been exhausted).
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a request fails local validation,
	// before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCapacity is returned when a tasting has no spots left.
	ErrNoCapacity = errors.New("no spots available for this tasting")

	// ErrExperienceInactive is returned when a tasting is disabled.
	ErrExperienceInactive = errors.New("this tasting is not currently available")

	// ErrEmailMismatch is returned when the email entered during identity
	// verification does not match the one on the user record.
	ErrEmailMismatch = errors.New("entered email does not match the registered one")

	// ErrVerificationRequired is returned when a store mutation is attempted
	// without a prior successful email verification.
	ErrVerificationRequired = errors.New("identity verification required")

	// ErrStockExceeded is returned when a reservation asks for more units
	// than the displayed stock allows.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")
)

// PartialFailure reports a two-step mutation whose first step succeeded and
// whose second step failed. The gap is surfaced to the caller with both step
// names; nothing is rolled back or retried.
type PartialFailure struct {
	Done   string
	Failed string
	Err    error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s, but %s: %v", e.Done, e.Failed, e.Err)
}

func (e *PartialFailure) Unwrap() error { return e.Err }
