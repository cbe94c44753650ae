package core

import "errors"

var (
	// ErrNotFound is returned by providers that report deletion of an
	// unknown recipe as a failure rather than a no-op.
	ErrNotFound = errors.New("recipe not found")

	// ErrStoreUnavailable is returned when the backing store of a provider
	// cannot be reached.
	ErrStoreUnavailable = errors.New("recipe store unavailable")

	// ErrDuplicateID is returned when an operation would violate the
	// unique-identifier invariant of a Collection.
	ErrDuplicateID = errors.New("duplicate recipe id")
)
