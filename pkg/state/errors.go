package state

import (
	"fmt"

	"github.com/axiom-labs-org/core/pkg/types"
)

// ObjectAlreadyExistsError is returned by Insert when the ID is taken.
type ObjectAlreadyExistsError struct {
	Object types.ObjectID
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("object %s already exists", e.Object.Short())
}

// ObjectNotFoundError is returned when a read or write expects an object
// that is not in the store.
type ObjectNotFoundError struct {
	Object types.ObjectID
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found", e.Object.Short())
}

// StaleReadError is returned when a declared read no longer matches the
// live object version.
type StaleReadError struct {
	Object   types.ObjectID
	Expected Version
	Found    Version
}

func (e *StaleReadError) Error() string {
	return fmt.Sprintf("stale read of object %s: expected version %d, found %d",
		e.Object.Short(), e.Expected, e.Found)
}

// InvalidVersionError is returned when a write does not advance an object's
// version by exactly one, or creates a new object above version 0.
type InvalidVersionError struct {
	Object   types.ObjectID
	Expected Version
	Found    Version
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version for object %s: expected %d, found %d",
		e.Object.Short(), e.Expected, e.Found)
}

// InvalidNonceError is returned when a transaction's nonce does not match
// the signer's nonce object version.
type InvalidNonceError struct {
	Expected Version
	Got      Version
}

func (e *InvalidNonceError) Error() string {
	return fmt.Sprintf("invalid nonce: expected %d, got %d", e.Expected, e.Got)
}

// InvalidBalanceError is returned when a balance object's payload is not a
// little-endian u64.
type InvalidBalanceError struct {
	Object types.ObjectID
	Length int
}

func (e *InvalidBalanceError) Error() string {
	return fmt.Sprintf("invalid balance data for object %s: %d bytes", e.Object.Short(), e.Length)
}
