package execution

import (
	"fmt"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// ReadConflictError is returned when two cells expect different versions of
// the same object.
type ReadConflictError struct {
	Object   types.ObjectID
	Expected state.Version
	Found    state.Version
}

func (e *ReadConflictError) Error() string {
	return fmt.Sprintf("read conflict on object %s: versions %d and %d declared",
		e.Object.Short(), e.Expected, e.Found)
}

// WriteIntentConflictError is returned when cells disagree on the intent
// for an object, or a Create targets an object that already exists.
type WriteIntentConflictError struct {
	Object types.ObjectID
}

func (e *WriteIntentConflictError) Error() string {
	return fmt.Sprintf("conflicting write intent for object %s", e.Object.Short())
}

// ObjectNotFoundError is returned when a Modify/Delete intent, or the fee
// deduction, references an object absent from state.
type ObjectNotFoundError struct {
	Object types.ObjectID
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found during planning", e.Object.Short())
}

// UnauthorizedWriteError is returned when a write intent targets an object
// the signer does not own.
type UnauthorizedWriteError struct {
	Object types.ObjectID
	Owner  types.Address
	Signer types.Address
}

func (e *UnauthorizedWriteError) Error() string {
	return fmt.Sprintf("unauthorized write to object %s: owned by %s, signed by %s",
		e.Object.Short(), e.Owner.Short(), e.Signer.Short())
}

// InsufficientBalanceError is returned when the signer cannot cover the
// flat fee.
type InsufficientBalanceError struct {
	Required  uint64
	Available uint64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %d, have %d", e.Required, e.Available)
}
