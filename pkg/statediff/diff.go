package statediff

import (
	"fmt"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// StateDiff is the canonical state transition produced by one transaction:
// the reads it depends on, and the full set of writes (engine writes merged
// with forced protocol writes).
type StateDiff struct {
	// ReadSet holds the objects read with their expected versions, used
	// for the final optimistic-concurrency check at commit.
	ReadSet state.ReadSet

	// Writes holds every object to be written.
	Writes state.WriteSet
}

// ObjectNotFoundError is returned when a declared read is absent at commit.
type ObjectNotFoundError struct {
	Object types.ObjectID
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %s not found at commit", e.Object.Short())
}

// StaleReadError is returned when a declared read's version drifted before
// commit.
type StaleReadError struct {
	Object   types.ObjectID
	Expected state.Version
	Found    state.Version
}

func (e *StaleReadError) Error() string {
	return fmt.Sprintf("stale read at commit for object %s: expected version %d, found %d",
		e.Object.Short(), e.Expected, e.Found)
}

// InvalidWriteError is returned when a write fails to land. A correct
// pipeline never produces it.
type InvalidWriteError struct {
	Object types.ObjectID
}

func (e *InvalidWriteError) Error() string {
	return fmt.Sprintf("invalid write for object %s", e.Object.Short())
}
