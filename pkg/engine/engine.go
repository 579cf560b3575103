package engine

import (
	"github.com/axiom-labs-org/core/pkg/execution"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// StateView is the read-only window an engine gets into protocol state.
// Engines never mutate state directly; all proposed mutations come back as
// an ExecutionOutcome.
type StateView interface {
	// GetObject fetches a state object by ID. The second return value
	// reports existence.
	GetObject(id types.ObjectID) (*state.StateObject, bool)
}

// ExecutionContext is the immutable per-block context handed to engines.
type ExecutionContext struct {
	Slot  types.Slot
	Epoch types.Epoch
}

// ExecutionOutcome carries the writes an engine proposes. They are merged
// with forced protocol writes and validated again before commit.
//
// Every write must correspond to a declared intent, with the version equal
// to existing+1 for Modify/Delete and 0 for Create.
type ExecutionOutcome struct {
	Writes state.WriteSet
}

// ExecutionEngine is the VM-agnostic execution boundary.
//
// Implementations must be deterministic and side-effect-free: identical
// plans against identical views produce identical outcomes, and any error
// is consensus-safe. Engines must not read objects outside the declared
// read set; the core trusts rather than enforces that part of the contract.
type ExecutionEngine interface {
	Execute(plan *execution.ExecutionPlan, view StateView, ctx ExecutionContext) (*ExecutionOutcome, error)
}
