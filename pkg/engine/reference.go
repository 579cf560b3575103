package engine

import (
	"github.com/axiom-labs-org/core/pkg/execution"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/tx"
)

// ReferenceEngine is the consensus-safe identity engine: it performs no
// computation and proposes no writes. It only checks that the plan's
// declared constraints hold against the view, which makes it the fixture
// every protocol invariant must survive. Fees and nonces still move
// because the protocol layer forces those writes itself.
type ReferenceEngine struct{}

// NewReferenceEngine returns the no-op reference engine.
func NewReferenceEngine() *ReferenceEngine {
	return &ReferenceEngine{}
}

// Execute validates declared reads and intent existence expectations, then
// returns an empty write set.
func (e *ReferenceEngine) Execute(plan *execution.ExecutionPlan, view StateView, _ ExecutionContext) (*ExecutionOutcome, error) {
	for id := range plan.ReadSet {
		if _, ok := view.GetObject(id); !ok {
			return nil, &UnauthorizedReadError{Object: id}
		}
	}

	for id, intent := range plan.WriteIntents {
		_, exists := view.GetObject(id)
		switch intent {
		case tx.IntentCreate:
			if exists {
				return nil, &UnauthorizedWriteError{Object: id}
			}
		case tx.IntentModify, tx.IntentDelete:
			if !exists {
				return nil, &UnauthorizedWriteError{Object: id}
			}
		}
	}

	return &ExecutionOutcome{Writes: state.WriteSet{}}, nil
}
