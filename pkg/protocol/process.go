package protocol

import (
	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/execution"
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/statediff"
)

// ProcessExternalTransaction runs the canonical per-transaction state
// transition: authorize, plan, execute, merge writes, commit.
//
// A failure at any stage returns a ProtocolError and leaves the store
// byte-identical to its prior state: the nonce is not bumped and no fee is
// charged on failure. That atomicity is what block execution relies on.
func ProcessExternalTransaction(store *state.Store, t *exttx.ExternalTransaction, eng engine.ExecutionEngine, ctx engine.ExecutionContext) error {
	prepared, err := exttx.Prepare(t, store)
	if err != nil {
		return &ProtocolError{Stage: StagePrepare, Err: err}
	}

	plan, err := execution.BuildExecutionPlan(prepared, store)
	if err != nil {
		return &ProtocolError{Stage: StagePlan, Err: err}
	}

	outcome, err := eng.Execute(plan, store, ctx)
	if err != nil {
		return &ProtocolError{Stage: StageExecute, Err: err}
	}

	writes := make(state.WriteSet, len(plan.ForcedWrites)+len(outcome.Writes))
	for id, obj := range plan.ForcedWrites {
		writes[id] = obj
	}
	for id, obj := range outcome.Writes {
		if _, forced := writes[id]; forced {
			// The engine tried to shadow a protocol-forced write.
			return &ProtocolError{
				Stage: StageExecute,
				Err:   &engine.UnauthorizedWriteError{Object: id},
			}
		}
		writes[id] = obj
	}

	diff := &statediff.StateDiff{
		ReadSet: plan.ReadSet,
		Writes:  writes,
	}
	if err := statediff.Commit(store, diff); err != nil {
		return &ProtocolError{Stage: StageCommit, Err: err}
	}

	return nil
}
