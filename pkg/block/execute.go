package block

import (
	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/execution"
	"github.com/axiom-labs-org/core/pkg/protocol"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// ExecuteBlock runs every transaction in declared order against the store,
// then fills in the block's state root and receipts root.
//
// Each transaction is atomic: a failure produces a Failure receipt and no
// state change, and the next transaction observes the pre-failure state.
// Block execution itself never aborts on a per-transaction error.
func ExecuteBlock(store *state.Store, b *Block, eng engine.ExecutionEngine) *BlockExecutionResult {
	txResults := make([]TransactionResult, 0, len(b.Transactions))
	txHashes := make([]types.Hash, 0, len(b.Transactions))

	ctx := engine.ExecutionContext{Slot: b.Slot, Epoch: b.Epoch}

	for _, t := range b.Transactions {
		txHashes = append(txHashes, t.SigningHash())

		if err := protocol.ProcessExternalTransaction(store, t, eng, ctx); err != nil {
			txResults = append(txResults, TransactionResult{Err: err})
			continue
		}
		txResults = append(txResults, TransactionResult{FeeCharged: execution.FlatFee})
	}

	b.StateRoot = state.ComputeStateRoot(store)
	b.ReceiptsRoot = ComputeReceiptsRoot(txHashes, txResults)

	return &BlockExecutionResult{TxResults: txResults}
}
