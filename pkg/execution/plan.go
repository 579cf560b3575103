package execution

import (
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/tx"
	"github.com/axiom-labs-org/core/pkg/types"
)

// FlatFee is the protocol fee charged from the signer's balance object for
// every successful transaction.
const FlatFee uint64 = 1

// ExecutionPlan is the post-validation, pre-execution description of what a
// transaction will read, may write, and must write. It is deterministic,
// state-aware, and execution-agnostic: building a plan never mutates state.
type ExecutionPlan struct {
	// ReadSet is the merged read set of all cells.
	ReadSet state.ReadSet

	// WriteIntents is the merged intent set execution may realize.
	WriteIntents tx.WriteIntentSet

	// ForcedWrites are protocol-injected writes (nonce bump, fee charge)
	// that land regardless of engine output, but only if the whole
	// pipeline succeeds. Engines may not shadow them.
	ForcedWrites state.WriteSet

	// Cells to execute, in declared order.
	Cells []*tx.TransactionCell
}

// BuildExecutionPlan derives an execution plan from a prepared transaction.
//
// The planner is the only stage that enforces authorization beyond the
// nonce: the engine trusts the plan. Steps, in order:
//
//  1. seed forced writes with the nonce update
//  2. merge cell read sets, rejecting conflicting expected versions
//  3. merge cell write intents, rejecting conflicting intents
//  4. check existence and ownership of every merged intent against live
//     state (Create must not exist; Modify/Delete must exist and be owned
//     by the signer)
//  5. charge the flat fee as a forced write on the signer's balance object
func BuildExecutionPlan(petx *exttx.PreparedExternalTransaction, store *state.Store) (*ExecutionPlan, error) {
	signer := petx.Tx.Signer

	forcedWrites := state.WriteSet{
		petx.NonceID: petx.NonceUpdate,
	}

	readSet := state.ReadSet{}
	for _, cell := range petx.Tx.Cells {
		for id, version := range cell.ReadSet() {
			if existing, ok := readSet[id]; ok {
				if existing != version {
					return nil, &ReadConflictError{Object: id, Expected: existing, Found: version}
				}
				continue
			}
			readSet[id] = version
		}
	}

	writeIntents := tx.WriteIntentSet{}
	for _, cell := range petx.Tx.Cells {
		for id, intent := range cell.WriteIntents() {
			if existing, ok := writeIntents[id]; ok {
				if existing != intent {
					return nil, &WriteIntentConflictError{Object: id}
				}
				continue
			}
			writeIntents[id] = intent
		}
	}

	for id, intent := range writeIntents {
		obj, exists := store.Get(id)
		switch intent {
		case tx.IntentCreate:
			if exists {
				return nil, &WriteIntentConflictError{Object: id}
			}
		case tx.IntentModify, tx.IntentDelete:
			if !exists {
				return nil, &ObjectNotFoundError{Object: id}
			}
			if obj.Owner() != signer {
				return nil, &UnauthorizedWriteError{Object: id, Owner: obj.Owner(), Signer: signer}
			}
		}
	}

	feeWrite, err := prepareFeeDeduction(signer, store)
	if err != nil {
		return nil, err
	}
	forcedWrites[feeWrite.ID()] = feeWrite

	return &ExecutionPlan{
		ReadSet:      readSet,
		WriteIntents: writeIntents,
		ForcedWrites: forcedWrites,
		Cells:        petx.Tx.Cells,
	}, nil
}

// prepareFeeDeduction builds the forced balance write charging FlatFee from
// the signer. A signer without a balance object, or with less than the fee,
// fails the whole transaction here, before any state change.
func prepareFeeDeduction(signer types.Address, store *state.Store) (*state.StateObject, error) {
	balanceID := state.BalanceObjectID(signer)

	obj, ok := store.Get(balanceID)
	if !ok {
		return nil, &ObjectNotFoundError{Object: balanceID}
	}

	balance, err := state.DecodeBalance(obj)
	if err != nil {
		return nil, err
	}
	if balance < FlatFee {
		return nil, &InsufficientBalanceError{Required: FlatFee, Available: balance}
	}

	return obj.WithData(state.EncodeBalance(balance - FlatFee)), nil
}
