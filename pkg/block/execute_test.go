package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/tx"
	"github.com/axiom-labs-org/core/pkg/types"
)

func testAddr(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

func makeCell(t *testing.T, target types.ObjectID, payload []byte) *tx.TransactionCell {
	t.Helper()
	cell, err := tx.NewTransactionCell(
		types.Slot(1),
		state.ReadSet{},
		tx.WriteIntentSet{},
		tx.CallData{Target: target, Payload: payload},
	)
	require.NoError(t, err)
	return cell
}

func makeTx(t *testing.T, signer types.Address, nonce state.Version, target types.ObjectID) *exttx.ExternalTransaction {
	t.Helper()
	return &exttx.ExternalTransaction{
		Signer: signer,
		Nonce:  nonce,
		Cells:  []*tx.TransactionCell{makeCell(t, target, nil)},
	}
}

func fundSigner(t *testing.T, store *state.Store, signer types.Address, balance uint64) types.ObjectID {
	t.Helper()
	balanceID := state.BalanceObjectID(signer)
	require.NoError(t, store.Insert(state.NewStateObject(balanceID, signer, state.EncodeBalance(balance))))
	return balanceID
}

func balanceOf(t *testing.T, store *state.Store, id types.ObjectID) uint64 {
	t.Helper()
	obj, ok := store.Get(id)
	require.True(t, ok)
	balance, err := state.DecodeBalance(obj)
	require.NoError(t, err)
	return balance
}

func TestBlockExecutesAllValidTransactions(t *testing.T) {
	store := state.NewStore()
	signer := testAddr(1)
	balanceID := fundSigner(t, store, signer, 10)

	b := &Block{
		Slot:  types.Slot(1),
		Epoch: types.Epoch(0),
		Transactions: []*exttx.ExternalTransaction{
			makeTx(t, signer, 0, balanceID),
			makeTx(t, signer, 0, balanceID),
		},
	}

	result := ExecuteBlock(store, b, engine.NewReferenceEngine())

	require.Len(t, result.TxResults, 2)
	assert.True(t, result.TxResults[0].Success())
	assert.True(t, result.TxResults[1].Success())
	assert.Equal(t, uint64(1), result.TxResults[0].FeeCharged)

	assert.Equal(t, uint64(8), balanceOf(t, store, balanceID))

	nonceObj, ok := store.Get(state.NonceObjectID(signer))
	require.True(t, ok)
	assert.Equal(t, state.Version(1), nonceObj.Version())

	assert.Equal(t, state.ComputeStateRoot(store), b.StateRoot)

	txHashes := []types.Hash{
		b.Transactions[0].SigningHash(),
		b.Transactions[1].SigningHash(),
	}
	assert.Equal(t, ComputeReceiptsRoot(txHashes, result.TxResults), b.ReceiptsRoot)
}

func TestBlockMiddleFailureDoesNotAffectLaterTxs(t *testing.T) {
	store := state.NewStore()
	signer := testAddr(2)
	balanceID := fundSigner(t, store, signer, 10)

	b := &Block{
		Slot:  types.Slot(1),
		Epoch: types.Epoch(0),
		Transactions: []*exttx.ExternalTransaction{
			makeTx(t, signer, 0, balanceID),
			makeTx(t, signer, 5, balanceID), // invalid nonce
			makeTx(t, signer, 0, balanceID),
		},
	}

	result := ExecuteBlock(store, b, engine.NewReferenceEngine())

	require.Len(t, result.TxResults, 3)
	assert.True(t, result.TxResults[0].Success())
	assert.False(t, result.TxResults[1].Success())
	assert.True(t, result.TxResults[2].Success())
	assert.Equal(t, uint64(0), result.TxResults[1].FeeCharged)

	assert.Equal(t, uint64(8), balanceOf(t, store, balanceID))

	txHashes := make([]types.Hash, 0, 3)
	for _, txn := range b.Transactions {
		txHashes = append(txHashes, txn.SigningHash())
	}
	assert.Equal(t, ComputeReceiptsRoot(txHashes, result.TxResults), b.ReceiptsRoot)
}

func TestBlockFailedTxLeavesStateUntouched(t *testing.T) {
	store := state.NewStore()
	signer := testAddr(3)
	balanceID := fundSigner(t, store, signer, 10)

	rootBefore := state.ComputeStateRoot(store)

	b := &Block{
		Slot:  types.Slot(1),
		Epoch: types.Epoch(0),
		Transactions: []*exttx.ExternalTransaction{
			makeTx(t, signer, 9, balanceID),
		},
	}
	result := ExecuteBlock(store, b, engine.NewReferenceEngine())

	require.Len(t, result.TxResults, 1)
	assert.False(t, result.TxResults[0].Success())
	assert.Equal(t, rootBefore, b.StateRoot)
	assert.Equal(t, uint64(10), balanceOf(t, store, balanceID))
}

func TestBlockDeterminism(t *testing.T) {
	// Two identically seeded stores driven by the same block end up
	// byte-identical: same object versions, same data, same roots.
	build := func() (*state.Store, *Block) {
		store := state.NewStore()
		signer := testAddr(4)
		balanceID := fundSigner(t, store, signer, 10)
		b := &Block{
			Slot:  types.Slot(7),
			Epoch: types.Epoch(1),
			Transactions: []*exttx.ExternalTransaction{
				makeTx(t, signer, 0, balanceID),
				makeTx(t, signer, 0, balanceID),
			},
		}
		return store, b
	}

	storeA, blockA := build()
	storeB, blockB := build()

	ExecuteBlock(storeA, blockA, engine.NewReferenceEngine())
	ExecuteBlock(storeB, blockB, engine.NewReferenceEngine())

	assert.Equal(t, blockA.StateRoot, blockB.StateRoot)
	assert.Equal(t, blockA.ReceiptsRoot, blockB.ReceiptsRoot)
	assert.Equal(t, blockA.Hash(), blockB.Hash())

	assert.Equal(t, storeA.Len(), storeB.Len())
	storeA.ForEachObject(func(id types.ObjectID, objA *state.StateObject) {
		objB, ok := storeB.Get(id)
		require.True(t, ok)
		assert.Equal(t, objA.Version(), objB.Version())
		assert.Equal(t, objA.Owner(), objB.Owner())
		assert.Equal(t, objA.Data(), objB.Data())
	})
}

func TestReceiptsRootPanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		ComputeReceiptsRoot([]types.Hash{{}}, nil)
	})
}
