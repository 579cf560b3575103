package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/events"
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/storage"
	"github.com/axiom-labs-org/core/pkg/tx"
	"github.com/axiom-labs-org/core/pkg/types"
)

func testAddr(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

func makeTx(t *testing.T, signer types.Address, nonce state.Version) *exttx.ExternalTransaction {
	t.Helper()
	cell, err := tx.NewTransactionCell(
		types.Slot(1),
		state.ReadSet{},
		tx.WriteIntentSet{},
		tx.CallData{Target: state.BalanceObjectID(signer)},
	)
	require.NoError(t, err)
	return &exttx.ExternalTransaction{Signer: signer, Nonce: nonce, Cells: []*tx.TransactionCell{cell}}
}

func fundedChain(t *testing.T, signer types.Address, balance uint64, cfg *Config) *Chain {
	t.Helper()
	store := state.NewStore()
	require.NoError(t, store.Insert(state.NewStateObject(state.BalanceObjectID(signer), signer, state.EncodeBalance(balance))))

	if cfg == nil {
		cfg = &Config{}
	}
	cfg.Store = store
	cfg.Engine = engine.NewReferenceEngine()

	c, err := NewChain(cfg)
	require.NoError(t, err)
	return c
}

func TestNewChainRequiresStoreAndEngine(t *testing.T) {
	_, err := NewChain(&Config{Engine: engine.NewReferenceEngine()})
	assert.Error(t, err)

	_, err = NewChain(&Config{Store: state.NewStore()})
	assert.Error(t, err)
}

func TestChainExtendAdvancesHead(t *testing.T) {
	signer := testAddr(1)
	c := fundedChain(t, signer, 10, nil)

	_, ok := c.Head()
	assert.False(t, ok)
	assert.Equal(t, types.Slot(0), c.NextSlot())

	first, result, err := c.Extend([]*exttx.ExternalTransaction{makeTx(t, signer, 0)})
	require.NoError(t, err)
	require.Len(t, result.TxResults, 1)
	assert.True(t, result.TxResults[0].Success())
	assert.Nil(t, first.ParentHash)

	head, ok := c.Head()
	require.True(t, ok)
	assert.Equal(t, first.Hash(), head)
	assert.Equal(t, types.Slot(1), c.NextSlot())

	second, _, err := c.Extend([]*exttx.ExternalTransaction{makeTx(t, signer, 0)})
	require.NoError(t, err)
	require.NotNil(t, second.ParentHash)
	assert.Equal(t, first.Hash(), *second.ParentHash)
	assert.Equal(t, types.Slot(1), second.Slot)
}

func TestChainEpochRollover(t *testing.T) {
	signer := testAddr(1)
	c := fundedChain(t, signer, 100, &Config{EpochLength: 2})

	var blocks []types.Epoch
	for i := 0; i < 4; i++ {
		b, _, err := c.Extend(nil)
		require.NoError(t, err)
		blocks = append(blocks, b.Epoch)
	}

	assert.Equal(t, []types.Epoch{0, 0, 1, 1}, blocks)
}

func TestChainStateRootTracksExecution(t *testing.T) {
	signer := testAddr(1)
	c := fundedChain(t, signer, 10, nil)

	before := c.StateRoot()
	b, _, err := c.Extend([]*exttx.ExternalTransaction{makeTx(t, signer, 0)})
	require.NoError(t, err)

	assert.NotEqual(t, before, c.StateRoot())
	assert.Equal(t, b.StateRoot, c.StateRoot())
}

func TestChainEmitsLifecycleEvents(t *testing.T) {
	signer := testAddr(1)
	bus := events.NewBus()
	ch, cancel := bus.Subscribe(8)
	defer cancel()

	c := fundedChain(t, signer, 10, &Config{Bus: bus})

	b, _, err := c.Extend([]*exttx.ExternalTransaction{
		makeTx(t, signer, 0),
		makeTx(t, signer, 9), // invalid nonce
	})
	require.NoError(t, err)

	// Emission is synchronous: applied, failed, then the block event.
	applied := (<-ch).Payload.(events.TransactionApplied)
	assert.Equal(t, uint64(1), applied.Fee)

	failed := (<-ch).Payload.(events.TransactionFailed)
	assert.NotEmpty(t, failed.Reason)

	executed := (<-ch).Payload.(events.BlockExecuted)
	assert.Equal(t, b.Hash(), executed.BlockHash)
	assert.Equal(t, b.StateRoot, executed.StateRoot)
	assert.Equal(t, 2, executed.TxCount)
}

func TestChainArchivesExecutedBlocks(t *testing.T) {
	signer := testAddr(1)
	archive, err := storage.NewBoltArchive(t.TempDir())
	require.NoError(t, err)
	defer archive.Close()

	c := fundedChain(t, signer, 10, &Config{Archive: archive})

	b, result, err := c.Extend([]*exttx.ExternalTransaction{
		makeTx(t, signer, 0),
		makeTx(t, signer, 7), // invalid nonce
	})
	require.NoError(t, err)
	require.Len(t, result.TxResults, 2)

	head, found, err := archive.Head()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, b.Hash(), head)

	record, err := archive.GetBlock(head)
	require.NoError(t, err)
	assert.Equal(t, b.StateRoot, record.StateRoot)
	assert.Len(t, record.TxHashes, 2)

	receipts, err := archive.GetReceipts(head)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.True(t, receipts[0].Success)
	assert.False(t, receipts[1].Success)
	assert.NotEmpty(t, receipts[1].Error)
}
