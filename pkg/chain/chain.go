package chain

import (
	"fmt"
	"sync"

	"github.com/axiom-labs-org/core/pkg/block"
	"github.com/axiom-labs-org/core/pkg/engine"
	"github.com/axiom-labs-org/core/pkg/events"
	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/log"
	"github.com/axiom-labs-org/core/pkg/metrics"
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/storage"
	"github.com/axiom-labs-org/core/pkg/types"
)

// DefaultEpochLength is the number of slots per epoch when the config does
// not say otherwise.
const DefaultEpochLength uint64 = 32

// Config holds configuration for creating a Chain
type Config struct {
	// Store is the state the chain executes against. Required.
	Store *state.Store

	// Engine executes transaction plans. Required.
	Engine engine.ExecutionEngine

	// EpochLength is the number of slots per epoch; DefaultEpochLength
	// when zero.
	EpochLength uint64

	// Bus receives lifecycle events. Optional.
	Bus *events.Bus

	// Archive persists executed blocks for inspection. Optional.
	Archive storage.Archive
}

// Chain drives block execution behind a single-writer discipline: it owns
// the state store exclusively, builds one block per slot, and extends the
// chain strictly sequentially. No reorgs, no parallel speculation.
type Chain struct {
	mu sync.Mutex

	store       *state.Store
	engine      engine.ExecutionEngine
	epochLength uint64
	bus         *events.Bus
	archive     storage.Archive

	head     *types.Hash
	nextSlot types.Slot
}

// NewChain creates a chain positioned at genesis.
func NewChain(cfg *Config) (*Chain, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("chain requires a state store")
	}
	if cfg.Engine == nil {
		return nil, fmt.Errorf("chain requires an execution engine")
	}

	epochLength := cfg.EpochLength
	if epochLength == 0 {
		epochLength = DefaultEpochLength
	}

	return &Chain{
		store:       cfg.Store,
		engine:      cfg.Engine,
		epochLength: epochLength,
		bus:         cfg.Bus,
		archive:     cfg.Archive,
	}, nil
}

// Head returns the hash of the last executed block, or false before any.
func (c *Chain) Head() (types.Hash, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.head == nil {
		return types.Hash{}, false
	}
	return *c.head, true
}

// NextSlot returns the slot the next block will occupy.
func (c *Chain) NextSlot() types.Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextSlot
}

// StateRoot returns the current state root.
func (c *Chain) StateRoot() types.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()
	return state.ComputeStateRoot(c.store)
}

// Extend builds the next block from the given transactions, executes it,
// and advances the head. Transactions run in the given order; failed ones
// get failure receipts and cause no state change.
func (c *Chain) Extend(transactions []*exttx.ExternalTransaction) (*block.Block, *block.BlockExecutionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := c.nextSlot
	b := &block.Block{
		ParentHash:   c.head,
		Slot:         slot,
		Epoch:        types.Epoch(uint64(slot) / c.epochLength),
		Transactions: transactions,
	}

	timer := metrics.NewTimer()
	result := block.ExecuteBlock(c.store, b, c.engine)
	timer.ObserveDuration(metrics.BlockExecutionDuration)

	hash := b.Hash()
	c.head = &hash
	c.nextSlot = slot.Next()

	c.recordMetrics(b, result)
	c.publishEvents(b, hash, result)

	if c.archive != nil {
		archiveTimer := metrics.NewTimer()
		if err := c.archiveBlock(b, hash, result); err != nil {
			// The chain has already advanced; archiving is best-effort
			// observability, so surface the error without rolling back.
			blockLogger := log.ForBlock(log.Component("chain"), hash, b.Slot)
			blockLogger.Error().Err(err).
				Msg("failed to archive block")
			return b, result, fmt.Errorf("failed to archive block %s: %w", hash.Short(), err)
		}
		archiveTimer.ObserveDuration(metrics.ArchiveWriteDuration)
	}

	extendLogger := log.ForBlock(log.Component("chain"), hash, b.Slot)
	extendLogger.Info().
		Int("txs", len(transactions)).
		Msg("chain extended")

	return b, result, nil
}

func (c *Chain) recordMetrics(b *block.Block, result *block.BlockExecutionResult) {
	for _, res := range result.TxResults {
		if res.Success() {
			metrics.TransactionsTotal.WithLabelValues("success").Inc()
			metrics.FeesCharged.Add(float64(res.FeeCharged))
		} else {
			metrics.TransactionsTotal.WithLabelValues("failure").Inc()
		}
	}
	metrics.BlocksExecuted.Inc()
	metrics.BlockTransactions.Observe(float64(len(b.Transactions)))
	metrics.ChainHeight.Set(float64(b.Slot))
	metrics.StateObjectsTotal.Set(float64(c.store.Len()))
}

func (c *Chain) publishEvents(b *block.Block, hash types.Hash, result *block.BlockExecutionResult) {
	if c.bus == nil {
		return
	}

	for i, res := range result.TxResults {
		txHash := b.Transactions[i].SigningHash()
		if res.Success() {
			c.bus.Emit(events.TransactionApplied{
				TxHash: txHash,
				Slot:   b.Slot,
				Fee:    res.FeeCharged,
			})
		} else {
			c.bus.Emit(events.TransactionFailed{
				TxHash: txHash,
				Slot:   b.Slot,
				Reason: res.Err.Error(),
			})
		}
	}

	c.bus.Emit(events.BlockExecuted{
		BlockHash:    hash,
		StateRoot:    b.StateRoot,
		ReceiptsRoot: b.ReceiptsRoot,
		Slot:         b.Slot,
		TxCount:      len(b.Transactions),
	})
}

func (c *Chain) archiveBlock(b *block.Block, hash types.Hash, result *block.BlockExecutionResult) error {
	txHashes := make([]types.Hash, 0, len(b.Transactions))
	for _, t := range b.Transactions {
		txHashes = append(txHashes, t.SigningHash())
	}

	receipts := make([]storage.ReceiptRecord, 0, len(result.TxResults))
	for i, res := range result.TxResults {
		record := storage.ReceiptRecord{
			TxHash:  txHashes[i],
			Success: res.Success(),
			Fee:     res.FeeCharged,
		}
		if res.Err != nil {
			record.Error = res.Err.Error()
		}
		receipts = append(receipts, record)
	}

	return c.archive.PutBlock(&storage.BlockRecord{
		Hash:         hash,
		ParentHash:   b.ParentHash,
		Slot:         b.Slot,
		Epoch:        b.Epoch,
		StateRoot:    b.StateRoot,
		ReceiptsRoot: b.ReceiptsRoot,
		TxHashes:     txHashes,
	}, receipts)
}
