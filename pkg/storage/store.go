package storage

import (
	"github.com/axiom-labs-org/core/pkg/types"
)

// BlockRecord is the archived form of an executed block. The archive keeps
// inspectable records, not consensus state: canonical encodings and roots
// are always recomputed by the live pipeline, never read back from here.
type BlockRecord struct {
	Hash         types.Hash
	ParentHash   *types.Hash
	Slot         types.Slot
	Epoch        types.Epoch
	StateRoot    types.Hash
	ReceiptsRoot types.Hash
	TxHashes     []types.Hash
}

// ReceiptRecord is the archived per-transaction outcome.
type ReceiptRecord struct {
	TxHash  types.Hash
	Success bool
	Fee     uint64
	Error   string
}

// Archive stores executed blocks and their receipts for later inspection.
// BoltArchive is the BoltDB-backed implementation.
type Archive interface {
	// PutBlock stores a block record with its receipts and advances the
	// archive head.
	PutBlock(record *BlockRecord, receipts []ReceiptRecord) error

	// GetBlock retrieves a block record by block hash.
	GetBlock(hash types.Hash) (*BlockRecord, error)

	// GetReceipts retrieves the receipts of a block by block hash.
	GetReceipts(hash types.Hash) ([]ReceiptRecord, error)

	// Head returns the hash of the most recently archived block, if any.
	Head() (types.Hash, bool, error)

	// Close releases the underlying resources.
	Close() error
}
