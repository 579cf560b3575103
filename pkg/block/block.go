package block

import (
	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/exttx"
	"github.com/axiom-labs-org/core/pkg/types"
)

// Block is an ordered batch of external transactions executed in one slot.
//
// StateRoot and ReceiptsRoot are populated only after execution; the block
// hash commits to both, so a block is hashed once its results are known.
type Block struct {
	// ParentHash is nil for the genesis block.
	ParentHash *types.Hash

	// Slot this block is executed in.
	Slot types.Slot

	// Epoch context for protocol transitions.
	Epoch types.Epoch

	// StateRoot over the whole store after executing this block.
	StateRoot types.Hash

	// ReceiptsRoot committing to per-transaction results.
	ReceiptsRoot types.Hash

	// Transactions in execution order.
	Transactions []*exttx.ExternalTransaction
}

// Hash computes the canonical block hash. It is a pure function of the
// block's fields: hashing the same block twice yields the same value.
func (b *Block) Hash() types.Hash {
	return blake3.Sum256(EncodeBlock(b))
}
