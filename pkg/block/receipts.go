package block

import (
	"encoding/binary"

	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/types"
)

// receiptsDomain separates receipts-root preimages from every other hash.
var receiptsDomain = []byte("Axiom::ReceiptsRoot::v1")

// TransactionResult is the per-transaction receipt recorded in block order.
// A nil Err means success.
type TransactionResult struct {
	// FeeCharged is the fee taken for a successful transaction; zero on
	// failure.
	FeeCharged uint64

	// Err is the pipeline error for a failed transaction.
	Err error
}

// Success reports whether the transaction committed.
func (r TransactionResult) Success() bool {
	return r.Err == nil
}

// BlockExecutionResult carries the per-transaction results of one block, in
// block order.
type BlockExecutionResult struct {
	TxResults []TransactionResult
}

// ComputeReceiptsRoot hashes transaction hashes and results, in block
// order, into the receipts commitment. For each entry the preimage is the
// 32-byte transaction hash, a status byte (1 success, 0 failure), and the
// big-endian fee (0 on failure).
//
// The two slices must be parallel; a length mismatch is a programming error
// in the execution loop and panics.
func ComputeReceiptsRoot(txHashes []types.Hash, results []TransactionResult) types.Hash {
	if len(txHashes) != len(results) {
		panic("receipts root: tx hashes and results length mismatch")
	}

	buf := make([]byte, 0, len(receiptsDomain)+len(results)*(types.HashLength+9))
	buf = append(buf, receiptsDomain...)

	var fee [8]byte
	for i, h := range txHashes {
		buf = append(buf, h.Bytes()...)
		if results[i].Success() {
			buf = append(buf, 1)
			binary.BigEndian.PutUint64(fee[:], results[i].FeeCharged)
		} else {
			buf = append(buf, 0)
			binary.BigEndian.PutUint64(fee[:], 0)
		}
		buf = append(buf, fee[:]...)
	}

	return blake3.Sum256(buf)
}
