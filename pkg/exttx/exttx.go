package exttx

import (
	"encoding/binary"
	"sort"

	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/tx"
	"github.com/axiom-labs-org/core/pkg/types"
)

// signingDomain separates signing-hash preimages from every other hash.
var signingDomain = []byte("Axiom::ExternalTransaction::v1")

// Signature is an opaque signature container. The core carries and hashes
// it but never verifies it; verification belongs to an outer layer.
type Signature struct {
	Bytes []byte
}

// ExternalTransaction is a signer-scoped batch of cells submitted by a user.
type ExternalTransaction struct {
	// Signer is the address authorizing the transaction.
	Signer types.Address

	// Nonce prevents replay. It must equal the current version of the
	// signer's nonce object (0 for a fresh account).
	Nonce state.Version

	// Cells to execute, in declared order.
	Cells []*tx.TransactionCell

	// Signature over the signing hash.
	Signature Signature
}

// SigningHash computes the payload a signature scheme binds to. It commits
// to the signer, the little-endian nonce, and the sorted cell ids. Sorting
// makes semantically equivalent batches hash identically regardless of cell
// order, and excluding the signature keeps the hash stable pre-signing.
//
// This hash also serves as the per-transaction identifier in receipts.
func (t *ExternalTransaction) SigningHash() types.Hash {
	buf := make([]byte, 0, len(signingDomain)+types.AddressLength+8+len(t.Cells)*types.HashLength)
	buf = append(buf, signingDomain...)
	buf = append(buf, t.Signer.Bytes()...)

	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], t.Nonce)
	buf = append(buf, nonce[:]...)

	ids := t.SortedCellIDs()
	for _, id := range ids {
		buf = append(buf, id.Bytes()...)
	}

	return blake3.Sum256(buf)
}

// SortedCellIDs returns the cell ids in canonical (byte-lexicographic)
// order, as committed to by both the signing hash and the in-block encoding.
func (t *ExternalTransaction) SortedCellIDs() []types.Hash {
	ids := make([]types.Hash, 0, len(t.Cells))
	for _, c := range t.Cells {
		ids = append(ids, c.ID())
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Cmp(ids[j]) < 0
	})
	return ids
}
