package block

import (
	"encoding/binary"

	"github.com/axiom-labs-org/core/pkg/exttx"
)

// Domain separators for the block-level canonical encodings. These byte
// strings are part of the external hash-compatibility contract.
var (
	blockDomain    = []byte("Axiom::Block::v1")
	externalDomain = []byte("Axiom::ExternalTx::v1")
)

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// EncodeBlock produces the canonical byte encoding a block hash commits to:
// domain tag, parent-hash presence byte (plus the hash when present),
// big-endian slot and epoch, both roots, then the transaction count and
// each transaction's in-block encoding.
func EncodeBlock(b *Block) []byte {
	buf := make([]byte, 0, 256)
	buf = append(buf, blockDomain...)

	if b.ParentHash != nil {
		buf = append(buf, 1)
		buf = append(buf, b.ParentHash.Bytes()...)
	} else {
		buf = append(buf, 0)
	}

	buf = appendUint64(buf, uint64(b.Slot))
	buf = appendUint64(buf, uint64(b.Epoch))
	buf = append(buf, b.StateRoot.Bytes()...)
	buf = append(buf, b.ReceiptsRoot.Bytes()...)

	buf = appendUint32(buf, uint32(len(b.Transactions)))
	for _, t := range b.Transactions {
		buf = encodeExternalTransaction(buf, t)
	}

	return buf
}

// encodeExternalTransaction appends the in-block transaction encoding.
//
// Unlike the signing hash, this encoding uses a big-endian nonce and
// commits to the signature: it binds what was actually signed into the
// block for non-repudiation, while the signing hash stays signature-free.
func encodeExternalTransaction(buf []byte, t *exttx.ExternalTransaction) []byte {
	buf = append(buf, externalDomain...)
	buf = append(buf, t.Signer.Bytes()...)
	buf = appendUint64(buf, t.Nonce)

	ids := t.SortedCellIDs()
	buf = appendUint32(buf, uint32(len(ids)))
	for _, id := range ids {
		buf = append(buf, id.Bytes()...)
	}

	buf = appendUint32(buf, uint32(len(t.Signature.Bytes)))
	buf = append(buf, t.Signature.Bytes...)
	return buf
}
