package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// AddressLength is the length in bytes of an Axiom address.
const AddressLength = 32

// HashLength is the length in bytes of a cryptographic hash.
const HashLength = 32

// Address is a fixed-size, immutable identifier for user accounts,
// contracts, and protocol-owned objects. Addresses have no inherent
// meaning beyond identity.
type Address [AddressLength]byte

// AddressFromBytes builds an Address from a byte slice. The slice must be
// exactly AddressLength bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("invalid address length: got %d, want %d", len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses a hex-encoded address, with or without a 0x prefix.
func AddressFromHex(s string) (Address, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address hex: %w", err)
	}
	return AddressFromBytes(b)
}

// Bytes returns the raw byte representation.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is all zero bytes. The zero address is
// a sentinel, never a valid signer or owner.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Short returns a truncated hex form for logs.
func (a Address) Short() string {
	return hex.EncodeToString(a[:4]) + "…"
}

// Hash is the output of the protocol hash function. Hashes identify blocks,
// transactions, and roots; they carry no ownership semantics.
type Hash [HashLength]byte

// HashFromBytes builds a Hash from a byte slice of exactly HashLength bytes.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, fmt.Errorf("invalid hash length: got %d, want %d", len(b), HashLength)
	}
	copy(h[:], b)
	return h, nil
}

// HashFromHex parses a hex-encoded hash, with or without a 0x prefix.
func HashFromHex(s string) (Hash, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash hex: %w", err)
	}
	return HashFromBytes(b)
}

// Bytes returns the raw byte representation.
func (h Hash) Bytes() []byte {
	return h[:]
}

// IsZero reports whether the hash is all zero bytes. Useful for genesis
// parents and unset roots.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Cmp compares two hashes byte-lexicographically. Canonical orderings over
// hashes and object IDs are defined by this comparison.
func (h Hash) Cmp(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns a truncated hex form for logs.
func (h Hash) Short() string {
	return hex.EncodeToString(h[:4]) + "…"
}

// ObjectID uniquely identifies a piece of on-chain state. IDs are opaque;
// any structure (nonce namespaces, balance namespaces) comes from how they
// are derived, not from the ID itself.
type ObjectID Hash

// ObjectIDFromHash wraps a hash as an object identifier.
func ObjectIDFromHash(h Hash) ObjectID {
	return ObjectID(h)
}

// Hash returns the underlying hash.
func (id ObjectID) Hash() Hash {
	return Hash(id)
}

// Bytes returns the raw byte representation.
func (id ObjectID) Bytes() []byte {
	return id[:]
}

// Cmp compares two object IDs byte-lexicographically.
func (id ObjectID) Cmp(other ObjectID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ObjectID) String() string {
	return Hash(id).String()
}

// Short returns a truncated hex form for logs.
func (id ObjectID) Short() string {
	return Hash(id).Short()
}

// Slot is a strictly increasing unit of logical time used to order blocks
// and transactions. Slots do not correspond to wall-clock time.
type Slot uint64

// Next returns the following slot.
func (s Slot) Next() Slot {
	return s + 1
}

func (s Slot) String() string {
	return fmt.Sprintf("%d", uint64(s))
}

// Epoch groups slots for protocol-wide transitions such as validator set
// changes and reward windows.
type Epoch uint64

// Next returns the following epoch.
func (e Epoch) Next() Epoch {
	return e + 1
}

func (e Epoch) String() string {
	return fmt.Sprintf("%d", uint64(e))
}
