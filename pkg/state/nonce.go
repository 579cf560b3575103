package state

import (
	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/types"
)

// nonceDomain is the derivation namespace for nonce objects. It keeps nonce
// IDs in a reserved, collision-free region of global state.
var nonceDomain = []byte("axiom::nonce")

// NonceObjectID derives the deterministic nonce object ID for an address.
// There is exactly one nonce object per address.
func NonceObjectID(addr types.Address) types.ObjectID {
	buf := make([]byte, 0, len(nonceDomain)+types.AddressLength)
	buf = append(buf, nonceDomain...)
	buf = append(buf, addr.Bytes()...)
	return types.ObjectID(blake3.Sum256(buf))
}

// ValidateAndPrepareNonceUpdate checks a transaction nonce against the
// signer's nonce object and produces the forced nonce write.
//
// The nonce object's version IS the account nonce counter: a transaction is
// valid when its nonce equals the current version. The first transaction of
// an account (nonce 0) creates the object at version 0; every later one
// bumps the version by one.
//
// No state is mutated here; the returned object is applied only if the full
// pipeline succeeds.
func ValidateAndPrepareNonceUpdate(signer types.Address, nonce Version, store *Store) (types.ObjectID, *StateObject, error) {
	id := NonceObjectID(signer)

	if existing, ok := store.Get(id); ok {
		if nonce != existing.Version() {
			return id, nil, &InvalidNonceError{Expected: existing.Version(), Got: nonce}
		}
		return id, existing.NextVersion(), nil
	}

	if nonce != 0 {
		return id, nil, &InvalidNonceError{Expected: 0, Got: nonce}
	}
	return id, NewStateObject(id, signer, nil), nil
}
