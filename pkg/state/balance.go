package state

import (
	"encoding/binary"

	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/types"
)

// balanceDomain is the derivation namespace for balance objects.
var balanceDomain = []byte("axiom::balance")

// BalanceObjectID derives the deterministic balance object ID for an
// address. Balance objects are ordinary state objects whose payload is a
// little-endian u64; the core does not special-case them beyond the flat
// fee deduction applied by the planner.
func BalanceObjectID(addr types.Address) types.ObjectID {
	buf := make([]byte, 0, len(balanceDomain)+types.AddressLength)
	buf = append(buf, balanceDomain...)
	buf = append(buf, addr.Bytes()...)
	return types.ObjectID(blake3.Sum256(buf))
}

// DecodeBalance reads the little-endian u64 payload of a balance object.
func DecodeBalance(obj *StateObject) (uint64, error) {
	data := obj.Data()
	if len(data) != 8 {
		return 0, &InvalidBalanceError{Object: obj.ID(), Length: len(data)}
	}
	return binary.LittleEndian.Uint64(data), nil
}

// EncodeBalance encodes a balance as a little-endian u64 payload.
func EncodeBalance(balance uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, balance)
	return buf
}
