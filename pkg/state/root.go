package state

import (
	"encoding/binary"
	"sort"

	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/types"
)

// stateRootDomain separates state-root preimages from every other hash.
var stateRootDomain = []byte("Axiom::StateRoot::v1")

// ComputeStateRoot hashes the entire store into a 32-byte commitment.
//
// Entries are sorted by object ID before hashing, so the root is independent
// of map iteration and insertion order. For each object the preimage commits
// to its ID, its big-endian version, and the blake3 hash of its data.
func ComputeStateRoot(store *Store) types.Hash {
	type entry struct {
		id  types.ObjectID
		obj *StateObject
	}

	entries := make([]entry, 0, store.Len())
	store.ForEachObject(func(id types.ObjectID, obj *StateObject) {
		entries = append(entries, entry{id: id, obj: obj})
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id.Cmp(entries[j].id) < 0
	})

	buf := make([]byte, 0, len(stateRootDomain)+len(entries)*(types.HashLength*2+8))
	buf = append(buf, stateRootDomain...)

	var version [8]byte
	for _, e := range entries {
		buf = append(buf, e.id.Bytes()...)

		binary.BigEndian.PutUint64(version[:], e.obj.Version())
		buf = append(buf, version[:]...)

		dataHash := blake3.Sum256(e.obj.Data())
		buf = append(buf, dataHash[:]...)
	}

	return blake3.Sum256(buf)
}
