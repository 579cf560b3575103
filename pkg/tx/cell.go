package tx

import (
	"encoding/binary"
	"sort"

	"lukechampine.com/blake3"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// WriteIntent declares what a cell may do to an object: create it, modify
// it, or delete it. Authorization happens against the intent, not against
// realized writes. The byte value of each intent is part of the cell id
// encoding and must not change.
type WriteIntent uint8

const (
	IntentCreate WriteIntent = 0
	IntentModify WriteIntent = 1
	IntentDelete WriteIntent = 2
)

func (w WriteIntent) String() string {
	switch w {
	case IntentCreate:
		return "create"
	case IntentModify:
		return "modify"
	case IntentDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// WriteIntentSet maps object IDs to declared intents.
type WriteIntentSet map[types.ObjectID]WriteIntent

// CallData is the opaque execution payload of a cell. The protocol never
// interprets it; it is handed to the execution engine verbatim.
type CallData struct {
	// Target of the call (contract or object).
	Target types.ObjectID

	// Method selector or entrypoint identifier.
	Selector []byte

	// Encoded call payload.
	Payload []byte
}

// TransactionCell is the smallest schedulable execution unit. It declares
// what state may be touched, not what will be written.
type TransactionCell struct {
	slot         types.Slot
	readSet      state.ReadSet
	writeIntents WriteIntentSet
	call         CallData
}

// NewTransactionCell builds a cell, enforcing that every object in the
// write-intent set also appears in the read set. That guarantee is what lets
// optimistic concurrency cover every object the cell proposes to touch.
func NewTransactionCell(slot types.Slot, readSet state.ReadSet, writeIntents WriteIntentSet, call CallData) (*TransactionCell, error) {
	for id := range writeIntents {
		if _, ok := readSet[id]; !ok {
			return nil, &WriteWithoutReadError{Object: id}
		}
	}

	rs := make(state.ReadSet, len(readSet))
	for id, version := range readSet {
		rs[id] = version
	}
	wi := make(WriteIntentSet, len(writeIntents))
	for id, intent := range writeIntents {
		wi[id] = intent
	}

	return &TransactionCell{
		slot:         slot,
		readSet:      rs,
		writeIntents: wi,
		call:         call,
	}, nil
}

// ID computes the deterministic cell identifier.
//
// The id commits to the read set, the write-intent set, and the call data,
// each in canonical (sorted-by-id) order. It deliberately excludes the slot:
// identical intent in different slots has the same id.
func (c *TransactionCell) ID() types.Hash {
	buf := make([]byte, 0, 256)

	readIDs := make([]types.ObjectID, 0, len(c.readSet))
	for id := range c.readSet {
		readIDs = append(readIDs, id)
	}
	sortObjectIDs(readIDs)

	var version [8]byte
	for _, id := range readIDs {
		buf = append(buf, id.Bytes()...)
		binary.BigEndian.PutUint64(version[:], c.readSet[id])
		buf = append(buf, version[:]...)
	}

	writeIDs := make([]types.ObjectID, 0, len(c.writeIntents))
	for id := range c.writeIntents {
		writeIDs = append(writeIDs, id)
	}
	sortObjectIDs(writeIDs)

	for _, id := range writeIDs {
		buf = append(buf, id.Bytes()...)
		buf = append(buf, byte(c.writeIntents[id]))
	}

	buf = append(buf, c.call.Target.Bytes()...)
	buf = append(buf, c.call.Selector...)
	buf = append(buf, c.call.Payload...)

	return blake3.Sum256(buf)
}

// Slot returns the slot the cell was authored for.
func (c *TransactionCell) Slot() types.Slot {
	return c.slot
}

// ReadSet returns the declared reads. Callers must not mutate the map.
func (c *TransactionCell) ReadSet() state.ReadSet {
	return c.readSet
}

// WriteIntents returns the declared write intents. Callers must not mutate
// the map.
func (c *TransactionCell) WriteIntents() WriteIntentSet {
	return c.writeIntents
}

// Call returns the opaque call data.
func (c *TransactionCell) Call() CallData {
	return c.call
}

func sortObjectIDs(ids []types.ObjectID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Cmp(ids[j]) < 0
	})
}
