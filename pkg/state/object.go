package state

import (
	"github.com/axiom-labs-org/core/pkg/types"
)

// Version is the monotonic version counter of a state object.
type Version = uint64

// StateObject is the smallest unit of mutable on-chain state. Objects are
// isolated, versioned, and owned by a single address. The id and owner are
// fixed at creation; every mutation produces a new object with the version
// incremented by one.
type StateObject struct {
	id      types.ObjectID
	owner   types.Address
	version Version
	data    []byte
}

// NewStateObject creates a state object at version 0.
func NewStateObject(id types.ObjectID, owner types.Address, data []byte) *StateObject {
	return &StateObject{
		id:      id,
		owner:   owner,
		version: 0,
		data:    append([]byte(nil), data...),
	}
}

// ID returns the object identifier.
func (o *StateObject) ID() types.ObjectID {
	return o.id
}

// Owner returns the owning address.
func (o *StateObject) Owner() types.Address {
	return o.owner
}

// Version returns the current version number.
func (o *StateObject) Version() Version {
	return o.version
}

// Data returns the object payload. Callers must treat the returned slice as
// read-only; mutations go through WithData.
func (o *StateObject) Data() []byte {
	return o.data
}

// NextVersion produces a copy of the object with the version incremented and
// the data unchanged.
func (o *StateObject) NextVersion() *StateObject {
	return &StateObject{
		id:      o.id,
		owner:   o.owner,
		version: o.version + 1,
		data:    append([]byte(nil), o.data...),
	}
}

// WithData produces a copy of the object with the version incremented and
// new data. The receiver is left untouched.
func (o *StateObject) WithData(data []byte) *StateObject {
	return &StateObject{
		id:      o.id,
		owner:   o.owner,
		version: o.version + 1,
		data:    append([]byte(nil), data...),
	}
}
