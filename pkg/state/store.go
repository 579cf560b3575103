package state

import (
	"github.com/axiom-labs-org/core/pkg/types"
)

// ReadSet maps object IDs to the versions a transaction expects to observe.
// It is unordered at the data level and canonicalized whenever hashed.
type ReadSet map[types.ObjectID]Version

// WriteSet maps object IDs to proposed replacement objects.
type WriteSet map[types.ObjectID]*StateObject

// Store is the in-memory, version-aware object store. It enforces object
// isolation, version monotonicity, and atomic write-set application.
//
// The store is exclusively owned by the executor that drives it. Iteration
// order of the underlying map is never exposed without canonical sorting.
type Store struct {
	objects map[types.ObjectID]*StateObject
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		objects: make(map[types.ObjectID]*StateObject),
	}
}

// Get retrieves an object by ID.
func (s *Store) Get(id types.ObjectID) (*StateObject, bool) {
	obj, ok := s.objects[id]
	return obj, ok
}

// GetObject implements the execution engine's read-only state view.
func (s *Store) GetObject(id types.ObjectID) (*StateObject, bool) {
	return s.Get(id)
}

// Insert adds a new object. It fails if the ID is already present.
func (s *Store) Insert(obj *StateObject) error {
	if _, ok := s.objects[obj.ID()]; ok {
		return &ObjectAlreadyExistsError{Object: obj.ID()}
	}
	s.objects[obj.ID()] = obj
	return nil
}

// InsertOrUpdate unconditionally replaces the object under its ID.
func (s *Store) InsertOrUpdate(obj *StateObject) error {
	s.objects[obj.ID()] = obj
	return nil
}

// Apply validates a read set and a write set against the live state and, if
// both pass, commits every write. On any validation failure no writes occur.
//
// Read validation: each read entry must exist and match its expected version.
// Write validation: an existing object may only be replaced by version+1; a
// new object must arrive at version 0.
func (s *Store) Apply(readSet ReadSet, writeSet WriteSet) error {
	for id, expected := range readSet {
		existing, ok := s.objects[id]
		if !ok {
			return &ObjectNotFoundError{Object: id}
		}
		if existing.Version() != expected {
			return &StaleReadError{
				Object:   id,
				Expected: expected,
				Found:    existing.Version(),
			}
		}
	}

	for id, next := range writeSet {
		if existing, ok := s.objects[id]; ok {
			if next.Version() != existing.Version()+1 {
				return &InvalidVersionError{
					Object:   id,
					Expected: existing.Version() + 1,
					Found:    next.Version(),
				}
			}
		} else if next.Version() != 0 {
			return &InvalidVersionError{
				Object:   id,
				Expected: 0,
				Found:    next.Version(),
			}
		}
	}

	for id, next := range writeSet {
		s.objects[id] = next
	}
	return nil
}

// Len returns the number of objects held.
func (s *Store) Len() int {
	return len(s.objects)
}

// ForEachObject visits every object in unspecified order. Used for
// state-root computation, which sorts before hashing.
func (s *Store) ForEachObject(fn func(types.ObjectID, *StateObject)) {
	for id, obj := range s.objects {
		fn(id, obj)
	}
}
