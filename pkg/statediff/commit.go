package statediff

import (
	"github.com/axiom-labs-org/core/pkg/state"
)

// Commit atomically applies a state diff to the store.
//
// The read set is validated in full first; any miss or version drift aborts
// with no writes applied. Version monotonicity of the writes themselves is
// the planner's and engine's responsibility, so writes land unconditionally
// once the reads pass.
func Commit(store *state.Store, diff *StateDiff) error {
	for id, expected := range diff.ReadSet {
		obj, ok := store.Get(id)
		if !ok {
			return &ObjectNotFoundError{Object: id}
		}
		if obj.Version() != expected {
			return &StaleReadError{Object: id, Expected: expected, Found: obj.Version()}
		}
	}

	for id, obj := range diff.Writes {
		if err := store.InsertOrUpdate(obj); err != nil {
			return &InvalidWriteError{Object: id}
		}
	}

	return nil
}
