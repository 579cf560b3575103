package tx

import (
	"fmt"

	"github.com/axiom-labs-org/core/pkg/types"
)

// WriteWithoutReadError is returned when a cell declares a write intent for
// an object absent from its read set.
type WriteWithoutReadError struct {
	Object types.ObjectID
}

func (e *WriteWithoutReadError) Error() string {
	return fmt.Sprintf("write intent for object %s without a matching read", e.Object.Short())
}
