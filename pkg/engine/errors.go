package engine

import (
	"fmt"

	"github.com/axiom-labs-org/core/pkg/types"
)

// UnauthorizedReadError is returned when execution touches an object its
// plan never declared, or a declared read is absent from the view.
type UnauthorizedReadError struct {
	Object types.ObjectID
}

func (e *UnauthorizedReadError) Error() string {
	return fmt.Sprintf("unauthorized read of object %s", e.Object.Short())
}

// UnauthorizedWriteError is returned when execution proposes a write with
// no matching intent, violates an intent's existence expectation, or tries
// to shadow a protocol-forced write.
type UnauthorizedWriteError struct {
	Object types.ObjectID
}

func (e *UnauthorizedWriteError) Error() string {
	return fmt.Sprintf("unauthorized write to object %s", e.Object.Short())
}

// ExecutionFailedError is a deterministic failure inside engine logic.
type ExecutionFailedError struct {
	Reason string
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Reason)
}
