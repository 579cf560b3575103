package protocol

import (
	"fmt"
)

// Stage names the pipeline stage a transaction failed in.
type Stage string

const (
	StagePrepare Stage = "prepare"
	StagePlan    Stage = "plan"
	StageExecute Stage = "execute"
	StageCommit  Stage = "commit"
)

// ProtocolError wraps any stage failure surfaced by the pipeline.
type ProtocolError struct {
	Stage Stage
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("transaction failed at %s: %v", e.Stage, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
