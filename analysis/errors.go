package analysis

import (
	"errors"
	"fmt"
)

// Stage names one step of the pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageLoad       Stage = "load"
	StageValidate   Stage = "validate"
	StageBuild      Stage = "build"
	StageTraverse   Stage = "traverse"
	StageCentrality Stage = "centrality"
	StageDegree     Stage = "degree"
	StageComponents Stage = "components"
	StageRender     Stage = "render"
)

// Sentinel errors for the pipeline.
var (
	// ErrUnknownStart indicates the requested start country is not in the graph.
	ErrUnknownStart = errors.New("analysis: start country not found")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
)

// StageError tags a pipeline failure with the stage that produced it.
// errors.As recovers the stage; errors.Is sees through to the cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("analysis: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(s Stage, err error) error {
	return &StageError{Stage: s, Err: err}
}
