package teisplit

import "fmt"

// Stage identifies a step of the extraction pipeline.
type Stage int

// Pipeline stages in execution order.
const (
	StageNone Stage = iota
	StageParsed
	StageHeaderBuilt
	StageSelected
	StageAssembled
	StageIntermediateWritten
	StageTransformed
	StageFinalWritten
	StageIntermediateDeleted
)

var stageNames = [...]string{
	StageNone:                "none",
	StageParsed:              "parsed",
	StageHeaderBuilt:         "header-built",
	StageSelected:            "selected",
	StageAssembled:           "assembled",
	StageIntermediateWritten: "intermediate-written",
	StageTransformed:         "transformed",
	StageFinalWritten:        "final-written",
	StageIntermediateDeleted: "intermediate-deleted",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError reports the stage a run failed to reach.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
