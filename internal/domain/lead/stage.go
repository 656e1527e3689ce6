package lead

import "fmt"

// Stage is one of the fixed pipeline phases a lead occupies. The wire value
// doubles as the column title.
type Stage string

const (
	StageLead        Stage = "Lead"
	StageMeeting     Stage = "Meeting"
	StageOpportunity Stage = "Opportunity"
	StageQualified   Stage = "Qualified"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
)

var stageOrder = [...]Stage{
	StageLead,
	StageMeeting,
	StageOpportunity,
	StageQualified,
	StageNegotiation,
	StageWon,
}

// Stages returns the stages in column order, left to right.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])
	return out
}

// IsValid returns true if the stage is one of the defined constants.
func (s Stage) IsValid() bool {
	return s.Position() >= 0
}

// Position returns the zero-based column index of the stage, or -1.
func (s Stage) Position() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// ParseStage converts a wire value into a Stage.
func ParseStage(v string) (Stage, error) {
	s := Stage(v)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown stage %q", v)
	}
	return s, nil
}
