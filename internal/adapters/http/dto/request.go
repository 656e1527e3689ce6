package dto

import (
	"math"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// MoveRequest is the JSON body of a drop. FromStage is optional; when set,
// the drop is rejected if the lead has moved on since the client rendered it.
// TargetIndex defaults to the end of the destination column.
type MoveRequest struct {
	LeadID      string `json:"lead_id"`
	FromStage   string `json:"from_stage,omitempty"`
	ToStage     string `json:"to_stage"`
	TargetIndex *int   `json:"target_index,omitempty"`
}

// Validate checks field presence and stage names.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveRequest) Validate() error {
	return r.ToMoveIntent().Validate()
}

// endOfColumn stands in for a missing target index; Store.Move treats any
// index past the last member as "append".
const endOfColumn = math.MaxInt

// ToMoveIntent converts the request to a domain MoveIntent.
func (r *MoveRequest) ToMoveIntent() board.MoveIntent {
	idx := endOfColumn
	if r.TargetIndex != nil {
		idx = *r.TargetIndex
	}
	return board.MoveIntent{
		LeadID:      strings.TrimSpace(r.LeadID),
		From:        lead.Stage(r.FromStage),
		To:          lead.Stage(r.ToStage),
		TargetIndex: idx,
	}
}
