package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// MoveIntent is a drop event: put LeadID at TargetIndex in the To column.
type MoveIntent struct {
	LeadID      string
	From        lead.Stage
	To          lead.Stage
	TargetIndex int
}

// Validate checks the intent's shape. It does not consult the store.
func (m MoveIntent) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.LeadID) == "" {
		fields["lead_id"] = domain.MsgRequired
	}
	if m.To == "" {
		fields["to_stage"] = "drop has no destination"
	} else if !m.To.IsValid() {
		fields["to_stage"] = fmt.Sprintf("invalid: %q", m.To)
	}
	if m.From != "" && !m.From.IsValid() {
		fields["from_stage"] = fmt.Sprintf("invalid: %q", m.From)
	}
	if m.TargetIndex < 0 {
		fields["target_index"] = fmt.Sprintf("must be non-negative, got %d", m.TargetIndex)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Phase is a step of the move state machine.
type Phase string

const (
	PhaseValidating            Phase = "validating"
	PhaseOptimisticallyApplied Phase = "optimistically_applied"
	PhaseReconciling           Phase = "reconciling"
	PhaseCommitted             Phase = "committed"
	PhaseRolledBack            Phase = "rolled_back"
)

// IsTerminal reports whether no further transition follows.
func (p Phase) IsTerminal() bool {
	return p == PhaseCommitted || p == PhaseRolledBack
}

// Move is the record of one accepted drop.
type Move struct {
	ID        string
	Intent    MoveIntent
	Phase     Phase
	Previous  lead.Stage
	StartedAt time.Time
	EndedAt   time.Time

	// Superseded is set when a rollback found a newer write on the lead and
	// left it alone.
	Superseded bool

	// Err is the reconciliation failure, if any.
	Err error
}

// Outcome says what a drop did.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeNoop      Outcome = "noop"
	OutcomeReordered Outcome = "reordered"
)

// DropResult is returned for every drop that passed validation. Move is only
// set for accepted drops.
type DropResult struct {
	Outcome Outcome
	Move    *Move
}
