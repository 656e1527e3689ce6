package lead

import (
	"fmt"
	"maps"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// Lead is a deal tracked on the board. Only Stage is ever changed by the
// board; the remaining fields are carried for display.
type Lead struct {
	ID          string
	Stage       Stage
	OwnerID     *string
	Amount      *decimal.Decimal
	Probability *int

	// Display holds downstream fields the board does not interpret.
	Display map[string]any
}

// Validate checks business rules for the Lead entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (l *Lead) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if !l.Stage.IsValid() {
		fields["stage"] = fmt.Sprintf("invalid: %q", l.Stage)
	}
	if l.Amount != nil && l.Amount.IsNegative() {
		fields["amount"] = fmt.Sprintf("must be non-negative, got %s", l.Amount)
	}
	if l.Probability != nil && (*l.Probability < 0 || *l.Probability > 100) {
		fields["probability"] = fmt.Sprintf("must be 0-100, got %d", *l.Probability)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsAssignedTo reports whether the lead's owner is profileID.
// An unassigned lead belongs to nobody.
func (l *Lead) IsAssignedTo(profileID string) bool {
	return l.OwnerID != nil && *l.OwnerID == profileID
}

// Clone returns a copy that shares no pointers with l.
func (l Lead) Clone() Lead {
	out := l
	if l.OwnerID != nil {
		v := *l.OwnerID
		out.OwnerID = &v
	}
	if l.Amount != nil {
		v := *l.Amount
		out.Amount = &v
	}
	if l.Probability != nil {
		v := *l.Probability
		out.Probability = &v
	}
	if l.Display != nil {
		out.Display = maps.Clone(l.Display)
	}
	return out
}
