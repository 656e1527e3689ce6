package lead

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStages_Order(t *testing.T) {
	t.Parallel()

	want := []Stage{StageLead, StageMeeting, StageOpportunity, StageQualified, StageNegotiation, StageWon}
	got := Stages()
	if len(got) != len(want) {
		t.Fatalf("len(Stages()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stages()[%d] = %q, want %q", i, got[i], want[i])
		}
		if got[i].Position() != i {
			t.Errorf("%q.Position() = %d, want %d", got[i], got[i].Position(), i)
		}
	}

	got[0] = "mutated"
	if Stages()[0] != StageLead {
		t.Error("Stages() returned shared backing array")
	}
}

func TestStage_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage Stage
		want  bool
	}{
		{name: "Lead is valid", stage: StageLead, want: true},
		{name: "Won is valid", stage: StageWon, want: true},
		{name: "empty string is invalid", stage: "", want: false},
		{name: "unknown value is invalid", stage: "Lost", want: false},
		{name: "case sensitive", stage: "lead", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.stage.IsValid(); got != tt.want {
				t.Errorf("Stage(%q).IsValid() = %v, want %v", tt.stage, got, tt.want)
			}
		})
	}
}

func TestParseStage(t *testing.T) {
	t.Parallel()

	if s, err := ParseStage("Negotiation"); err != nil || s != StageNegotiation {
		t.Errorf("ParseStage(Negotiation) = %q, %v", s, err)
	}
	if _, err := ParseStage("Closed"); err == nil {
		t.Error("ParseStage(Closed) = nil error, want error")
	}
}

func TestLead_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Lead {
		return Lead{
			ID:          "r1",
			Stage:       StageLead,
			OwnerID:     strPtr("u1"),
			Amount:      decPtr("1250.50"),
			Probability: intPtr(40),
		}
	}

	tests := []struct {
		name      string
		modify    func(*Lead)
		wantField string
	}{
		{name: "valid lead passes", modify: func(_ *Lead) {}},
		{name: "unassigned lead passes", modify: func(l *Lead) { l.OwnerID = nil }},
		{name: "missing id fails", modify: func(l *Lead) { l.ID = " " }, wantField: "id"},
		{name: "unknown stage fails", modify: func(l *Lead) { l.Stage = "Lost" }, wantField: "stage"},
		{name: "negative amount fails", modify: func(l *Lead) { l.Amount = decPtr("-1") }, wantField: "amount"},
		{name: "probability over 100 fails", modify: func(l *Lead) { l.Probability = intPtr(101) }, wantField: "probability"},
		{name: "negative probability fails", modify: func(l *Lead) { l.Probability = intPtr(-5) }, wantField: "probability"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := valid()
			tt.modify(&l)
			err := l.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestLead_IsAssignedTo(t *testing.T) {
	t.Parallel()

	l := Lead{ID: "r1", Stage: StageLead, OwnerID: strPtr("u1")}
	if !l.IsAssignedTo("u1") {
		t.Error("IsAssignedTo(u1) = false, want true")
	}
	if l.IsAssignedTo("u2") {
		t.Error("IsAssignedTo(u2) = true, want false")
	}

	unassigned := Lead{ID: "r2", Stage: StageLead}
	if unassigned.IsAssignedTo("") {
		t.Error("unassigned IsAssignedTo(\"\") = true, want false")
	}
}

func TestLead_Clone(t *testing.T) {
	t.Parallel()

	orig := Lead{
		ID:          "r1",
		Stage:       StageLead,
		OwnerID:     strPtr("u1"),
		Probability: intPtr(10),
		Display:     map[string]any{"name": "Acme"},
	}

	cp := orig.Clone()
	*cp.OwnerID = "u2"
	*cp.Probability = 99
	cp.Display["name"] = "Other"

	if *orig.OwnerID != "u1" || *orig.Probability != 10 || orig.Display["name"] != "Acme" {
		t.Errorf("Clone() shares state with original: %+v", orig)
	}
}
