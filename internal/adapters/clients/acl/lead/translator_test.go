package lead

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	domlead "github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

func TestLeadDTO_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 17,
		"status": "Meeting",
		"assigned_to": "u-9",
		"opportunity_amount": "1250.50",
		"probability": 40,
		"name": "Acme renewal",
		"contact": {"email": "ops@acme.test"}
	}`

	var dto LeadDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if dto.ID != "17" {
		t.Errorf("ID = %q, want %q", dto.ID, "17")
	}
	if dto.AssignedTo == nil || *dto.AssignedTo != "u-9" {
		t.Errorf("AssignedTo = %v, want u-9", dto.AssignedTo)
	}
	if dto.OpportunityAmount == nil || !dto.OpportunityAmount.Equal(decimal.RequireFromString("1250.5")) {
		t.Errorf("OpportunityAmount = %v, want 1250.5", dto.OpportunityAmount)
	}
	if len(dto.Extra) != 2 {
		t.Fatalf("Extra has %d keys, want 2: %v", len(dto.Extra), dto.Extra)
	}
	if dto.Extra["name"] != "Acme renewal" {
		t.Errorf("Extra[name] = %v, want %q", dto.Extra["name"], "Acme renewal")
	}
	if _, ok := dto.Extra["status"]; ok {
		t.Error("Extra should not contain typed fields")
	}
}

func TestFlexID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    FlexID
		wantErr bool
	}{
		{name: "string", input: `"abc-1"`, want: "abc-1"},
		{name: "integer", input: `42`, want: "42"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"id":1}`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got FlexID
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToDomainLead(t *testing.T) {
	t.Parallel()

	owner := FlexID("u-1")
	empty := FlexID("")
	negative := decimal.NewFromInt(-5)
	tooLikely := 130

	tests := []struct {
		name      string
		dto       LeadDTO
		wantOK    bool
		wantOwner string
	}{
		{
			name:      "assigned lead",
			dto:       LeadDTO{ID: "1", Status: "Won", AssignedTo: &owner},
			wantOK:    true,
			wantOwner: "u-1",
		},
		{
			name:   "unassigned lead",
			dto:    LeadDTO{ID: "2", Status: "Lead", AssignedTo: &empty},
			wantOK: true,
		},
		{
			name: "unknown stage is dropped",
			dto:  LeadDTO{ID: "3", Status: "Lost"},
		},
		{
			name: "missing id is dropped",
			dto:  LeadDTO{Status: "Lead"},
		},
		{
			name: "negative amount is dropped",
			dto:  LeadDTO{ID: "4", Status: "Lead", OpportunityAmount: &negative},
		},
		{
			name: "probability above 100 is dropped",
			dto:  LeadDTO{ID: "5", Status: "Lead", Probability: &tooLikely},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ToDomainLead(&tt.dto)
			if ok != tt.wantOK {
				t.Fatalf("ToDomainLead() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.ID != string(tt.dto.ID) {
				t.Errorf("ID = %q, want %q", got.ID, tt.dto.ID)
			}
			switch {
			case tt.wantOwner == "" && got.OwnerID != nil:
				t.Errorf("OwnerID = %q, want nil", *got.OwnerID)
			case tt.wantOwner != "" && (got.OwnerID == nil || *got.OwnerID != tt.wantOwner):
				t.Errorf("OwnerID = %v, want %q", got.OwnerID, tt.wantOwner)
			}
		})
	}
}

func TestToDomainListing(t *testing.T) {
	t.Parallel()

	dto := &ListResponseDTO{
		Leads: []LeadDTO{
			{ID: "1", Status: "Lead"},
			{ID: "2", Status: "Archived"},
			{ID: "3", Status: "Qualified"},
		},
		Contacts: json.RawMessage(`[{"id":1}]`),
		Users:    json.RawMessage(`[]`),
	}

	got, skipped := ToDomainListing(dto)

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(got.Leads) != 2 {
		t.Fatalf("len(Leads) = %d, want 2", len(got.Leads))
	}
	if got.Leads[1].Stage != domlead.StageQualified {
		t.Errorf("Leads[1].Stage = %q, want %q", got.Leads[1].Stage, domlead.StageQualified)
	}
	if string(got.Reference[domlead.RefContacts]) != `[{"id":1}]` {
		t.Errorf("Reference[contacts] = %s", got.Reference[domlead.RefContacts])
	}
	if _, ok := got.Reference[domlead.RefTags]; ok {
		t.Error("absent collections should not appear in Reference")
	}
	if _, ok := got.Reference[domlead.RefUsers]; !ok {
		t.Error("empty but present collections should be passed through")
	}
}

func TestToDomainCaller(t *testing.T) {
	t.Parallel()

	got := ToDomainCaller(&ProfileDTO{Role: "admin", ID: "7"})
	if !got.IsAdmin() {
		t.Errorf("Role = %q, want %q", got.Role, caller.RoleAdmin)
	}
	if got.ProfileID != "7" {
		t.Errorf("ProfileID = %q, want %q", got.ProfileID, "7")
	}
}

func TestToUpdateStatusRequest(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(ToUpdateStatusRequest(domlead.StageNegotiation))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(body) != `{"status":"Negotiation"}` {
		t.Errorf("body = %s, want %s", body, `{"status":"Negotiation"}`)
	}
}
