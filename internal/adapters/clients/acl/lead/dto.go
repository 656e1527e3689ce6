// Package lead holds the lead API wire types and their translation to the
// board's domain model.
package lead

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// FlexID accepts an identifier sent either as a JSON string or a JSON number.
// The lead API is not consistent about which.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// LeadDTO is one lead as the API returns it. Fields the board does not use
// end up in Extra.
type LeadDTO struct {
	ID                FlexID           `json:"id"`
	Status            string           `json:"status"`
	AssignedTo        *FlexID          `json:"assigned_to"`
	OpportunityAmount *decimal.Decimal `json:"opportunity_amount"`
	Probability       *int             `json:"probability"`

	Extra map[string]any `json:"-"`
}

// knownLeadFields are the keys LeadDTO decodes itself.
var knownLeadFields = []string{"id", "status", "assigned_to", "opportunity_amount", "probability"}

// UnmarshalJSON decodes the typed fields and keeps every other key in Extra.
func (d *LeadDTO) UnmarshalJSON(data []byte) error {
	type plain LeadDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownLeadFields {
		delete(all, k)
	}
	if len(all) > 0 {
		p.Extra = all
	}

	*d = LeadDTO(p)
	return nil
}

// ListResponseDTO is the GET /leads payload. The reference collections are
// kept raw.
type ListResponseDTO struct {
	Error      bool            `json:"error"`
	Message    string          `json:"message"`
	Leads      []LeadDTO       `json:"leads"`
	Contacts   json.RawMessage `json:"contacts,omitempty"`
	Tags       json.RawMessage `json:"tags,omitempty"`
	Users      json.RawMessage `json:"users,omitempty"`
	Industries json.RawMessage `json:"industries,omitempty"`
}

// UpdateStatusRequestDTO is the PUT /leads/{id} body.
type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// ProfileDTO is the GET /profile payload.
type ProfileDTO struct {
	Role string `json:"role"`
	ID   FlexID `json:"id"`
}
