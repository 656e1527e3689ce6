// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// CallerResponse identifies who the board was loaded for.
type CallerResponse struct {
	Role      string `json:"role"`
	ProfileID string `json:"profile_id"`
}

// LeadResponse is one card on the board. Amount is a decimal string to avoid
// float rounding.
type LeadResponse struct {
	ID          string         `json:"id"`
	Stage       string         `json:"stage"`
	OwnerID     *string        `json:"owner_id"`
	Amount      *string        `json:"amount,omitempty"`
	Probability *int           `json:"probability,omitempty"`
	Display     map[string]any `json:"display,omitempty"`
}

// ColumnResponse is one stage of the board.
type ColumnResponse struct {
	Stage string         `json:"stage"`
	Leads []LeadResponse `json:"leads"`
	Count int            `json:"count"`
	Total string         `json:"total"`
}

// BoardResponse is the rendered board.
type BoardResponse struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	Caller   CallerResponse   `json:"caller"`
	Columns  []ColumnResponse `json:"columns"`
	Pending  int              `json:"pending"`
	LoadedAt string           `json:"loaded_at,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// MoveResponse is the state of an accepted drop.
type MoveResponse struct {
	ID          string `json:"id"`
	LeadID      string `json:"lead_id"`
	FromStage   string `json:"from_stage"`
	ToStage     string `json:"to_stage"`
	Phase       string `json:"phase"`
	Superseded  bool   `json:"superseded,omitempty"`
	Error       string `json:"error,omitempty"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// DropResponse says what a drop did. Move is present for accepted drops.
type DropResponse struct {
	Outcome string        `json:"outcome"`
	Move    *MoveResponse `json:"move,omitempty"`
}

// NoticeResponse is one user-facing notice.
type NoticeResponse struct {
	Kind    string `json:"kind"`
	LeadID  string `json:"lead_id,omitempty"`
	MoveID  string `json:"move_id,omitempty"`
	Message string `json:"message"`
	At      string `json:"at"`
}

// NoticeListResponse wraps drained notices.
type NoticeListResponse struct {
	Notices []NoticeResponse `json:"notices"`
	Count   int              `json:"count"`
}

// ToLeadResponse converts a domain Lead.
func ToLeadResponse(l *lead.Lead) LeadResponse {
	resp := LeadResponse{
		ID:          l.ID,
		Stage:       l.Stage.String(),
		OwnerID:     l.OwnerID,
		Probability: l.Probability,
		Display:     l.Display,
	}
	if l.Amount != nil {
		s := l.Amount.String()
		resp.Amount = &s
	}
	return resp
}

// ToColumnResponse converts a domain Column.
func ToColumnResponse(c *board.Column) ColumnResponse {
	leads := make([]LeadResponse, len(c.Leads))
	for i := range c.Leads {
		leads[i] = ToLeadResponse(&c.Leads[i])
	}
	return ColumnResponse{
		Stage: c.Stage.String(),
		Leads: leads,
		Count: len(leads),
		Total: c.Total.String(),
	}
}

// ToBoardResponse converts a domain View.
func ToBoardResponse(v *board.View) BoardResponse {
	cols := make([]ColumnResponse, len(v.Columns))
	for i := range v.Columns {
		cols[i] = ToColumnResponse(&v.Columns[i])
	}
	return BoardResponse{
		ID:     v.ID,
		Status: string(v.Status),
		Caller: CallerResponse{
			Role:      string(v.Caller.Role),
			ProfileID: v.Caller.ProfileID,
		},
		Columns:  cols,
		Pending:  v.Pending,
		LoadedAt: formatTime(v.LoadedAt),
		Error:    v.Error,
	}
}

// ToMoveResponse converts a domain Move.
func ToMoveResponse(m *board.Move) MoveResponse {
	resp := MoveResponse{
		ID:          m.ID,
		LeadID:      m.Intent.LeadID,
		FromStage:   m.Previous.String(),
		ToStage:     m.Intent.To.String(),
		Phase:       string(m.Phase),
		Superseded:  m.Superseded,
		StartedAt:   formatTime(m.StartedAt),
		CompletedAt: formatTime(m.EndedAt),
	}
	if m.Err != nil {
		resp.Error = m.Err.Error()
	}
	return resp
}

// ToDropResponse converts a domain DropResult.
func ToDropResponse(r *board.DropResult) DropResponse {
	resp := DropResponse{Outcome: string(r.Outcome)}
	if r.Move != nil {
		m := ToMoveResponse(r.Move)
		resp.Move = &m
	}
	return resp
}

// ToNoticeListResponse converts drained notices.
func ToNoticeListResponse(notices []board.Notice) NoticeListResponse {
	items := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		items[i] = NoticeResponse{
			Kind:    string(n.Kind),
			LeadID:  n.LeadID,
			MoveID:  n.MoveID,
			Message: n.Message,
			At:      formatTime(n.At),
		}
	}
	return NoticeListResponse{Notices: items, Count: len(items)}
}

// ReferenceResponse carries the reference collections verbatim.
type ReferenceResponse map[string]json.RawMessage

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
