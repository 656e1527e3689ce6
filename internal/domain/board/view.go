package board

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// Status is the load state of a board.
type Status string

const (
	StatusNotLoaded Status = "not_loaded"
	StatusLoading   Status = "loading"
	StatusLoaded    Status = "loaded"
	StatusFailed    Status = "failed"
)

// Column is one stage of the board.
type Column struct {
	Stage lead.Stage
	Leads []lead.Lead

	// Total is the sum of known amounts in the column.
	Total decimal.Decimal
}

func (c *Column) summarize() {
	c.Total = decimal.Zero
	for _, l := range c.Leads {
		if l.Amount != nil {
			c.Total = c.Total.Add(*l.Amount)
		}
	}
}

// View is a point-in-time rendering of a board.
type View struct {
	ID       string
	Status   Status
	Caller   caller.Caller
	Columns  []Column
	LoadedAt time.Time

	// Pending counts moves still waiting on the lead API.
	Pending int

	// Error describes why the board is failed or not loaded, if known.
	Error string
}

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	NoticeMoveRolledBack NoticeKind = "move_rolled_back"
	NoticeLoadFailed     NoticeKind = "load_failed"
)

// Notice is a non-fatal message for the person looking at the board.
type Notice struct {
	Kind    NoticeKind
	LeadID  string
	MoveID  string
	Message string
	At      time.Time
}
