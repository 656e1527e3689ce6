// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/pipeline-board/internal/app/fanout"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	domboard "github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// ErrBoardClosed is returned by a board that has been unmounted.
var ErrBoardClosed = fmt.Errorf("board closed: %w", domain.ErrNotFound)

const (
	maxNotices    = 100
	moveRetention = 10 * time.Minute
)

// Board is one mounted board: the lead store for one caller, its load state
// and the moves in flight against it.
//
// The store is only written by Load (wholesale replace) and by drops (one
// lead's stage and position). Everything else reads.
type Board struct {
	id      string
	leads   ports.LeadClient
	cfg     config.BoardConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time

	store *domboard.Store

	// loadMu serializes loads. dropMu serializes the validate-and-apply
	// half of drops so the snapshot and the optimistic write see the same
	// store.
	loadMu sync.Mutex
	dropMu sync.Mutex

	mu        sync.Mutex
	creds     caller.Credentials
	caller    caller.Caller
	status    domboard.Status
	reason    string
	loadedAt  time.Time
	reference map[string]json.RawMessage
	notices   []domboard.Notice
	moves     map[string]*domboard.Move
	pending   int
	closed    bool
	touched   time.Time

	inflight sync.WaitGroup
}

// NewBoard creates an empty, not yet loaded board. metrics may be nil.
func NewBoard(id string, leads ports.LeadClient, cfg config.BoardConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Board{
		id:      id,
		leads:   leads,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.With(slog.String("board_id", id)),
		now:     time.Now,
		store:   domboard.NewStore(),
		status:  domboard.StatusNotLoaded,
		moves:   make(map[string]*domboard.Move),
	}
	b.touched = b.now()
	return b
}

// ID returns the board's session id.
func (b *Board) ID() string { return b.id }

// Identify sets who is looking at the board and the credentials used on
// their behalf. It reports whether the identity (role or profile id)
// changed; only then does the board need a reload.
func (b *Board) Identify(c caller.Caller, creds caller.Credentials) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	changed := !b.caller.SameIdentity(c)
	b.caller = c
	b.creds = creds
	return changed
}

// Caller returns the current caller.
func (b *Board) Caller() caller.Caller {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.caller
}

// Load replaces the store with an authoritative fetch for the current
// caller.
//
// Without credentials or a resolved caller nothing is fetched: the store is
// emptied and the board reports not_loaded. A failed fetch keeps the store
// as it was, marks the board failed and queues one load_failed notice.
func (b *Board) Load(ctx context.Context) error {
	b.loadMu.Lock()
	defer b.loadMu.Unlock()

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBoardClosed
	}
	c, creds := b.caller, b.creds
	if !creds.Present() || c.IsZero() {
		b.store.Clear()
		b.reference = nil
		b.status = domboard.StatusNotLoaded
		b.reason = "caller profile unavailable"
		if !creds.Present() {
			b.reason = "missing credentials"
		}
		b.mu.Unlock()
		return fmt.Errorf("loading board %s: %s: %w", b.id, b.reason, domain.ErrUnauthenticated)
	}
	b.status = domboard.StatusLoading
	b.mu.Unlock()

	start := b.now()
	listing, err := b.fetch(ctx, c, creds)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBoardClosed
	}
	if err != nil {
		b.status = domboard.StatusFailed
		b.reason = err.Error()
		b.pushNotice(domboard.Notice{
			Kind:    domboard.NoticeLoadFailed,
			Message: "The board could not be loaded. Try reloading.",
		})
		b.recordLoad(ctx, "failure")
		b.logger.ErrorContext(ctx, "board load failed",
			slog.String("operation", "Board.Load"),
			slog.String("strategy", b.cfg.LoadStrategy),
			slog.Any("error", err),
		)
		return fmt.Errorf("loading board %s: %w", b.id, err)
	}

	b.store.Replace(visibleOnly(listing.Leads, c))
	b.reference = listing.Reference
	b.status = domboard.StatusLoaded
	b.reason = ""
	b.loadedAt = b.now()
	b.recordLoad(ctx, "success")

	b.logger.InfoContext(ctx, "board loaded",
		slog.Int("leads", b.store.Len()),
		slog.Duration("elapsed", b.loadedAt.Sub(start)),
	)
	return nil
}

// fetch runs the configured load strategy. Any failed request fails the
// whole load; a partial board is never installed.
func (b *Board) fetch(ctx context.Context, c caller.Caller, creds caller.Credentials) (lead.Listing, error) {
	var owner string
	if !c.IsAdmin() {
		owner = c.ProfileID
	}

	if b.cfg.LoadStrategy == config.LoadStrategySingle {
		return b.leads.ListLeads(ctx, creds, lead.Filter{AssignedTo: owner})
	}

	results := fanout.Run(ctx, b.cfg.LoadConcurrency, lead.Stages(),
		func(ctx context.Context, st lead.Stage) (lead.Listing, error) {
			return b.leads.ListLeads(ctx, creds, lead.Filter{Stage: st, AssignedTo: owner})
		},
	)
	listings, err := fanout.Collect(results)
	if err != nil {
		return lead.Listing{}, err
	}

	merged := lead.Listing{Reference: make(map[string]json.RawMessage)}
	for _, l := range listings {
		merged.Leads = append(merged.Leads, l.Leads...)
		for name, raw := range l.Reference {
			if _, seen := merged.Reference[name]; !seen {
				merged.Reference[name] = raw
			}
		}
	}
	return merged, nil
}

// visibleOnly drops leads the caller may not see. The API filters by owner
// already; this keeps the store honest if it does not.
func visibleOnly(leads []lead.Lead, c caller.Caller) []lead.Lead {
	visible := domboard.VisibleTo(c)
	out := make([]lead.Lead, 0, len(leads))
	for i := range leads {
		if visible(&leads[i]) {
			out = append(out, leads[i])
		}
	}
	return out
}

// View renders the board. A board that is not loaded shows six empty
// columns, even when an earlier load left data in the store.
func (b *Board) View() domboard.View {
	b.mu.Lock()
	v := domboard.View{
		ID:       b.id,
		Status:   b.status,
		Caller:   b.caller,
		LoadedAt: b.loadedAt,
		Pending:  b.pending,
		Error:    b.reason,
	}
	b.mu.Unlock()

	if v.Status == domboard.StatusLoaded {
		v.Columns = domboard.NewIndex(b.store, v.Caller).Columns()
	} else {
		v.Columns = domboard.EmptyColumns()
	}
	return v
}

// Column renders one stage.
func (b *Board) Column(stage lead.Stage) (domboard.Column, error) {
	if !stage.IsValid() {
		return domboard.Column{}, domain.NewValidationError("stage", fmt.Sprintf("invalid: %q", stage))
	}

	b.mu.Lock()
	status, c := b.status, b.caller
	b.mu.Unlock()

	if status != domboard.StatusLoaded {
		return domboard.EmptyColumns()[stage.Position()], nil
	}
	return domboard.NewIndex(b.store, c).Column(stage), nil
}

// Reference returns the auxiliary collections from the last good load.
func (b *Board) Reference() map[string]json.RawMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return maps.Clone(b.reference)
}

// TakeNotices returns the queued notices and empties the queue.
func (b *Board) TakeNotices() []domboard.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.notices
	b.notices = nil
	if out == nil {
		out = []domboard.Notice{}
	}
	return out
}

// Move returns a copy of the tracked move with the given id.
func (b *Board) Move(moveID string) (domboard.Move, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.moves[moveID]
	if !ok {
		return domboard.Move{}, fmt.Errorf("move %s: %w", moveID, domain.ErrNotFound)
	}
	return *m, nil
}

// Close tears the board down. Moves still in flight finish against an empty
// store, so their outcome changes nothing. Close is idempotent.
func (b *Board) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.notices = nil
	b.reference = nil
	b.mu.Unlock()

	b.store.Clear()
}

// Wait blocks until every in-flight move has resolved.
func (b *Board) Wait() {
	b.inflight.Wait()
}

// touch marks the board as used now.
func (b *Board) touch() {
	b.mu.Lock()
	b.touched = b.now()
	b.mu.Unlock()
}

// idleSince returns when the board was last used.
func (b *Board) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.touched
}

// pushNotice queues n, dropping the oldest notice when the queue is full.
// Callers hold b.mu.
func (b *Board) pushNotice(n domboard.Notice) {
	if n.At.IsZero() {
		n.At = b.now()
	}
	if len(b.notices) >= maxNotices {
		b.notices = b.notices[1:]
	}
	b.notices = append(b.notices, n)
}

func (b *Board) recordLoad(ctx context.Context, result string) {
	if b.metrics == nil {
		return
	}
	b.metrics.LoadTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
		telemetry.AttrLoadStrategy.String(b.cfg.LoadStrategy),
	))
}

func (b *Board) recordMove(ctx context.Context, result string) {
	if b.metrics == nil {
		return
	}
	b.metrics.MoveTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}
