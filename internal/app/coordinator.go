package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/pipeline-board/internal/app/context"
	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	domboard "github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Move results recorded on the board.move.total counter.
const (
	moveResultRejected   = "rejected"
	moveResultNoop       = "noop"
	moveResultReordered  = "reordered"
	moveResultCommitted  = "committed"
	moveResultRolledBack = "rolled_back"
)

// applyStage is the optimistic half of a move: it writes the new stage into
// the store and, on rollback, restores the snapshot unless a newer write
// has taken the lead since.
type applyStage struct {
	store  *domboard.Store
	intent domboard.MoveIntent
	keep   func(*lead.Lead) bool

	snap       domboard.Snapshot
	gen        uint64
	superseded bool
}

func (a *applyStage) Execute(_ context.Context) error {
	snap, ok := a.store.Snapshot(a.intent.LeadID)
	if !ok {
		return fmt.Errorf("lead %s: %w", a.intent.LeadID, domain.ErrNotFound)
	}
	gen, err := a.store.Move(a.intent.LeadID, a.intent.To, a.intent.TargetIndex, a.keep)
	if err != nil {
		return err
	}
	a.snap, a.gen = snap, gen
	return nil
}

func (a *applyStage) Rollback(_ context.Context) error {
	a.superseded = !a.store.Restore(a.snap, a.gen)
	return nil
}

func (a *applyStage) Description() string {
	return fmt.Sprintf("move lead %s to %s", a.intent.LeadID, a.intent.To)
}

// persistStage sends the stage change to the lead API. It is always the
// last action of a move, so it never needs undoing.
type persistStage struct {
	client ports.LeadClient
	creds  caller.Credentials
	leadID string
	stage  lead.Stage
}

func (p *persistStage) Execute(ctx context.Context) error {
	return p.client.UpdateLeadStage(ctx, p.creds, p.leadID, p.stage)
}

func (p *persistStage) Rollback(_ context.Context) error { return nil }

func (p *persistStage) Description() string {
	return fmt.Sprintf("persist lead %s stage %s", p.leadID, p.stage)
}

// Drop handles one drag-and-drop.
//
// Rejections leave the store untouched: a malformed intent, a board that is
// not loaded, an unknown or invisible lead, or a FromStage that no longer
// matches. A non-admin dropping a lead missing from their board gets
// ErrForbidden, since their store only ever holds their own leads.
//
// Dropping a lead where it already is does nothing. A drop within the same
// column reorders locally and is not sent anywhere; only the stage is
// persisted.
//
// Anything else is applied to the store at once and reconciled with the lead
// API in the background. The returned move is in the reconciling phase; a
// failed reconciliation restores the previous stage and queues exactly one
// move_rolled_back notice.
func (b *Board) Drop(ctx context.Context, intent domboard.MoveIntent) (domboard.DropResult, error) {
	logger := b.logger.With(slog.String("lead_id", intent.LeadID))

	if err := intent.Validate(); err != nil {
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, err
	}

	b.dropMu.Lock()
	defer b.dropMu.Unlock()

	b.mu.Lock()
	closed, status, c, creds := b.closed, b.status, b.caller, b.creds
	b.touched = b.now()
	b.mu.Unlock()

	if closed {
		return domboard.DropResult{}, ErrBoardClosed
	}
	if status != domboard.StatusLoaded {
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, fmt.Errorf("board is %s: %w", status, domain.ErrConflict)
	}

	current, ok := b.store.Get(intent.LeadID)
	if !ok && !c.IsAdmin() {
		// Leads owned by others never reach a non-admin store.
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, fmt.Errorf("lead %s is not on your board: %w", intent.LeadID, domain.ErrForbidden)
	}
	if !ok {
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, fmt.Errorf("lead %s: %w", intent.LeadID, domain.ErrNotFound)
	}
	if !domboard.IsVisible(&current, c) {
		b.recordMove(ctx, moveResultRejected)
		logger.WarnContext(ctx, "drop rejected: lead not visible to caller",
			slog.String("profile_id", c.ProfileID),
		)
		return domboard.DropResult{}, fmt.Errorf("lead %s is not assigned to you: %w", intent.LeadID, domain.ErrForbidden)
	}
	if intent.From != "" && intent.From != current.Stage {
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, fmt.Errorf("lead %s is in %s, not %s: %w",
			intent.LeadID, current.Stage, intent.From, domain.ErrConflict)
	}

	ix := domboard.NewIndex(b.store, c)
	if intent.To == current.Stage {
		return b.reorder(ctx, ix, c, intent)
	}

	move := &domboard.Move{
		ID:        uuid.NewString(),
		Intent:    intent,
		Phase:     domboard.PhaseValidating,
		Previous:  current.Stage,
		StartedAt: b.now(),
	}
	move.Intent.From = current.Stage

	op := appctx.New(ctx)
	apply := &applyStage{store: b.store, intent: intent, keep: domboard.VisibleTo(c)}
	if err := op.Apply(apply); err != nil {
		b.recordMove(ctx, moveResultRejected)
		return domboard.DropResult{}, err
	}
	move.Phase = domboard.PhaseOptimisticallyApplied

	if err := op.AddAction(&persistStage{
		client: b.leads,
		creds:  creds,
		leadID: intent.LeadID,
		stage:  intent.To,
	}); err != nil {
		b.store.Restore(apply.snap, apply.gen)
		return domboard.DropResult{}, err
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return domboard.DropResult{}, ErrBoardClosed
	}
	move.Phase = domboard.PhaseReconciling
	b.pruneMoves()
	b.moves[move.ID] = move
	b.pending++
	b.inflight.Add(1)
	accepted := *move
	b.mu.Unlock()

	logger.InfoContext(ctx, "move applied",
		slog.String("move_id", move.ID),
		slog.String("from", string(move.Previous)),
		slog.String("to", string(intent.To)),
	)

	go b.reconcile(ctx, op, move, apply)

	return domboard.DropResult{Outcome: domboard.OutcomeAccepted, Move: &accepted}, nil
}

// reorder handles a drop inside the lead's own column.
func (b *Board) reorder(ctx context.Context, ix domboard.Index, c caller.Caller, intent domboard.MoveIntent) (domboard.DropResult, error) {
	_, idx, _ := ix.IndexOf(intent.LeadID)
	last := len(ix.ColumnFor(intent.To)) - 1
	if min(intent.TargetIndex, last) == idx {
		b.recordMove(ctx, moveResultNoop)
		return domboard.DropResult{Outcome: domboard.OutcomeNoop}, nil
	}

	if _, err := b.store.Move(intent.LeadID, intent.To, intent.TargetIndex, domboard.VisibleTo(c)); err != nil {
		return domboard.DropResult{}, err
	}
	b.recordMove(ctx, moveResultReordered)
	return domboard.DropResult{Outcome: domboard.OutcomeReordered}, nil
}

// reconcile commits the move against the lead API on a context detached
// from the request, bounded by board.sync_timeout.
func (b *Board) reconcile(ctx context.Context, op *appctx.OpContext, move *domboard.Move, apply *applyStage) {
	defer b.inflight.Done()

	// The request's logger keeps its request and correlation ids.
	ctx = logging.WithAttrs(context.WithoutCancel(ctx),
		slog.String("board_id", b.id),
		slog.String("move_id", move.ID),
	)
	syncCtx, cancel := context.WithTimeout(ctx, b.cfg.SyncTimeout)
	defer cancel()

	err := op.Commit(syncCtx)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending--
	move.EndedAt = b.now()
	if b.metrics != nil {
		b.metrics.ReconcileDuration.Record(ctx, move.EndedAt.Sub(move.StartedAt).Seconds())
	}

	if err == nil {
		move.Phase = domboard.PhaseCommitted
		b.recordMove(ctx, moveResultCommitted)
		return
	}

	move.Phase = domboard.PhaseRolledBack
	move.Err = err
	move.Superseded = apply.superseded
	b.recordMove(ctx, moveResultRolledBack)

	if b.closed {
		return
	}

	b.logger.WarnContext(ctx, "move rolled back",
		slog.String("operation", "Board.reconcile"),
		slog.String("move_id", move.ID),
		slog.String("lead_id", move.Intent.LeadID),
		slog.Bool("superseded", move.Superseded),
		slog.Any("error", err),
	)
	msg := fmt.Sprintf("Could not move lead to %s; it is back in %s.", move.Intent.To, move.Previous)
	if move.Superseded {
		msg = fmt.Sprintf("Could not move lead to %s.", move.Intent.To)
	}
	b.pushNotice(domboard.Notice{
		Kind:    domboard.NoticeMoveRolledBack,
		LeadID:  move.Intent.LeadID,
		MoveID:  move.ID,
		Message: msg,
	})
}

// pruneMoves forgets finished moves older than moveRetention.
// Callers hold b.mu.
func (b *Board) pruneMoves() {
	cutoff := b.now().Add(-moveRetention)
	for id, m := range b.moves {
		if m.Phase.IsTerminal() && m.EndedAt.Before(cutoff) {
			delete(b.moves, id)
		}
	}
}
