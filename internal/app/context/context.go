// Package appctx provides a unit of work for operations that change local
// state first and confirm it elsewhere later.
//
// An OpContext collects domain.Actions. Actions passed to Apply run at once;
// actions passed to AddAction wait for Commit. Commit runs the pending ones in
// order and, on the first failure, rolls back everything that has run so far
// (applied ones included) in reverse order:
//
//	op := appctx.New(ctx)
//	if err := op.Apply(&applyStage{...}); err != nil { // visible immediately
//		return err
//	}
//	if err := op.AddAction(&persistStage{...}); err != nil {
//		return err
//	}
//	err := op.Commit(syncCtx) // failure undoes applyStage
package appctx

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadyCommitted is returned when Apply, AddAction, or Commit is called
// on an OpContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: operation already committed")

// ErrNilAction is returned when a nil Action is passed to Apply or AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// OpContext is the unit of work for a single operation. It embeds the
// context the operation was started with; Apply runs actions against it.
//
// Apply, AddAction and Commit are safe for concurrent use, but an OpContext
// belongs to one operation and must not be reused.
type OpContext struct {
	context.Context

	queueMu   sync.Mutex
	items     []*actionItem
	committed bool
}

// New creates an OpContext wrapping ctx with no actions.
func New(ctx context.Context) *OpContext {
	return &OpContext{Context: ctx}
}

// Len returns the number of actions recorded so far, applied or pending.
func (op *OpContext) Len() int {
	op.queueMu.Lock()
	defer op.queueMu.Unlock()
	return len(op.items)
}
