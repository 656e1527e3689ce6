package appctx

import (
	"fmt"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

// actionItem is one recorded action. applied is set once Execute has
// returned nil, whether that happened in Apply or in Commit.
type actionItem struct {
	action  domain.Action
	applied bool
}

func (a *actionItem) description() string { return a.action.Description() }

// Apply executes action immediately using the OpContext's embedded context
// and records it so that a failed Commit rolls it back. A failed Execute is
// not recorded and its error is returned as is.
func (op *OpContext) Apply(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	op.queueMu.Lock()
	defer op.queueMu.Unlock()

	if op.committed {
		return ErrAlreadyCommitted
	}
	if err := action.Execute(op.Context); err != nil {
		return fmt.Errorf("applying %s: %w", action.Description(), err)
	}
	op.items = append(op.items, &actionItem{action: action, applied: true})
	return nil
}

// AddAction queues action for execution by Commit.
// Returns ErrNilAction if action is nil, or ErrAlreadyCommitted if the
// OpContext has already been committed.
func (op *OpContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	op.queueMu.Lock()
	defer op.queueMu.Unlock()

	if op.committed {
		return ErrAlreadyCommitted
	}
	op.items = append(op.items, &actionItem{action: action})
	return nil
}
