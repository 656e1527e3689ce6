package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// Commit executes the queued actions in insertion order, skipping those
// already applied. If one fails, every action that ran before it is rolled
// back in reverse order. Rollback errors are logged but do not affect the
// returned error.
//
// After Commit returns, whether it succeeded or not, the OpContext is marked
// committed. Returns ErrAlreadyCommitted if called more than once.
func (op *OpContext) Commit(ctx context.Context) error {
	op.queueMu.Lock()
	if op.committed {
		op.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	op.committed = true
	items := op.items
	op.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		if item.applied {
			continue
		}

		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "OpContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.description()),
		)

		if err := item.action.Execute(ctx); err != nil {
			logger.WarnContext(ctx, "action failed, rolling back",
				slog.String("operation", "OpContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			rollbackItems(ctx, items, i-1, logger)
			return fmt.Errorf("executing %s: %w", item.description(), err)
		}
		item.applied = true
	}

	return nil
}

// rollbackItems rolls back items 0..upTo (inclusive) in reverse order.
// Rollback errors are logged at ERROR level and do not stop the rollback
// of remaining items.
func rollbackItems(ctx context.Context, items []*actionItem, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		item := items[i]

		logger.DebugContext(ctx, "rolling back action",
			slog.String("operation", "OpContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", item.description()),
		)

		if err := item.action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "OpContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}
