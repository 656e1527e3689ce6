package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// BoardService defines the service port for hosted board sessions.
// Implemented by the application layer; called by inbound adapters.
// Every method except Mount returns domain.ErrNotFound for an unknown or
// expired board id.
type BoardService interface {
	// Mount resolves the caller behind creds, creates a board for them and
	// performs the first load. Load and profile failures do not fail the
	// mount; they are reported through the view's status.
	// Returns domain.ErrUnavailable when the session limit is reached.
	Mount(ctx context.Context, creds caller.Credentials) (board.View, error)

	// View renders the board's current state.
	View(ctx context.Context, boardID string) (board.View, error)

	// Column renders a single stage of the board.
	Column(ctx context.Context, boardID string, stage lead.Stage) (board.Column, error)

	// Drop applies a drag-and-drop. Rejections (invisible lead, unknown lead,
	// stale source stage, malformed intent) leave the board untouched.
	Drop(ctx context.Context, boardID string, intent board.MoveIntent) (board.DropResult, error)

	// Move returns the current state of an accepted drop.
	Move(ctx context.Context, boardID, moveID string) (board.Move, error)

	// Refresh re-resolves the caller with creds and reloads only if the
	// identity changed.
	Refresh(ctx context.Context, boardID string, creds caller.Credentials) (board.View, error)

	// Reload forces an authoritative reload.
	Reload(ctx context.Context, boardID string) (board.View, error)

	// Notices drains pending notices. Each notice is returned once.
	Notices(ctx context.Context, boardID string) ([]board.Notice, error)

	// Reference returns the auxiliary collections from the last good load.
	Reference(ctx context.Context, boardID string) (map[string]json.RawMessage, error)

	// Unmount tears the board down. Moves still in flight resolve as no-ops.
	Unmount(ctx context.Context, boardID string) error
}
