package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	domboard "github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BoardService  = (*BoardService)(nil)
	_ ports.HealthChecker = (*BoardService)(nil)
)

// BoardService implements ports.BoardService. It hosts one Board per mount,
// resolves callers through the ProfileClient and expires idle boards.
type BoardService struct {
	profiles ports.ProfileClient
	leads    ports.LeadClient
	cfg      config.BoardConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	boards map[string]*Board
}

// NewBoardService creates a BoardService. metrics may be nil; a nil logger
// discards.
func NewBoardService(profiles ports.ProfileClient, leads ports.LeadClient, cfg config.BoardConfig, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		profiles: profiles,
		leads:    leads,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		boards:   make(map[string]*Board),
	}
}

// Mount creates a board for the caller behind creds and loads it. A caller
// that cannot be resolved, or a failed load, still yields a mounted board
// whose view explains what is missing.
func (s *BoardService) Mount(ctx context.Context, creds caller.Credentials) (domboard.View, error) {
	s.Sweep(ctx)

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.boards) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "board session limit reached",
			slog.Int("max_sessions", s.cfg.MaxSessions),
		)
		return domboard.View{}, fmt.Errorf("board session limit of %d reached: %w", s.cfg.MaxSessions, domain.ErrUnavailable)
	}
	id := uuid.NewString()
	b := NewBoard(id, s.leads, s.cfg, s.metrics, s.logger)
	s.boards[id] = b
	s.mu.Unlock()

	s.addActive(ctx, 1)
	logger := s.logger.With(slog.String("board_id", id))
	logger.InfoContext(ctx, "board mounted")

	b.Identify(s.resolve(ctx, creds), creds)
	if err := b.Load(ctx); err != nil {
		logger.WarnContext(ctx, "initial load did not complete",
			slog.String("operation", "Mount"),
			slog.Any("error", err),
		)
	}
	return b.View(), nil
}

// resolve fetches the caller profile. Failures leave the caller unresolved,
// which keeps the board from loading.
func (s *BoardService) resolve(ctx context.Context, creds caller.Credentials) caller.Caller {
	if !creds.Present() {
		return caller.Caller{}
	}
	c, err := s.profiles.GetProfile(ctx, creds)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve caller profile",
			slog.String("operation", "resolve"),
			slog.Any("error", err),
		)
		return caller.Caller{}
	}
	return c
}

// View renders a board.
func (s *BoardService) View(_ context.Context, boardID string) (domboard.View, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.View{}, err
	}
	return b.View(), nil
}

// Column renders one stage of a board.
func (s *BoardService) Column(_ context.Context, boardID string, stage lead.Stage) (domboard.Column, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.Column{}, err
	}
	return b.Column(stage)
}

// Drop applies a drag-and-drop to a board.
func (s *BoardService) Drop(ctx context.Context, boardID string, intent domboard.MoveIntent) (domboard.DropResult, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.DropResult{}, err
	}

	res, err := b.Drop(ctx, intent)
	if err != nil {
		s.logger.InfoContext(ctx, "drop rejected",
			slog.String("board_id", boardID),
			slog.String("lead_id", intent.LeadID),
			slog.Any("error", err),
		)
		return domboard.DropResult{}, err
	}
	return res, nil
}

// Move returns the state of an accepted drop.
func (s *BoardService) Move(_ context.Context, boardID, moveID string) (domboard.Move, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.Move{}, err
	}
	return b.Move(moveID)
}

// Refresh re-resolves the caller with creds and reloads only when the role
// or profile id changed. An auth failure clears the caller and the board.
// Other profile failures leave the board as it is.
func (s *BoardService) Refresh(ctx context.Context, boardID string, creds caller.Credentials) (domboard.View, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.View{}, err
	}
	logger := s.logger.With(slog.String("board_id", boardID))

	var c caller.Caller
	if creds.Present() {
		c, err = s.profiles.GetProfile(ctx, creds)
		if err != nil && !errors.Is(err, domain.ErrUnauthenticated) {
			logger.ErrorContext(ctx, "failed to refresh caller profile",
				slog.String("operation", "Refresh"),
				slog.Any("error", err),
			)
			return domboard.View{}, err
		}
	}

	if b.Identify(c, creds) || c.IsZero() {
		logger.InfoContext(ctx, "caller identity changed, reloading",
			slog.String("role", string(c.Role)),
		)
		if err := b.Load(ctx); err != nil {
			logger.WarnContext(ctx, "reload after identity change did not complete",
				slog.Any("error", err),
			)
		}
	}
	return b.View(), nil
}

// Reload forces an authoritative reload of a board.
func (s *BoardService) Reload(ctx context.Context, boardID string) (domboard.View, error) {
	b, err := s.board(boardID)
	if err != nil {
		return domboard.View{}, err
	}
	if err := b.Load(ctx); err != nil {
		if errors.Is(err, ErrBoardClosed) {
			return domboard.View{}, err
		}
		s.logger.WarnContext(ctx, "reload did not complete",
			slog.String("board_id", boardID),
			slog.Any("error", err),
		)
	}
	return b.View(), nil
}

// Notices drains a board's notices.
func (s *BoardService) Notices(_ context.Context, boardID string) ([]domboard.Notice, error) {
	b, err := s.board(boardID)
	if err != nil {
		return nil, err
	}
	return b.TakeNotices(), nil
}

// Reference returns a board's passthrough reference data.
func (s *BoardService) Reference(_ context.Context, boardID string) (map[string]json.RawMessage, error) {
	b, err := s.board(boardID)
	if err != nil {
		return nil, err
	}
	return b.Reference(), nil
}

// Unmount closes and forgets a board. Moves still reconciling finish on
// their own and change nothing.
func (s *BoardService) Unmount(ctx context.Context, boardID string) error {
	s.mu.Lock()
	b, ok := s.boards[boardID]
	delete(s.boards, boardID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}
	b.Close()
	s.addActive(ctx, -1)
	s.logger.InfoContext(ctx, "board unmounted", slog.String("board_id", boardID))
	return nil
}

// Sweep unmounts boards idle for longer than board.session_ttl.
func (s *BoardService) Sweep(ctx context.Context) {
	if s.cfg.SessionTTL <= 0 {
		return
	}
	cutoff := s.now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	var expired []*Board
	for id, b := range s.boards {
		if b.idleSince().Before(cutoff) {
			expired = append(expired, b)
			delete(s.boards, id)
		}
	}
	s.mu.Unlock()

	for _, b := range expired {
		b.Close()
		s.addActive(ctx, -1)
		s.logger.InfoContext(ctx, "board session expired", slog.String("board_id", b.ID()))
	}
}

// RunJanitor sweeps idle boards every interval until ctx is done.
func (s *BoardService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Shutdown unmounts every board and waits for in-flight moves to resolve
// or ctx to end, whichever comes first.
func (s *BoardService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	boards := make([]*Board, 0, len(s.boards))
	for id, b := range s.boards {
		boards = append(boards, b)
		delete(s.boards, id)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, b := range boards {
			b.Close()
			b.Wait()
		}
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for in-flight moves: %w", ctx.Err())
	}
}

// Len returns the number of mounted boards.
func (s *BoardService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// Name identifies the session pool in the readiness report.
func (s *BoardService) Name() string { return "board-sessions" }

// HealthCheck fails when no more boards can be mounted.
func (s *BoardService) HealthCheck(_ context.Context) error {
	if s.cfg.MaxSessions <= 0 {
		return nil
	}
	if n := s.Len(); n >= s.cfg.MaxSessions {
		return fmt.Errorf("board-sessions: at capacity (%d/%d)", n, s.cfg.MaxSessions)
	}
	return nil
}

// board looks up a mounted board and marks it used.
func (s *BoardService) board(id string) (*Board, error) {
	s.mu.Lock()
	b, ok := s.boards[id]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	b.touch()
	return b, nil
}

func (s *BoardService) addActive(ctx context.Context, delta int64) {
	if s.metrics == nil {
		return
	}
	s.metrics.ActiveBoards.Add(ctx, delta)
}
