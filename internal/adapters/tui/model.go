package tui

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/board"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// DefaultRefreshInterval is how often the board is re-read when no key is
// pressed.
const DefaultRefreshInterval = time.Second

// refreshMsg carries a fresh view and any notices drained with it.
type refreshMsg struct {
	view     board.View
	notices  []board.Notice
	reloaded bool
	err      error
}

// dropMsg reports the outcome of a drop together with the view read right
// after it.
type dropMsg struct {
	leadID string
	result board.DropResult
	view   board.View
	err    error
}

// tickMsg triggers a periodic refresh.
type tickMsg time.Time

// Model is the bubbletea model of the board client.
type Model struct {
	ctx      context.Context
	svc      ports.BoardService
	boardID  string
	interval time.Duration

	keys KeyMap
	help help.Model

	view board.View

	// col and row locate the selected card. selectedID follows the card
	// across refreshes and drops.
	col        int
	row        int
	selectedID string

	status string
	err    error

	width  int
	height int
}

// Option customizes a Model.
type Option func(*Model)

// WithRefreshInterval sets the tick interval. Non-positive values disable
// the tick.
func WithRefreshInterval(d time.Duration) Option {
	return func(m *Model) { m.interval = d }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// NewModel creates a client for a mounted board. initial is the view
// returned by the mount.
func NewModel(ctx context.Context, svc ports.BoardService, initial board.View, opts ...Option) Model {
	m := Model{
		ctx:      ctx,
		svc:      svc,
		boardID:  initial.ID,
		interval: DefaultRefreshInterval,
		keys:     DefaultKeyMap,
		help:     help.New(),
		view:     initial,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.reselect()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refresh(), m.tick())

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.view = msg.view
		switch n := len(msg.notices); {
		case n > 0:
			m.status = msg.notices[n-1].Message
		case msg.reloaded:
			m.status = "Board reloaded."
		}
		m.reselect()
		return m, nil

	case dropMsg:
		return m.handleDrop(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reload):
		m.status = "Reloading…"
		return m, m.reload()

	case key.Matches(msg, m.keys.MovePrev):
		return m, m.moveStage(-1)
	case key.Matches(msg, m.keys.MoveNext):
		return m, m.moveStage(1)
	case key.Matches(msg, m.keys.ReorderUp):
		return m, m.reorder(-1)
	case key.Matches(msg, m.keys.ReorderDown):
		return m, m.reorder(1)

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(m.col, m.row-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.col, m.row+1)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(m.col-1, m.row)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(m.col+1, m.row)
	}
	return m, nil
}

func (m Model) handleDrop(msg dropMsg) Model {
	if msg.err != nil {
		m.status = msg.err.Error()
		return m
	}

	switch msg.result.Outcome {
	case board.OutcomeAccepted:
		m.status = "Moved lead " + msg.leadID + " to " + msg.result.Move.Intent.To.String() + ", saving…"
	case board.OutcomeReordered:
		m.status = ""
	case board.OutcomeNoop:
		return m
	}
	m.view = msg.view
	m.selectedID = msg.leadID
	m.reselect()
	return m
}

// selected returns the selected lead, if any.
func (m Model) selected() (lead.Lead, bool) {
	if m.col >= len(m.view.Columns) {
		return lead.Lead{}, false
	}
	leads := m.view.Columns[m.col].Leads
	if m.row < 0 || m.row >= len(leads) {
		return lead.Lead{}, false
	}
	return leads[m.row], true
}

// moveSelection moves the selection, clamping to the board.
func (m *Model) moveSelection(col, row int) {
	if len(m.view.Columns) == 0 {
		return
	}
	m.col = clamp(col, 0, len(m.view.Columns)-1)
	m.row = clamp(row, 0, max(len(m.view.Columns[m.col].Leads)-1, 0))
	if l, ok := m.selected(); ok {
		m.selectedID = l.ID
	}
}

// reselect finds selectedID in the current view, falling back to the
// nearest card in the current column.
func (m *Model) reselect() {
	if m.selectedID != "" {
		for c, col := range m.view.Columns {
			for r, l := range col.Leads {
				if l.ID == m.selectedID {
					m.col, m.row = c, r
					return
				}
			}
		}
	}
	m.moveSelection(m.col, m.row)
}

func (m Model) moveStage(delta int) tea.Cmd {
	l, ok := m.selected()
	if !ok {
		return nil
	}
	stages := lead.Stages()
	to := l.Stage.Position() + delta
	if to < 0 || to >= len(stages) {
		return nil
	}
	return m.drop(board.MoveIntent{
		LeadID:      l.ID,
		From:        l.Stage,
		To:          stages[to],
		TargetIndex: math.MaxInt,
	})
}

func (m Model) reorder(delta int) tea.Cmd {
	l, ok := m.selected()
	if !ok {
		return nil
	}
	target := m.row + delta
	if target < 0 || target >= len(m.view.Columns[m.col].Leads) {
		return nil
	}
	return m.drop(board.MoveIntent{
		LeadID:      l.ID,
		From:        l.Stage,
		To:          l.Stage,
		TargetIndex: target,
	})
}

func (m Model) drop(intent board.MoveIntent) tea.Cmd {
	ctx, svc, id := m.ctx, m.svc, m.boardID
	return func() tea.Msg {
		res, err := svc.Drop(ctx, id, intent)
		if err != nil {
			return dropMsg{leadID: intent.LeadID, err: err}
		}
		view, err := svc.View(ctx, id)
		return dropMsg{leadID: intent.LeadID, result: res, view: view, err: err}
	}
}

func (m Model) refresh() tea.Cmd {
	ctx, svc, id := m.ctx, m.svc, m.boardID
	return func() tea.Msg {
		view, err := svc.View(ctx, id)
		if err != nil {
			return refreshMsg{err: err}
		}
		notices, err := svc.Notices(ctx, id)
		return refreshMsg{view: view, notices: notices, err: err}
	}
}

func (m Model) reload() tea.Cmd {
	ctx, svc, id := m.ctx, m.svc, m.boardID
	return func() tea.Msg {
		view, err := svc.Reload(ctx, id)
		if err != nil {
			return refreshMsg{err: err}
		}
		notices, err := svc.Notices(ctx, id)
		return refreshMsg{view: view, notices: notices, reloaded: true, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
