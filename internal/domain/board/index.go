package board

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// Index is the per-stage projection of a Store for one caller. It holds no
// state of its own; every call recomputes from the store.
type Index struct {
	store  *Store
	caller caller.Caller
}

// NewIndex returns an index over store as seen by c.
func NewIndex(store *Store, c caller.Caller) Index {
	return Index{store: store, caller: c}
}

// ColumnFor returns the visible leads in stage, in store order.
func (ix Index) ColumnFor(stage lead.Stage) []lead.Lead {
	visible := VisibleTo(ix.caller)
	return ix.store.Select(func(l *lead.Lead) bool {
		return l.Stage == stage && visible(l)
	})
}

// Column returns one stage with its total.
func (ix Index) Column(stage lead.Stage) Column {
	col := Column{Stage: stage, Leads: ix.ColumnFor(stage)}
	col.summarize()
	return col
}

// Columns returns all six columns in stage order from a single pass over the
// store.
func (ix Index) Columns() []Column {
	cols := EmptyColumns()
	for _, l := range ix.store.Select(VisibleTo(ix.caller)) {
		pos := l.Stage.Position()
		if pos < 0 {
			continue
		}
		cols[pos].Leads = append(cols[pos].Leads, l)
	}
	for i := range cols {
		cols[i].summarize()
	}
	return cols
}

// IndexOf returns the lead's stage and its position within that column.
func (ix Index) IndexOf(id string) (lead.Stage, int, bool) {
	l, ok := ix.store.Get(id)
	if !ok || !IsVisible(&l, ix.caller) {
		return "", -1, false
	}
	for i, m := range ix.ColumnFor(l.Stage) {
		if m.ID == id {
			return l.Stage, i, true
		}
	}
	return "", -1, false
}

// EmptyColumns returns the six stages with no leads, as shown for a board
// that is not loaded.
func EmptyColumns() []Column {
	stages := lead.Stages()
	cols := make([]Column, len(stages))
	for i, st := range stages {
		cols[i] = Column{Stage: st, Leads: []lead.Lead{}, Total: decimal.Zero}
	}
	return cols
}
