package board

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// Store is the record store for one board. Leads are kept in insertion order.
// Every stage write bumps the lead's generation from a store-wide clock so a
// stale rollback can be detected with a compare-and-swap. Reordering a lead
// inside its column keeps its generation.
//
// Store is safe for concurrent use. All writes are serialized.
type Store struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*entry
	clock uint64
}

type entry struct {
	lead lead.Lead
	gen  uint64
}

// Snapshot captures where a lead was before an optimistic write.
type Snapshot struct {
	ID       string
	Stage    lead.Stage
	Position int
	Gen      uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*entry)}
}

// Replace discards the current contents and installs leads in the given order.
// Leads with a duplicate id keep their first position.
func (s *Store) Replace(leads []lead.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(leads))
	s.byID = make(map[string]*entry, len(leads))
	for _, l := range leads {
		if _, dup := s.byID[l.ID]; dup {
			continue
		}
		s.clock++
		s.order = append(s.order, l.ID)
		s.byID[l.ID] = &entry{lead: l.Clone(), gen: s.clock}
	}
}

// Clear empties the store.
func (s *Store) Clear() {
	s.Replace(nil)
}

// Len returns the number of leads held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Get returns a copy of the lead with the given id.
func (s *Store) Get(id string) (lead.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return lead.Lead{}, false
	}
	return e.lead.Clone(), true
}

// Select returns copies of the leads accepted by keep, in store order.
// A nil keep accepts everything.
func (s *Store) Select(keep func(*lead.Lead) bool) []lead.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]lead.Lead, 0, len(s.order))
	for _, id := range s.order {
		e := s.byID[id]
		if keep != nil && !keep(&e.lead) {
			continue
		}
		out = append(out, e.lead.Clone())
	}
	return out
}

// Snapshot returns the current stage, position and generation of a lead.
func (s *Store) Snapshot(id string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{
		ID:       id,
		Stage:    e.lead.Stage,
		Position: slices.Index(s.order, id),
		Gen:      e.gen,
	}, true
}

// Move sets the lead's stage to "to" and places it at targetIndex among the
// destination column's members, where membership is stage == to and keep. An
// index past the end appends after the last member. If the destination column
// is empty the lead keeps its place in the store order.
//
// The returned generation identifies the lead's current stage for a later
// Restore. A move within the same stage does not advance it.
func (s *Store) Move(id string, to lead.Stage, targetIndex int, keep func(*lead.Lead) bool) (uint64, error) {
	if !to.IsValid() {
		return 0, domain.NewValidationError("to_stage", fmt.Sprintf("invalid: %q", to))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}

	from := slices.Index(s.order, id)
	s.order = slices.Delete(s.order, from, from+1)

	var members []int
	for i, other := range s.order {
		oe := s.byID[other]
		if oe.lead.Stage != to {
			continue
		}
		if keep != nil && !keep(&oe.lead) {
			continue
		}
		members = append(members, i)
	}

	at := from
	switch {
	case len(members) == 0:
	case targetIndex >= 0 && targetIndex < len(members):
		at = members[targetIndex]
	default:
		at = members[len(members)-1] + 1
	}
	s.order = slices.Insert(s.order, at, id)

	if e.lead.Stage != to {
		s.clock++
		e.lead.Stage = to
		e.gen = s.clock
	}
	return e.gen, nil
}

// Restore puts a lead back where snap says it was, but only if its generation
// still equals gen. It reports whether the restore happened; false means a
// newer write owns the lead (or it is gone) and nothing was changed.
func (s *Store) Restore(snap Snapshot, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[snap.ID]
	if !ok || e.gen != gen {
		return false
	}

	cur := slices.Index(s.order, snap.ID)
	s.order = slices.Delete(s.order, cur, cur+1)
	at := min(max(snap.Position, 0), len(s.order))
	s.order = slices.Insert(s.order, at, snap.ID)

	s.clock++
	e.lead.Stage = snap.Stage
	e.gen = s.clock
	return true
}
