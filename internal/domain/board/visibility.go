package board

import (
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
)

// IsVisible reports whether c may see and move l. Admins see every lead;
// everyone else sees only leads assigned to their own profile. A caller with
// no profile id sees nothing.
func IsVisible(l *lead.Lead, c caller.Caller) bool {
	if c.IsAdmin() {
		return true
	}
	if c.ProfileID == "" {
		return false
	}
	return l.IsAssignedTo(c.ProfileID)
}

// VisibleTo returns IsVisible bound to c, in the shape Store.Select expects.
func VisibleTo(c caller.Caller) func(*lead.Lead) bool {
	return func(l *lead.Lead) bool { return IsVisible(l, c) }
}
