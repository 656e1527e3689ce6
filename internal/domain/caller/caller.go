// Package caller describes who is looking at a board: their role and profile
// as reported by the lead API, and the credentials forwarded on their behalf.
package caller

import "strings"

// Role is the caller's organization role as reported by GET /profile.
type Role string

// RoleAdmin sees and moves every lead. Any other role is scoped to the
// caller's own leads.
const RoleAdmin Role = "ADMIN"

// Caller is the identity a board was loaded for.
type Caller struct {
	Role      Role
	ProfileID string
}

// IsAdmin reports whether the caller has the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// IsZero reports whether no identity has been resolved.
func (c Caller) IsZero() bool {
	return c.Role == "" && c.ProfileID == ""
}

// SameIdentity reports whether both role and profile id match.
func (c Caller) SameIdentity(other Caller) bool {
	return c.Role == other.Role && c.ProfileID == other.ProfileID
}

// Credentials are forwarded verbatim to the lead API. The service never
// inspects or issues tokens.
type Credentials struct {
	Token string
	OrgID string
}

// Present reports whether both a token and an organization are set.
func (c Credentials) Present() bool {
	return strings.TrimSpace(c.Token) != "" && strings.TrimSpace(c.OrgID) != ""
}

// BearerToken returns the Authorization header value. Tokens that already
// carry the scheme are returned unchanged.
func (c Credentials) BearerToken() string {
	t := strings.TrimSpace(c.Token)
	if len(t) > 7 && strings.EqualFold(t[:7], "bearer ") {
		return t
	}
	return "Bearer " + t
}
