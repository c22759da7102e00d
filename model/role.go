package model

import "strings"

// Role identifies which of the two waitlist populations a signup belongs
// to: an organization looking to hire an expert, or an expert applying to
// join the network. It is selected via the landing page toggle, never typed.
type Role string

const (
	RoleClient Role = "client"
	RoleExpert Role = "expert"
)

// DefaultRole is what the landing page pre-selects before the visitor
// touches the toggle.
const DefaultRole = RoleExpert

// ParseRole maps a raw toggle value to a Role. Unknown or missing values
// fall back to DefaultRole, mirroring the form's initial selection.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleClient, RoleExpert:
		return Role(value)
	default:
		return DefaultRole
	}
}

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleExpert
}

// Label returns the human-readable variant carried in the outbound payload.
func (r Role) Label() string {
	if r == RoleClient {
		return "Find an Expert"
	}
	return "Join as Expert"
}

// SubjectLine builds the subject attached to the outbound payload at
// submission time. It is derived, never stored.
func (r Role) SubjectLine() string {
	return "New signup: " + strings.ToUpper(string(r))
}
