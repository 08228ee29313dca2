package domain

// Role is the unit of authorization. The set is open at the store level, but
// the routes only ever gate on the named constants below.
type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleGestor        Role = "gestor"
)

// ManagementRoles is the allow-list the source system applies to the session,
// refresh and two-factor routes, plus the gated entity routes. Other
// authenticated roles are locked out of those routes on purpose; see
// DESIGN.md before widening this.
var ManagementRoles = []Role{RoleAdministrador, RoleGestor}

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the named roles.
func (r Role) Valid() bool {
	return r == RoleAdministrador || r == RoleGestor
}

// RoleStrings converts a role allow-list for middleware consumption.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
