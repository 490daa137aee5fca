// Package access implements the tenant visibility model: who is asking
// (Principal), what they may see (Scope) and what they may do (Guard).
// Everything in this package is pure; persistence and transport concerns
// stay in the infrastructure and interface layers.
package access

// Role is the closed set of principal roles. Role checks go through the
// capability methods below so call sites never compare raw strings.
type Role string

const (
	RoleOwner         Role = "owner"
	RolePlatformAdmin Role = "platform_admin"
	RoleClientAdmin   Role = "client_admin"
	RoleAreaAdmin     Role = "area_admin"
	RoleAnalyst       Role = "analyst"
	RoleViewer        Role = "viewer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RolePlatformAdmin, RoleClientAdmin, RoleAreaAdmin, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}

// IsGlobal reports whether the role sees every tenant. Global roles carry no
// client restriction.
func (r Role) IsGlobal() bool {
	return r == RoleOwner || r == RolePlatformAdmin
}

// IsAreaBound reports whether visibility is limited to assigned areas.
func (r Role) IsAreaBound() bool {
	switch r {
	case RoleAreaAdmin, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may create or update entities in scope.
func (r Role) CanWrite() bool {
	return r != RoleViewer
}

// CanClose reports whether the role may close projects. Closing is a
// narrower capability than general write access.
func (r Role) CanClose() bool {
	switch r {
	case RoleOwner, RoleClientAdmin, RoleAreaAdmin:
		return true
	}
	return false
}

// CanHardDelete reports whether the role may permanently delete entities.
// Everyone else can only deactivate.
func (r Role) CanHardDelete() bool {
	return r == RoleOwner
}

// ParseRole converts a stored role string into a Role. Unknown values map to
// the least-privileged role rather than an error: a corrupt role column must
// never widen access.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleViewer
}
