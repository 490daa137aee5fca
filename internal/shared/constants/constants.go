// Package constants defines shared constant values used across layers.
package constants

// Context keys set by middleware and read by handlers.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserSID   = "user_sid"
	ContextKeyUserRole  = "user_role"
	ContextKeyPrincipal = "principal"
)

// Resource names used in permission policies.
const (
	ResourceClient   = "clients"
	ResourceArea     = "areas"
	ResourceProject  = "projects"
	ResourceFinding  = "findings"
	ResourceUser     = "users"
	ResourceSettings = "settings"
)

// Actions used in permission policies.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionClose  = "close"
	ActionDelete = "delete"
)

// Runtime environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
