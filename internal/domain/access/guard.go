package access

import (
	"fmt"

	"shieldtrack/internal/shared/errors"
)

// Operation is a guarded mutation or read on a single entity.
type Operation string

const (
	OperationRead   Operation = "read"
	OperationWrite  Operation = "write"
	OperationClose  Operation = "close"
	OperationDelete Operation = "delete"
)

// ResourceRef carries the resolved tenancy of an already-fetched entity.
// For findings the caller resolves ClientID and AreaID through the parent
// project before consulting the guard; findings carry no tenancy columns of
// their own.
type ResourceRef struct {
	ClientID uint
	// AreaID is nil for client-level resources (the client record itself,
	// SMTP settings) that have no owning area.
	AreaID *uint
}

// Authorize checks a single-entity operation against the principal's scope
// and role capabilities. It returns nil to allow, a forbidden error to deny,
// and a scope resolution error when the principal itself is malformed.
//
// The guard runs after the entity has been fetched through a scoped query,
// so in the common case the visibility check is redundant; it stays here to
// stop cross-tenant writes through unscoped fetch paths (lookups by guessed
// identifier).
func Authorize(p Principal, ref ResourceRef, op Operation) error {
	scope, err := ResolveScope(p)
	if err != nil {
		return err
	}

	visible := false
	if ref.AreaID != nil {
		visible = scope.AllowsArea(ref.ClientID, *ref.AreaID)
	} else {
		visible = scope.AllowsClient(ref.ClientID)
	}
	if !visible {
		return errors.NewForbiddenError("access to this resource is denied")
	}

	switch op {
	case OperationRead:
		return nil
	case OperationWrite:
		if !p.Role().CanWrite() {
			return errors.NewForbiddenError("role does not permit modifications")
		}
		return nil
	case OperationClose:
		if !p.Role().CanClose() {
			return errors.NewForbiddenError("role does not permit closing projects")
		}
		return nil
	case OperationDelete:
		if !p.Role().CanHardDelete() {
			return errors.NewForbiddenError("only owners may permanently delete")
		}
		return nil
	default:
		return errors.NewForbiddenError(fmt.Sprintf("unknown operation %q", op))
	}
}
