package access

import (
	"fmt"

	"shieldtrack/internal/shared/errors"
)

// Scope is the visibility predicate computed from a Principal. It is a value:
// resolving the same Principal twice yields an identical Scope, and nothing
// mutates one after construction.
//
// A Scope is one of three shapes:
//   - unrestricted: every client, area, project and finding is visible
//   - client-bound: a single client, all of its areas
//   - area-bound: a single client, a fixed set of areas (possibly empty)
//
// An area-bound scope with zero areas is valid and matches nothing. That is
// the fail-closed answer for a principal with no active assignments, not an
// error condition.
type Scope struct {
	unrestricted bool
	clientID     uint
	areaBound    bool
	areaIDs      []uint
}

// UnrestrictedScope returns the global scope.
func UnrestrictedScope() Scope {
	return Scope{unrestricted: true}
}

// ClientScope returns a scope covering one client and all of its areas.
func ClientScope(clientID uint) Scope {
	return Scope{clientID: clientID}
}

// AreaScope returns a scope covering the given areas of one client. The ids
// must already be deduplicated and sorted; Principal.AreaIDs guarantees that.
func AreaScope(clientID uint, areaIDs []uint) Scope {
	ids := make([]uint, len(areaIDs))
	copy(ids, areaIDs)
	return Scope{clientID: clientID, areaBound: true, areaIDs: ids}
}

// ResolveScope computes the visibility predicate for a principal.
//
// A non-global role without a client reference is a configuration-integrity
// defect, not a user error: it returns a scope resolution error that callers
// surface as a generic internal failure.
func ResolveScope(p Principal) (Scope, error) {
	role := p.Role()
	if !role.IsValid() {
		return Scope{}, errors.NewScopeResolutionError(
			fmt.Sprintf("unknown role %q for user %d", role, p.UserID()))
	}

	if role.IsGlobal() {
		return UnrestrictedScope(), nil
	}

	clientID, ok := p.ClientID()
	if !ok {
		return Scope{}, errors.NewScopeResolutionError(
			fmt.Sprintf("role %s requires a client but user %d has none", role, p.UserID()))
	}

	if role.IsAreaBound() {
		return AreaScope(clientID, p.AreaIDs()), nil
	}

	return ClientScope(clientID), nil
}

// IsUnrestricted reports whether the scope admits everything.
func (s Scope) IsUnrestricted() bool {
	return s.unrestricted
}

// IsEmpty reports whether the scope admits nothing. Query builders must turn
// this into a "match nothing" filter, never into an absent filter.
func (s Scope) IsEmpty() bool {
	return !s.unrestricted && s.areaBound && len(s.areaIDs) == 0
}

// ClientID returns the bound client and whether the scope is client-limited.
func (s Scope) ClientID() (uint, bool) {
	if s.unrestricted {
		return 0, false
	}
	return s.clientID, true
}

// AreaIDs returns the bound area set and whether the scope is area-limited.
// The second return is true even for an empty set; callers distinguish
// "all areas of the client" (false) from "exactly these areas" (true).
func (s Scope) AreaIDs() ([]uint, bool) {
	if !s.areaBound {
		return nil, false
	}
	ids := make([]uint, len(s.areaIDs))
	copy(ids, s.areaIDs)
	return ids, true
}

// AllowsClient reports whether entities of the given client are visible at
// the client level.
func (s Scope) AllowsClient(clientID uint) bool {
	if s.unrestricted {
		return true
	}
	return s.clientID == clientID
}

// AllowsArea reports whether entities in the given client/area pair are
// visible.
func (s Scope) AllowsArea(clientID, areaID uint) bool {
	if s.unrestricted {
		return true
	}
	if s.clientID != clientID {
		return false
	}
	if !s.areaBound {
		return true
	}
	for _, id := range s.areaIDs {
		if id == areaID {
			return true
		}
	}
	return false
}
