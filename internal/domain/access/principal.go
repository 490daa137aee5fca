package access

import (
	"sort"
)

// Principal is an immutable snapshot of the authenticated actor for one
// request: role, owning client and assigned areas. It is rebuilt per request
// from the user record and active area assignments; nothing here is cached
// across requests.
type Principal struct {
	userID   uint
	role     Role
	clientID *uint
	areaIDs  []uint
}

// NewPrincipal builds a Principal. areaIDs are copied, deduplicated and
// sorted so two principals built from the same assignments compare equal and
// resolve to identical scopes.
func NewPrincipal(userID uint, role Role, clientID *uint, areaIDs []uint) Principal {
	var cid *uint
	if clientID != nil {
		v := *clientID
		cid = &v
	}

	seen := make(map[uint]struct{}, len(areaIDs))
	ids := make([]uint, 0, len(areaIDs))
	for _, id := range areaIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return Principal{
		userID:   userID,
		role:     role,
		clientID: cid,
		areaIDs:  ids,
	}
}

func (p Principal) UserID() uint {
	return p.userID
}

func (p Principal) Role() Role {
	return p.role
}

// ClientID returns the owning client reference and whether one is set.
// Global roles have none.
func (p Principal) ClientID() (uint, bool) {
	if p.clientID == nil {
		return 0, false
	}
	return *p.clientID, true
}

// AreaIDs returns a copy of the assigned area IDs, sorted ascending.
func (p Principal) AreaIDs() []uint {
	ids := make([]uint, len(p.areaIDs))
	copy(ids, p.areaIDs)
	return ids
}

// HasArea reports whether the given area is among the principal's
// assignments.
func (p Principal) HasArea(areaID uint) bool {
	for _, id := range p.areaIDs {
		if id == areaID {
			return true
		}
	}
	return false
}
