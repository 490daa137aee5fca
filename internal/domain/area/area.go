package area

import (
	"fmt"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// Area is a sub-division of a client (a department, a product line). It is
// the unit of fine-grained access assignment for area-bound roles.
type Area struct {
	id        uint
	sid       string
	clientID  uint
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewArea(sid string, clientID uint, name string) (*Area, error) {
	if sid == "" {
		return nil, fmt.Errorf("area SID is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("area name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("area name exceeds maximum length of 200 characters")
	}

	now := biztime.NowUTC()
	return &Area{
		sid:       sid,
		clientID:  clientID,
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructArea(
	id uint,
	sid string,
	clientID uint,
	name string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Area, error) {
	if id == 0 {
		return nil, fmt.Errorf("area ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("area SID is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("area name is required")
	}

	return &Area{
		id:        id,
		sid:       sid,
		clientID:  clientID,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Area) ID() uint            { return a.id }
func (a *Area) SID() string         { return a.sid }
func (a *Area) ClientID() uint      { return a.clientID }
func (a *Area) Name() string        { return a.name }
func (a *Area) IsActive() bool      { return a.isActive }
func (a *Area) CreatedAt() time.Time { return a.createdAt }
func (a *Area) UpdatedAt() time.Time { return a.updatedAt }

func (a *Area) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("area ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("area ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Area) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("area name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("area name exceeds maximum length of 200 characters")
	}
	a.name = name
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Area) Deactivate() {
	if !a.isActive {
		return
	}
	a.isActive = false
	a.updatedAt = biztime.NowUTC()
}

func (a *Area) Activate() {
	if a.isActive {
		return
	}
	a.isActive = true
	a.updatedAt = biztime.NowUTC()
}
