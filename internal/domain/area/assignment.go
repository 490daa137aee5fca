package area

import (
	"fmt"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// Assignment links a user to an area. Revocation is a soft flag so the
// history of who had access when survives; only active assignments feed the
// principal's area set.
type Assignment struct {
	id        uint
	userID    uint
	areaID    uint
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAssignment(userID, areaID uint) (*Assignment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if areaID == 0 {
		return nil, fmt.Errorf("area ID is required")
	}

	now := biztime.NowUTC()
	return &Assignment{
		userID:    userID,
		areaID:    areaID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAssignment(
	id uint,
	userID, areaID uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if userID == 0 || areaID == 0 {
		return nil, fmt.Errorf("assignment requires user and area")
	}

	return &Assignment{
		id:        id,
		userID:    userID,
		areaID:    areaID,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (as *Assignment) ID() uint             { return as.id }
func (as *Assignment) UserID() uint         { return as.userID }
func (as *Assignment) AreaID() uint         { return as.areaID }
func (as *Assignment) IsActive() bool       { return as.isActive }
func (as *Assignment) CreatedAt() time.Time { return as.createdAt }
func (as *Assignment) UpdatedAt() time.Time { return as.updatedAt }

func (as *Assignment) SetID(id uint) error {
	if as.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	as.id = id
	return nil
}

// Revoke soft-disables the assignment.
func (as *Assignment) Revoke() {
	if !as.isActive {
		return
	}
	as.isActive = false
	as.updatedAt = biztime.NowUTC()
}

// Restore re-enables a previously revoked assignment.
func (as *Assignment) Restore() {
	if as.isActive {
		return
	}
	as.isActive = true
	as.updatedAt = biztime.NowUTC()
}
