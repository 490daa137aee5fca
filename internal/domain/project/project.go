package project

import (
	"fmt"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// Project is an engagement inside one client/area pair. It owns findings;
// closing the project freezes them.
type Project struct {
	id          uint
	sid         string
	clientID    uint
	areaID      uint
	name        string
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
}

func NewProject(sid string, clientID, areaID uint, name, description string) (*Project, error) {
	if sid == "" {
		return nil, fmt.Errorf("project SID is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if areaID == 0 {
		return nil, fmt.Errorf("area ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("project name exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("project description exceeds maximum length of 5000 characters")
	}

	now := biztime.NowUTC()
	return &Project{
		sid:         sid,
		clientID:    clientID,
		areaID:      areaID,
		name:        name,
		description: description,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	sid string,
	clientID, areaID uint,
	name, description string,
	status Status,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("project SID is required")
	}
	if clientID == 0 || areaID == 0 {
		return nil, fmt.Errorf("project requires client and area")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	return &Project{
		id:          id,
		sid:         sid,
		clientID:    clientID,
		areaID:      areaID,
		name:        name,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) SID() string          { return p.sid }
func (p *Project) ClientID() uint       { return p.clientID }
func (p *Project) AreaID() uint         { return p.areaID }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) Status() Status       { return p.status }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }
func (p *Project) ClosedAt() *time.Time { return p.closedAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) UpdateDetails(name, description string) error {
	if !p.status.IsActive() {
		return fmt.Errorf("cannot update a %s project", p.status)
	}
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("project name exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return fmt.Errorf("project description exceeds maximum length of 5000 characters")
	}

	p.name = name
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Close transitions the project to closed. Closing twice is a no-op rather
// than an error so retried requests stay idempotent.
func (p *Project) Close() error {
	if p.status.IsClosed() {
		return nil
	}
	if !p.status.CanTransitionTo(StatusClosed) {
		return fmt.Errorf("cannot close project with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = StatusClosed
	p.closedAt = &now
	p.updatedAt = now
	return nil
}

// Archive moves an active or closed project out of working lists.
func (p *Project) Archive() error {
	if p.status.IsArchived() {
		return nil
	}
	if !p.status.CanTransitionTo(StatusArchived) {
		return fmt.Errorf("cannot archive project with status %s", p.status)
	}

	p.status = StatusArchived
	p.updatedAt = biztime.NowUTC()
	return nil
}

// FindingsMutable reports whether findings under this project accept writes.
func (p *Project) FindingsMutable() bool {
	return p.status.IsActive()
}
