package client

import (
	"fmt"
	"time"

	"shieldtrack/internal/shared/biztime"
)

// Client is a top-level tenant boundary. Areas and projects belong to exactly
// one client, and every non-global principal is bound to one.
type Client struct {
	id        uint
	sid       string
	name      string
	tenantID  string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(sid, name, tenantID string) (*Client, error) {
	if sid == "" {
		return nil, fmt.Errorf("client SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("client name exceeds maximum length of 200 characters")
	}
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}

	now := biztime.NowUTC()
	return &Client{
		sid:       sid,
		name:      name,
		tenantID:  tenantID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructClient(
	id uint,
	sid string,
	name string,
	tenantID string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("client SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	return &Client{
		id:        id,
		sid:       sid,
		name:      name,
		tenantID:  tenantID,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) SID() string {
	return c.sid
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) TenantID() string {
	return c.tenantID
}

func (c *Client) IsActive() bool {
	return c.isActive
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Client) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("client name exceeds maximum length of 200 characters")
	}
	c.name = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate soft-disables the client. Existing data stays in place but the
// client no longer appears in active listings.
func (c *Client) Deactivate() {
	if !c.isActive {
		return
	}
	c.isActive = false
	c.updatedAt = biztime.NowUTC()
}

func (c *Client) Activate() {
	if c.isActive {
		return
	}
	c.isActive = true
	c.updatedAt = biztime.NowUTC()
}
