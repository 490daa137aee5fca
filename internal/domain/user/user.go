package user

import (
	"fmt"
	"strings"
	"time"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/shared/biztime"
)

// User is an account that can authenticate and act under a role. Global
// roles carry no client binding; every other role must name the client the
// user belongs to.
type User struct {
	id           uint
	sid          string
	email        string
	passwordHash string
	name         string
	role         access.Role
	clientID     *uint
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(sid, email, passwordHash, name string, role access.Role, clientID *uint) (*User, error) {
	if sid == "" {
		return nil, fmt.Errorf("user SID is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if err := checkClientBinding(role, clientID); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		clientID:     copyUintPtr(clientID),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	sid, email, passwordHash, name string,
	role access.Role,
	clientID *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("user SID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		clientID:     copyUintPtr(clientID),
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) SID() string          { return u.sid }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) Role() access.Role    { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) ClientID() *uint {
	return copyUintPtr(u.clientID)
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("user name is required")
	}
	u.name = name
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole reassigns the user's role, revalidating the client binding.
func (u *User) ChangeRole(role access.Role, clientID *uint) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if err := checkClientBinding(role, clientID); err != nil {
		return err
	}
	u.role = role
	u.clientID = copyUintPtr(clientID)
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) UpdatePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.updatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.updatedAt = biztime.NowUTC()
}

func checkClientBinding(role access.Role, clientID *uint) error {
	if role.IsGlobal() {
		if clientID != nil {
			return fmt.Errorf("role %s cannot be bound to a client", role)
		}
		return nil
	}
	if clientID == nil || *clientID == 0 {
		return fmt.Errorf("role %s requires a client", role)
	}
	return nil
}

func copyUintPtr(v *uint) *uint {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
