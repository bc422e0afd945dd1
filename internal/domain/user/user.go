package user

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// User is the internal account mapped from the external identity provider's
// subject. It is created on the first authenticated request and kept in sync
// with the provider's profile fields afterwards.
type User struct {
	id         uint
	externalID string
	name       string
	email      string
	role       authorization.UserRole
	suspended  bool
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(externalID, name, email string, role authorization.UserRole) (*User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, fmt.Errorf("external ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		externalID: externalID,
		name:       name,
		email:      email,
		role:       role,
		suspended:  false,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(
	id uint,
	externalID string,
	name string,
	email string,
	role authorization.UserRole,
	suspended bool,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if externalID == "" {
		return nil, fmt.Errorf("external ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:         id,
		externalID: externalID,
		name:       name,
		email:      email,
		role:       role,
		suspended:  suspended,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) ExternalID() string {
	return u.externalID
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsSuspended() bool {
	return u.suspended
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
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

// SyncProfile updates the profile fields supplied by the identity provider.
// Returns true when anything actually changed, so callers can skip the write.
func (u *User) SyncProfile(name, email string, role authorization.UserRole) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role: %s", role)
	}

	if u.name == name && u.email == email && u.role == role {
		return false, nil
	}

	u.name = name
	u.email = email
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return true, nil
}

// Suspend blocks the user from all mutating operations.
func (u *User) Suspend() {
	if u.suspended {
		return
	}
	u.suspended = true
	u.updatedAt = biztime.NowUTC()
}

// Reinstate lifts a suspension.
func (u *User) Reinstate() {
	if !u.suspended {
		return
	}
	u.suspended = false
	u.updatedAt = biztime.NowUTC()
}

// Deactivate marks the account inactive. Users are never hard-deleted here.
func (u *User) Deactivate() {
	if !u.active {
		return
	}
	u.active = false
	u.updatedAt = biztime.NowUTC()
}
