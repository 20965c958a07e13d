package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("fullName is required")
	ErrInvalidEmail = errors.New("invalid email")
)

type Role string

const (
	// RoleUser is a regular marketplace member; hosts are users that own
	// properties.
	RoleUser Role = "user"
	// RoleAdmin is the privileged caller: it bypasses booking ownership
	// checks.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	AvatarURL    string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" || !strings.Contains(e, "@") {
		return "", ErrInvalidEmail
	}
	return e, nil
}
