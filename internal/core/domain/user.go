package domain

import "time"

// Role is the closed set of access levels an account can hold.
type Role string

const (
	RoleRegular    Role = "regular"
	RoleVIP        Role = "vip"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole validates an external role string into the closed enum.
// Anything outside the three known roles is rejected with ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRegular, RoleVIP, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity for one request. The role is
// always read back from the user store at resolution time, never trusted
// from token claims, so a role change applies on the very next request.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}
