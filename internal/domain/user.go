package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleDonor        UserRole = "donor"
	UserRoleOrganization UserRole = "organization"
)

// User represents an authenticated account within the platform.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         UserRole
	Avatar       string
	Phone        string
	Address      string
	PasswordHash string
	PasswordSalt string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDonor reports whether the account belongs to an individual donor.
func (u User) IsDonor() bool {
	return u.Role == UserRoleDonor
}
