// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account able to sign in to the system.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login handle.
	Email        string    // Unique email, used as the login identifier.
	PasswordHash string    // bcrypt hash, never leaves the service layer.
	Role         Role      // Route-level authorization role.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the part of a User that may be returned to clients.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

// Public strips credentials from the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Identity is the authenticated principal decoded from a bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}
