// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity shared by every role in the marketplace.
type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	Role         Role           `json:"role"`
	Approval     ApprovalStatus `json:"approval"`
	PasswordHash string         `json:"-"` // Never serialized; stripped before any external exposure.
	AvatarURL    string         `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// IsApproved reports whether the account may use role-gated routes.
// Clients and admins are approved from creation.
func (u *User) IsApproved() bool {
	return u.Approval == ApprovalApproved
}
