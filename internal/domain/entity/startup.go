package entity

import (
	"time"

	"github.com/google/uuid"
)

// Startup is a seller tenant. Exactly one startup exists per owning user.
type Startup struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Sector      string    `json:"sector"`
	Country     string    `json:"country"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SupportStructure is an accelerator/incubator entity that can be linked to
// startups it supports. Exactly one structure exists per owning user.
type SupportStructure struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Website   string    `json:"website"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
