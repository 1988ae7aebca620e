package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportLinkModel mirrors the 'support_links' table connecting startups to
// support structures. The (startup, structure) pair is unique regardless of status.
type SupportLinkModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StartupID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_support_links_pair"`
	StructureID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_support_links_pair"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"`
	InvitedAt   time.Time  `gorm:"not null"`
	RespondedAt *time.Time

	Structure *SupportStructureModel `gorm:"foreignKey:StructureID"`
}

// TableName explicitly sets the table name for GORM.
func (SupportLinkModel) TableName() string {
	return "support_links"
}
