package model

import (
	"time"

	"github.com/google/uuid"
)

// StartupModel mirrors the 'startups' table. Each startup is owned by exactly one user.
type StartupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;unique"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Sector      string    `gorm:"type:varchar(100)"`
	Country     string    `gorm:"type:varchar(100)"`
	Website     string    `gorm:"type:varchar(512)"`
	Description string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel     `gorm:"foreignKey:StartupID"`
	Links    []SupportLinkModel `gorm:"foreignKey:StartupID"`
}

// TableName explicitly sets the table name for GORM.
func (StartupModel) TableName() string {
	return "startups"
}

// SupportStructureModel mirrors the 'support_structures' table (incubators and accelerators).
type SupportStructureModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;unique"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Country   string    `gorm:"type:varchar(100)"`
	Website   string    `gorm:"type:varchar(512)"`
	LogoURL   string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportStructureModel) TableName() string {
	return "support_structures"
}
