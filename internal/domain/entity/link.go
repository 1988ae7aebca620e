package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkStatus is the workflow state of a startup/support-structure link.
type LinkStatus string

const (
	// LinkPending is the state of a freshly issued support request.
	LinkPending LinkStatus = "pending"
	// LinkApproved marks an accepted support request.
	LinkApproved LinkStatus = "approved"
	// LinkDeclined marks a rejected support request.
	LinkDeclined LinkStatus = "declined"
)

// String returns the string representation of the LinkStatus.
func (s LinkStatus) String() string {
	return string(s)
}

// IsValid checks if the LinkStatus is a valid value.
func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkPending, LinkApproved, LinkDeclined:
		return true
	default:
		return false
	}
}

// SupportLink joins a startup to a support structure. Status transitions are
// driven by the request/respond workflow, never written directly by clients.
type SupportLink struct {
	ID          uuid.UUID  `json:"id"`
	StartupID   uuid.UUID  `json:"startupId"`
	StructureID uuid.UUID  `json:"structureId"`
	Status      LinkStatus `json:"status"`
	InvitedAt   time.Time  `json:"invitedAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`

	// Structure is populated on startup-facing listings.
	Structure *SupportStructure `json:"structure,omitempty"`
}
