// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds in the marketplace.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleStartup indicates a seller tenant owner.
	RoleStartup Role = "startup"
	// RoleStructure indicates a support structure (accelerator/incubator) owner.
	RoleStructure Role = "structure"
	// RoleClient indicates a purchasing end user.
	RoleClient Role = "client"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStartup, RoleStructure, RoleClient:
		return true
	default:
		return false
	}
}

// RequiresApproval reports whether accounts with this role start out pending
// administrative approval.
func (r Role) RequiresApproval() bool {
	return r == RoleStartup || r == RoleStructure
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ApprovalStatus tracks the one-way administrative approval of startup and
// structure accounts.
type ApprovalStatus string

const (
	// ApprovalPending is the initial state for roles that require approval.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalApproved is the final state; there is no revocation transition.
	ApprovalApproved ApprovalStatus = "approved"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}
