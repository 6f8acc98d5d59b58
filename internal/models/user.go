package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const RoleAdmin = "admin"

// CollaboratorRoles are the staff roles an admin may provision through the
// user endpoint. Admin and client accounts go through a different path.
var CollaboratorRoles = []string{"lawyer", "student", "engineer", "accountant", "translator"}

func IsCollaboratorRole(role string) bool {
	for _, r := range CollaboratorRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the profile record for a staff member. Its ID equals the ID of the
// auth identity it belongs to; the identity is always created first.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PhoneNumber *string        `gorm:"size:20" json:"phone_number"`
	Role        string         `gorm:"size:20;not null;index" json:"role"`
	Profile     datatypes.JSON `json:"profile"`
	Permissions datatypes.JSON `json:"permissions"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
