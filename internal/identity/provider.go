package identity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrIdentityNotFound = errors.New("identity not found")
)

// AuthIdentity is an authentication account. Profiles in the users table are
// keyed by the identity ID and must never exist without one.
type AuthIdentity struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	PhoneNumber   *string   `gorm:"size:20" json:"phone_number"`
	EmailVerified bool      `gorm:"default:false" json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateParams struct {
	Email       string
	Password    string
	PhoneNumber *string
}

// Provider creates and deletes authentication identities. Delete exists so a
// caller can compensate when a dependent write fails after Create succeeded.
type Provider interface {
	Create(params CreateParams) (*AuthIdentity, error)
	Delete(id uuid.UUID) error
	FindByEmail(email string) (*AuthIdentity, error)
}
