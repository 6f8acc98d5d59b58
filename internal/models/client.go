package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClientTypeIndividual = "individual"
	ClientTypeBusiness   = "business"
)

// Client is a firm client (individual or business).
// IsActive is nullable on purpose: records created before the flag existed
// carry no value and count as active.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:20;index" json:"type"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
