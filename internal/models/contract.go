package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContractStatusPending  = "pending"
	ContractStatusSigned   = "signed"
	ContractStatusArchived = "archived"
)

type Contract struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Status    string    `gorm:"size:20;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
