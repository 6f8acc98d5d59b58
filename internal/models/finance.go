package models

import (
	"time"

	"github.com/google/uuid"
)

// FinanceRecord is one invoice line: Total is the invoiced amount,
// AmountPaid what has been settled so far.
type FinanceRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID   uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Total      float64   `json:"total"`
	AmountPaid float64   `json:"amount_paid"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
