package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a scheduled appointment (court session or client meeting).
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CaseID    uuid.UUID `gorm:"type:uuid;index" json:"case_id"`
	DateTime  time.Time `gorm:"index;not null" json:"date_time"`
	Location  string    `gorm:"size:255" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
