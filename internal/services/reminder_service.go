package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aldawsari/legalfirm-backend/internal/models"
	"gorm.io/gorm"
)

// ReminderService will send SMS reminders for sessions scheduled within the
// next 24 hours. Delivery is not wired yet: the job only reports what it
// would send.
// TODO: wire SMS delivery once the Twilio credentials are provisioned.
type ReminderService struct {
	db *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

// Run is the scheduled entry point. Same policy as the stats job: log and
// swallow, the next tick retries.
func (s *ReminderService) Run() {
	now := time.Now()
	count, err := s.upcomingCount(now)
	if err != nil {
		slog.Error("appointment reminder pass failed", "action", "send_appointment_reminder", "error", err)
		return
	}
	slog.Info("appointment reminder pass completed (delivery not configured)",
		"action", "send_appointment_reminder", "due_in_24h", count)
}

func (s *ReminderService) upcomingCount(now time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Session{}).
		Where("date_time > ? AND date_time <= ?", now, now.Add(24*time.Hour)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming sessions: %w", err)
	}
	return count, nil
}
