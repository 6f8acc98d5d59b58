package jobs

import (
	"log/slog"
	"time"

	"github.com/aldawsari/legalfirm-backend/internal/config"
	"github.com/aldawsari/legalfirm-backend/internal/models"
	"github.com/aldawsari/legalfirm-backend/internal/services"
	"gorm.io/gorm"
)

// Scheduler drives the in-process periodic jobs. Each job runs on its own
// single goroutine, so at most one instance of a job executes at a time —
// which is what keeps concurrent stats runs from interleaving writes to the
// dashboard row.
type Scheduler struct {
	db       *gorm.DB
	cfg      *config.Config
	stats    *services.StatsService
	reminder *services.ReminderService
	done     chan struct{}
}

func NewScheduler(db *gorm.DB, cfg *config.Config, stats *services.StatsService, reminder *services.ReminderService) *Scheduler {
	return &Scheduler{
		db:       db,
		cfg:      cfg,
		stats:    stats,
		reminder: reminder,
		done:     make(chan struct{}),
	}
}

// Start launches the job loops: hourly stats aggregation, hourly appointment
// reminders, daily system-log cleanup. The first stats pass runs immediately
// so a fresh deployment has a dashboard before the first tick.
func (s *Scheduler) Start() {
	go s.loop("update_system_stats", s.cfg.StatsInterval, true, s.stats.Run)
	go s.loop("send_appointment_reminder", s.cfg.ReminderInterval, false, s.reminder.Run)
	go s.loop("system_log_cleanup", 24*time.Hour, false, s.cleanupLogs)
	slog.Info("job scheduler started",
		"stats_interval", s.cfg.StatsInterval.String(),
		"reminder_interval", s.cfg.ReminderInterval.String())
}

func (s *Scheduler) Stop() {
	close(s.done)
}

func (s *Scheduler) loop(name string, interval time.Duration, immediate bool, run func()) {
	if immediate {
		run()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			run()
		case <-s.done:
			slog.Info("job stopped", "job", name)
			return
		}
	}
}

// cleanupLogs deletes system_logs older than 30 days.
func (s *Scheduler) cleanupLogs() {
	cutoff := time.Now().AddDate(0, 0, -30)
	result := s.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
