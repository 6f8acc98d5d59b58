package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aldawsari/legalfirm-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsService recomputes the dashboard overview from the full current state
// of the five source tables. Every run is a fresh snapshot; there is no
// incremental logic, so a re-run over unchanged data yields the same counters.
type StatsService struct {
	db *gorm.DB

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Aggregate scans all collections and merge-writes the singleton overview
// row. The month window for revenue is [startOfMonth, now], both inclusive.
func (s *StatsService) Aggregate(now time.Time) (*models.DashboardStats, error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var clients []models.Client
	if err := s.db.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	clientStats := models.ClientStats{Total: len(clients)}
	for _, c := range clients {
		// Absent flag counts as active.
		if c.IsActive == nil || *c.IsActive {
			clientStats.Active++
		}
		switch c.Type {
		case models.ClientTypeIndividual:
			clientStats.Individuals++
		case models.ClientTypeBusiness:
			clientStats.Businesses++
		}
	}

	var cases []models.Case
	if err := s.db.Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}
	caseStats := models.CaseStats{Total: len(cases)}
	for _, c := range cases {
		switch c.Status {
		case models.CaseStatusActive:
			caseStats.Active++
		case models.CaseStatusProspect:
			caseStats.Prospects++
		case models.CaseStatusClosed:
			caseStats.Closed++
		}
	}

	var contracts []models.Contract
	if err := s.db.Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("failed to load contracts: %w", err)
	}
	contractStats := models.ContractStats{Total: len(contracts)}
	for _, c := range contracts {
		switch c.Status {
		case models.ContractStatusPending:
			contractStats.Pending++
		case models.ContractStatusSigned:
			contractStats.Signed++
		case models.ContractStatusArchived:
			contractStats.Archived++
		}
	}

	var finances []models.FinanceRecord
	if err := s.db.Find(&finances).Error; err != nil {
		return nil, fmt.Errorf("failed to load finances: %w", err)
	}
	financeStats := models.FinanceStats{}
	for _, f := range finances {
		financeStats.TotalInvoiced += f.Total
		financeStats.TotalPaid += f.AmountPaid
		if !f.CreatedAt.Before(startOfMonth) && !f.CreatedAt.After(now) {
			financeStats.MonthlyRevenue += f.Total
		}
	}
	// May go negative when payments exceed invoiced totals; not clamped.
	financeStats.TotalPending = financeStats.TotalInvoiced - financeStats.TotalPaid

	var sessions []models.Session
	if err := s.db.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	sessionStats := models.SessionStats{Total: len(sessions)}
	ny, nm, nd := now.Date()
	for _, sess := range sessions {
		if sess.DateTime.After(now) {
			sessionStats.Upcoming++
		}
		y, m, d := sess.DateTime.Date()
		if y == ny && m == nm && d == nd {
			sessionStats.Today++
		}
	}

	stats := models.DashboardStats{
		ID:          models.DashboardStatsID,
		Clients:     clientStats,
		Cases:       caseStats,
		Contracts:   contractStats,
		Finances:    financeStats,
		Sessions:    sessionStats,
		LastUpdated: now,
	}

	// Upsert on the primary key: updates the stats columns in place, leaving
	// anything else on the row untouched.
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to write dashboard stats: %w", err)
	}

	return &stats, nil
}

// Run is the scheduled entry point. Failures are logged and swallowed: there
// is no caller to propagate to, and the next tick recomputes everything from
// scratch anyway. The last error stays queryable via Status.
func (s *StatsService) Run() {
	now := time.Now()
	_, err := s.Aggregate(now)

	s.mu.Lock()
	s.lastRun = now
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		slog.Error("dashboard stats update failed", "action", "update_system_stats", "error", err)
		return
	}
	slog.Info("dashboard stats updated", "action", "update_system_stats")
}

// Status reports the last run time and last error for operational visibility.
func (s *StatsService) Status() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

// Overview reads the current dashboard row.
func (s *StatsService) Overview() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.db.First(&stats, "id = ?", models.DashboardStatsID).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
