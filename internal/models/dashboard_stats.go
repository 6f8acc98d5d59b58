package models

import "time"

// DashboardStatsID is the primary key of the single dashboard overview row.
const DashboardStatsID = "dashboard_overview"

type ClientStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Individuals int `json:"individuals"`
	Businesses  int `json:"businesses"`
}

type CaseStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Prospects int `json:"prospects"`
	Closed    int `json:"closed"`
}

type ContractStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Signed   int `json:"signed"`
	Archived int `json:"archived"`
}

type FinanceStats struct {
	TotalInvoiced  float64 `json:"total_invoiced"`
	TotalPaid      float64 `json:"total_paid"`
	TotalPending   float64 `json:"total_pending"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

type SessionStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Today    int `json:"today"`
}

// DashboardStats is the singleton overview row, fully recomputed by each
// aggregation run and merged in place.
type DashboardStats struct {
	ID          string        `gorm:"primaryKey;size:50" json:"-"`
	Clients     ClientStats   `gorm:"embedded;embeddedPrefix:clients_" json:"clients"`
	Cases       CaseStats     `gorm:"embedded;embeddedPrefix:cases_" json:"cases"`
	Contracts   ContractStats `gorm:"embedded;embeddedPrefix:contracts_" json:"contracts"`
	Finances    FinanceStats  `gorm:"embedded;embeddedPrefix:finances_" json:"finances"`
	Sessions    SessionStats  `gorm:"embedded;embeddedPrefix:sessions_" json:"sessions"`
	LastUpdated time.Time     `json:"last_updated"`
}
