package handlers

import (
	"errors"
	"time"

	"github.com/aldawsari/legalfirm-backend/internal/dto"
	"github.com/aldawsari/legalfirm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview returns the current dashboard row.
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	stats, err := h.statsService.Overview()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Dashboard stats not computed yet",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load dashboard stats",
		})
	}
	return c.JSON(stats)
}

// Refresh triggers an aggregation pass outside the schedule.
func (h *StatsHandler) Refresh(c *fiber.Ctx) error {
	stats, err := h.statsService.Aggregate(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Aggregation failed: " + err.Error(),
		})
	}
	return c.JSON(stats)
}

// Status reports the last scheduled run and its error, if any. The scheduled
// job never propagates failures, so this is the operator's window into it.
func (h *StatsHandler) Status(c *fiber.Ctx) error {
	lastRun, lastErr := h.statsService.Status()

	resp := dto.StatsStatusResponse{Healthy: lastErr == nil}
	if !lastRun.IsZero() {
		resp.LastRun = lastRun.UTC().Format(time.RFC3339)
	}
	if lastErr != nil {
		resp.LastError = lastErr.Error()
	}
	return c.JSON(resp)
}
