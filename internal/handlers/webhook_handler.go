package handlers

import (
	"crypto/subtle"
	"log/slog"

	"github.com/aldawsari/legalfirm-backend/internal/config"
	"github.com/aldawsari/legalfirm-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// WebhookHandler receives object-finalized notifications from the storage
// provider. Both endpoints are placeholders: they acknowledge and log the
// object path, processing comes later.
type WebhookHandler struct {
	cfg *config.Config
}

func NewWebhookHandler(cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{cfg: cfg}
}

// HandleFileUploaded handles uploaded images and general files.
func (h *WebhookHandler) HandleFileUploaded(c *fiber.Ctx) error {
	return h.handle(c, "file_uploaded")
}

// HandleDocumentUploaded handles uploaded case documents.
func (h *WebhookHandler) HandleDocumentUploaded(c *fiber.Ctx) error {
	return h.handle(c, "document_uploaded")
}

func (h *WebhookHandler) handle(c *fiber.Ctx, action string) error {
	if h.cfg.WebhookToken == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhooks not configured",
		})
	}

	authHeader := c.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(authHeader), []byte(h.cfg.WebhookToken)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var event dto.StorageEvent
	if err := c.BodyParser(&event); err != nil || event.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid storage event payload",
		})
	}

	slog.Info("storage object finalized", "action", action, "path", event.Name, "bucket", event.Bucket)
	return c.JSON(fiber.Map{"received": true})
}
