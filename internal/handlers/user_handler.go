package handlers

import (
	"errors"

	"github.com/aldawsari/legalfirm-backend/internal/dto"
	"github.com/aldawsari/legalfirm-backend/internal/identity"
	"github.com/aldawsari/legalfirm-backend/internal/middleware"
	"github.com/aldawsari/legalfirm-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create provisions a collaborator account. The admin UI surfaces the error
// message verbatim, so messages here are the user-facing contract.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	callerID, err := middleware.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized: user must be authenticated",
		})
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.userService.CreateUser(callerID, &req)
	if err != nil {
		var roleErr *services.InvalidRoleError
		switch {
		case errors.Is(err, services.ErrCallerNotFound), errors.Is(err, services.ErrNotAdmin):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrMissingFields), errors.As(err, &roleErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, identity.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create user",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
