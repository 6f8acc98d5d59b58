package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aldawsari/legalfirm-backend/internal/dto"
	"github.com/aldawsari/legalfirm-backend/internal/identity"
	"github.com/aldawsari/legalfirm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCallerNotFound = errors.New("unauthorized: calling user not found")
	ErrNotAdmin       = errors.New("unauthorized: only admins can create users")
	ErrMissingFields  = errors.New("missing required fields: email, password, role")
)

// InvalidRoleError rejects roles outside the collaborator set. Admin and
// client accounts are provisioned elsewhere.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role: %s, must be one of: %s",
		e.Role, strings.Join(models.CollaboratorRoles, ", "))
}

// UserService provisions staff accounts: an auth identity first, then the
// profile row keyed by the identity ID.
type UserService struct {
	db          *gorm.DB
	provider    identity.Provider
	countryCode string
}

func NewUserService(db *gorm.DB, provider identity.Provider, countryCode string) *UserService {
	return &UserService{db: db, provider: provider, countryCode: countryCode}
}

// CreateUser checks the caller's privilege and the request, then creates the
// identity and the profile. Preconditions fail fast with no side effects; a
// profile-write failure after the identity exists is compensated by deleting
// the identity again.
func (s *UserService) CreateUser(callerID uuid.UUID, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	var caller models.User
	if err := s.db.First(&caller, "id = ?", callerID).Error; err != nil {
		return nil, ErrCallerNotFound
	}
	if caller.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, ErrMissingFields
	}
	if !models.IsCollaboratorRole(req.Role) {
		return nil, &InvalidRoleError{Role: req.Role}
	}

	var phone *string
	if normalized, ok := NormalizePhone(req.PhoneNumber, s.countryCode); ok {
		phone = &normalized
	}

	ident, err := s.provider.Create(identity.CreateParams{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: phone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth identity: %w", err)
	}

	profile := datatypes.JSON([]byte("{}"))
	if req.Profile != nil {
		b, err := json.Marshal(req.Profile)
		if err == nil {
			profile = datatypes.JSON(b)
		}
	}

	user := models.User{
		ID:          ident.ID,
		Email:       req.Email,
		PhoneNumber: phone,
		Role:        req.Role,
		Profile:     profile,
		Permissions: datatypes.JSON([]byte("[]")),
		IsActive:    true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Don't leave an identity without a profile behind.
		if delErr := s.provider.Delete(ident.ID); delErr != nil {
			slog.Error("failed to roll back auth identity",
				"action", "create_user", "user_id", ident.ID.String(), "error", delErr)
		}
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	slog.Info("user created", "action", "create_user", "user_id", ident.ID.String(), "role", req.Role)

	return &dto.CreateUserResponse{
		Success: true,
		UID:     ident.ID,
		Email:   req.Email,
	}, nil
}
