package services

import (
	"errors"
	"testing"

	"github.com/aldawsari/legalfirm-backend/internal/dto"
	"github.com/aldawsari/legalfirm-backend/internal/identity"
	"github.com/aldawsari/legalfirm-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedCaller(t *testing.T, db *gorm.DB, role string) uuid.UUID {
	t.Helper()
	caller := models.User{
		ID:          uuid.New(),
		Email:       role + "@firm.example",
		Role:        role,
		Profile:     datatypes.JSON([]byte("{}")),
		Permissions: datatypes.JSON([]byte("[]")),
		IsActive:    true,
	}
	if err := db.Create(&caller).Error; err != nil {
		t.Fatalf("failed to seed caller: %v", err)
	}
	return caller.ID
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(db, identity.NewGormProvider(db), "966")
}

func TestCreateUserSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	adminID := seedCaller(t, db, models.RoleAdmin)

	resp, err := svc.CreateUser(adminID, &dto.CreateUserRequest{
		Email:       "lawyer@firm.example",
		Password:    "s3cretpass",
		PhoneNumber: "0501234567",
		Role:        "lawyer",
		Profile:     map[string]interface{}{"first_name": "Sara"},
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if !resp.Success || resp.Email != "lawyer@firm.example" || resp.UID == uuid.Nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	var user models.User
	if err := db.First(&user, "id = ?", resp.UID).Error; err != nil {
		t.Fatalf("profile row not found: %v", err)
	}
	if user.Role != "lawyer" || !user.IsActive {
		t.Fatalf("unexpected profile: role=%q active=%v", user.Role, user.IsActive)
	}
	if user.PhoneNumber == nil || *user.PhoneNumber != "+966501234567" {
		t.Fatalf("phone not normalized: %v", user.PhoneNumber)
	}

	var ident identity.AuthIdentity
	if err := db.First(&ident, "id = ?", resp.UID).Error; err != nil {
		t.Fatalf("auth identity not found: %v", err)
	}
	if ident.EmailVerified {
		t.Error("new identities must start unverified")
	}
}

func TestCreateUserInvalidPhoneIsDropped(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	adminID := seedCaller(t, db, models.RoleAdmin)

	resp, err := svc.CreateUser(adminID, &dto.CreateUserRequest{
		Email:       "translator@firm.example",
		Password:    "s3cretpass",
		PhoneNumber: "+123abc",
		Role:        "translator",
	})
	if err != nil {
		t.Fatalf("a malformed phone number must not fail the call: %v", err)
	}

	var user models.User
	if err := db.First(&user, "id = ?", resp.UID).Error; err != nil {
		t.Fatalf("profile row not found: %v", err)
	}
	if user.PhoneNumber != nil {
		t.Fatalf("expected phone to be omitted, got %q", *user.PhoneNumber)
	}
}

func TestCreateUserCallerChecks(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	lawyerID := seedCaller(t, db, "lawyer")

	req := &dto.CreateUserRequest{Email: "new@firm.example", Password: "s3cretpass", Role: "lawyer"}

	if _, err := svc.CreateUser(uuid.New(), req); !errors.Is(err, ErrCallerNotFound) {
		t.Fatalf("unknown caller: got %v, want ErrCallerNotFound", err)
	}
	if _, err := svc.CreateUser(lawyerID, req); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("non-admin caller: got %v, want ErrNotAdmin", err)
	}

	// Rejections happen before any side effect.
	if n := countRows(t, db, &identity.AuthIdentity{}, ""); n != 0 {
		t.Fatalf("expected no identities, got %d", n)
	}
	if n := countRows(t, db, &models.User{}, "email = ?", "new@firm.example"); n != 0 {
		t.Fatalf("expected no profile, got %d", n)
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	adminID := seedCaller(t, db, models.RoleAdmin)

	cases := []struct {
		name string
		req  dto.CreateUserRequest
	}{
		{name: "missing email", req: dto.CreateUserRequest{Password: "s3cretpass", Role: "lawyer"}},
		{name: "missing password", req: dto.CreateUserRequest{Email: "a@b.c", Role: "lawyer"}},
		{name: "missing role", req: dto.CreateUserRequest{Email: "a@b.c", Password: "s3cretpass"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateUser(adminID, &tc.req); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("got %v, want ErrMissingFields", err)
			}
		})
	}

	// admin is not a collaborator role and must be rejected before any write.
	_, err := svc.CreateUser(adminID, &dto.CreateUserRequest{
		Email: "second-admin@firm.example", Password: "s3cretpass", Role: "admin",
	})
	var roleErr *InvalidRoleError
	if !errors.As(err, &roleErr) {
		t.Fatalf("role=admin: got %v, want InvalidRoleError", err)
	}
	if n := countRows(t, db, &identity.AuthIdentity{}, ""); n != 0 {
		t.Fatalf("expected no identities after rejected calls, got %d", n)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	adminID := seedCaller(t, db, models.RoleAdmin)

	req := &dto.CreateUserRequest{Email: "dup@firm.example", Password: "s3cretpass", Role: "accountant"}

	if _, err := svc.CreateUser(adminID, req); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	_, err := svc.CreateUser(adminID, req)
	if !errors.Is(err, identity.ErrEmailTaken) {
		t.Fatalf("second call: got %v, want ErrEmailTaken", err)
	}

	// Exactly one identity and one profile afterwards.
	if n := countRows(t, db, &identity.AuthIdentity{}, "email = ?", req.Email); n != 1 {
		t.Fatalf("expected 1 identity, got %d", n)
	}
	if n := countRows(t, db, &models.User{}, "email = ?", req.Email); n != 1 {
		t.Fatalf("expected 1 profile, got %d", n)
	}
}

func TestCreateUserCompensatesFailedProfileWrite(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	adminID := seedCaller(t, db, models.RoleAdmin)

	// Occupy the profile email so the profile insert hits the unique index
	// after the identity create already succeeded.
	blocker := models.User{
		ID:       uuid.New(),
		Email:    "taken@firm.example",
		Role:     "lawyer",
		IsActive: true,
	}
	if err := db.Create(&blocker).Error; err != nil {
		t.Fatalf("failed to seed blocking profile: %v", err)
	}

	_, err := svc.CreateUser(adminID, &dto.CreateUserRequest{
		Email: "taken@firm.example", Password: "s3cretpass", Role: "engineer",
	})
	if err == nil {
		t.Fatal("expected the call to fail")
	}

	// The orphaned identity must have been rolled back.
	if n := countRows(t, db, &identity.AuthIdentity{}, "email = ?", "taken@firm.example"); n != 0 {
		t.Fatalf("expected identity rollback, found %d identities", n)
	}
}
