package identity

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestProvider(t *testing.T) *GormProvider {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&AuthIdentity{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewGormProvider(db)
}

func TestCreateHashesPassword(t *testing.T) {
	p := newTestProvider(t)

	phone := "+966501234567"
	ident, err := p.Create(CreateParams{Email: "a@firm.example", Password: "s3cretpass", PhoneNumber: &phone})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ident.EmailVerified {
		t.Error("new identities must start unverified")
	}
	if ident.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if ident.PhoneNumber == nil || *ident.PhoneNumber != phone {
		t.Fatalf("phone not stored: %v", ident.PhoneNumber)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	p := newTestProvider(t)

	if _, err := p.Create(CreateParams{Email: "dup@firm.example", Password: "s3cretpass"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := p.Create(CreateParams{Email: "dup@firm.example", Password: "other"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestDelete(t *testing.T) {
	p := newTestProvider(t)

	ident, err := p.Create(CreateParams{Email: "gone@firm.example", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := p.Delete(ident.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := p.FindByEmail("gone@firm.example"); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("identity still findable after delete: %v", err)
	}
	if err := p.Delete(ident.ID); !errors.Is(err, ErrIdentityNotFound) {
		t.Fatalf("second delete: got %v, want ErrIdentityNotFound", err)
	}
}
