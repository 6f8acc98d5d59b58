package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormProvider stores identities in the application database.
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (p *GormProvider) Create(params CreateParams) (*AuthIdentity, error) {
	var existing AuthIdentity
	if err := p.db.Where("email = ?", params.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ident := AuthIdentity{
		ID:            uuid.New(),
		Email:         params.Email,
		PasswordHash:  string(hash),
		PhoneNumber:   params.PhoneNumber,
		EmailVerified: false,
	}

	if err := p.db.Create(&ident).Error; err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}
	return &ident, nil
}

func (p *GormProvider) Delete(id uuid.UUID) error {
	result := p.db.Where("id = ?", id).Delete(&AuthIdentity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

func (p *GormProvider) FindByEmail(email string) (*AuthIdentity, error) {
	var ident AuthIdentity
	if err := p.db.Where("email = ?", email).First(&ident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return &ident, nil
}
