package repository

import (
	"context"
	"errors"
	"time"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// TokenGormRepository persists bearer tokens and resolves them to users.
type TokenGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITokenRepository = (*TokenGormRepository)(nil)

func NewTokenGormRepository(db *gorm.DB) *TokenGormRepository {
	return &TokenGormRepository{db: db}
}

func (r *TokenGormRepository) Create(ctx context.Context, t entities.APIToken) (entities.APIToken, error) {
	t.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return entities.APIToken{}, err
	}
	return t, nil
}

// GetUserByToken returns a zero-value User (empty ID) for unknown tokens.
func (r *TokenGormRepository) GetUserByToken(ctx context.Context, token string) (entities.User, error) {
	var t entities.APIToken
	err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}

	var u entities.User
	err = r.db.WithContext(ctx).First(&u, "id = ?", t.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
