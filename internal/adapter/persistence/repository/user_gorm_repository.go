package repository

import (
	"context"
	"errors"
	"time"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// UserGormRepository persists User entities in Postgres.
type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// GetByID returns a zero-value User (empty ID) when nothing matches.
func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

// GetByUsername returns a zero-value User (empty ID) when nothing matches.
func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var u entities.User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}
