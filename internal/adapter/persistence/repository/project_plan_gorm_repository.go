package repository

import (
	"context"
	"errors"
	"time"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProjectPlanGormRepository persists ProjectPlan entities in Postgres.
// At most one plan exists per project; the plan use case enforces that
// before calling Create.
type ProjectPlanGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectPlanRepository = (*ProjectPlanGormRepository)(nil)

func NewProjectPlanGormRepository(db *gorm.DB) *ProjectPlanGormRepository {
	return &ProjectPlanGormRepository{db: db}
}

func (r *ProjectPlanGormRepository) Create(ctx context.Context, p entities.ProjectPlan, audit entities.AuditLog) (entities.ProjectPlan, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	audit.CreatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	return p, nil
}

// GetByProjectID returns a zero-value ProjectPlan (empty ID) when the
// project has no plan yet.
func (r *ProjectPlanGormRepository) GetByProjectID(ctx context.Context, projectID string) (entities.ProjectPlan, error) {
	var p entities.ProjectPlan
	err := r.db.WithContext(ctx).First(&p, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ProjectPlan{}, nil
	}
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	return p, nil
}
