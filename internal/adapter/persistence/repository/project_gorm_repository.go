package repository

import (
	"context"
	"errors"
	"time"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProjectGormRepository persists Project entities in Postgres.
//
// Every mutation writes the entity and its audit entry in one transaction,
// so the audit trail can never diverge from the data it describes.
type ProjectGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

func (r *ProjectGormRepository) Create(ctx context.Context, p entities.Project, audit entities.AuditLog) (entities.Project, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	audit.CreatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return entities.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

// GetByID returns a zero-value Project (empty ID) when nothing matches.
func (r *ProjectGormRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var p entities.Project
	err := r.db.WithContext(ctx).Preload("Owner").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectGormRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	err := r.db.WithContext(ctx).Preload("Owner").Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectGormRepository) Update(ctx context.Context, p entities.Project, transition *entities.WorkflowTransition, audit entities.AuditLog) (entities.Project, error) {
	now := time.Now().UTC()
	p.UpdatedAt = now
	audit.CreatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		if transition != nil {
			transition.CreatedAt = now
			if err := tx.Create(transition).Error; err != nil {
				return err
			}
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return entities.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProjectGormRepository) Delete(ctx context.Context, id string, audit entities.AuditLog) error {
	audit.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&entities.BudgetItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&entities.ProjectPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&entities.WorkflowTransition{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Project{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
}
