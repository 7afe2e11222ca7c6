package repository

import (
	"context"
	"errors"
	"time"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// BudgetItemGormRepository persists BudgetItem entities in Postgres.
type BudgetItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBudgetItemRepository = (*BudgetItemGormRepository)(nil)

func NewBudgetItemGormRepository(db *gorm.DB) *BudgetItemGormRepository {
	return &BudgetItemGormRepository{db: db}
}

func (r *BudgetItemGormRepository) Create(ctx context.Context, b entities.BudgetItem, audit entities.AuditLog) (entities.BudgetItem, error) {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	audit.CreatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return b, nil
}

// GetByID returns a zero-value BudgetItem (empty ID) when nothing matches.
func (r *BudgetItemGormRepository) GetByID(ctx context.Context, id string) (entities.BudgetItem, error) {
	var b entities.BudgetItem
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.BudgetItem{}, nil
	}
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return b, nil
}

func (r *BudgetItemGormRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.BudgetItem, error) {
	var items []entities.BudgetItem
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BudgetItemGormRepository) Update(ctx context.Context, b entities.BudgetItem, audit entities.AuditLog) (entities.BudgetItem, error) {
	now := time.Now().UTC()
	b.UpdatedAt = now
	audit.CreatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&b).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return b, nil
}

func (r *BudgetItemGormRepository) Delete(ctx context.Context, id string, audit entities.AuditLog) error {
	audit.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.BudgetItem{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Create(&audit).Error
	})
}

// CountApprovedByProjectID is the workflow gate query. Always counted fresh.
func (r *BudgetItemGormRepository) CountApprovedByProjectID(ctx context.Context, projectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.BudgetItem{}).
		Where("project_id = ? AND approval_status = ?", projectID, entities.ApprovalStatusApproved).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
