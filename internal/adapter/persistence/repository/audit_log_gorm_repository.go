package repository

import (
	"context"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// AuditLogGormRepository reads the audit trail. Rows are inserted by the
// entity repositories inside their own transactions; this repository only
// queries them.
type AuditLogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IAuditLogRepository = (*AuditLogGormRepository)(nil)

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) List(ctx context.Context, filter entities.AuditLogFilter) ([]entities.AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&entities.AuditLog{})

	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		q = q.Where("entity_id = ?", filter.EntityID)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if !filter.From.IsZero() {
		q = q.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("created_at <= ?", filter.To)
	}

	var logs []entities.AuditLog
	err := q.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
