package usecase

import (
	"context"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/domain/permissions"
	"projectdesk/internal/usecase/interfaces"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

// IAuditUseCase reads the audit trail. Writing happens inside the entity
// repositories; there is no append operation to expose here.
type IAuditUseCase interface {
	List(ctx context.Context, actor *entities.User, filter entities.AuditLogFilter) ([]entities.AuditLog, error)
}

type AuditUseCase struct {
	repo  interfaces.IAuditLogRepository
	perms *permissions.Engine
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository, perms *permissions.Engine) *AuditUseCase {
	return &AuditUseCase{repo: repo, perms: perms}
}

// List returns entries newest first, restricted to holders of the
// view_audit_logs capability.
func (u *AuditUseCase) List(ctx context.Context, actor *entities.User, filter entities.AuditLogFilter) ([]entities.AuditLog, error) {
	if !u.perms.Can(actor, permissions.CapabilityViewAuditLogs) {
		return nil, ErrUnauthorized
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultAuditPageSize
	}
	if filter.Limit > maxAuditPageSize {
		filter.Limit = maxAuditPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return u.repo.List(ctx, filter)
}
