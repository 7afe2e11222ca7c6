package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// IAuditLogRepository reads the append-only audit trail. Audit rows are
// written inside the transactions of the entity repositories; this interface
// deliberately exposes no mutation.
type IAuditLogRepository interface {
	List(ctx context.Context, filter entities.AuditLogFilter) ([]entities.AuditLog, error)
}
