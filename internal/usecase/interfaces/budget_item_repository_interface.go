package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// IBudgetItemRepository abstracts relational persistence for BudgetItem.
//
// Mutating methods persist the entity write and the given audit entry in one
// transaction.
type IBudgetItemRepository interface {
	Create(ctx context.Context, b entities.BudgetItem, audit entities.AuditLog) (entities.BudgetItem, error)
	GetByID(ctx context.Context, id string) (entities.BudgetItem, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.BudgetItem, error)
	Update(ctx context.Context, b entities.BudgetItem, audit entities.AuditLog) (entities.BudgetItem, error)
	Delete(ctx context.Context, id string, audit entities.AuditLog) error
	// CountApprovedByProjectID backs the workflow gate. It is always a fresh
	// count, never a cached flag.
	CountApprovedByProjectID(ctx context.Context, projectID string) (int64, error)
}
