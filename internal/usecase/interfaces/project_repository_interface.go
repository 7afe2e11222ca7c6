package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// IProjectRepository abstracts relational persistence for Project.
//
// Every mutating method takes the audit entry describing the mutation and
// must persist both in a single transaction: the entity write and its audit
// row either both land or neither does.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project, audit entities.AuditLog) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	// Update persists the merged project; transition, when non-nil, is the
	// status change to append alongside it.
	Update(ctx context.Context, p entities.Project, transition *entities.WorkflowTransition, audit entities.AuditLog) (entities.Project, error)
	// Delete removes the project and cascades its budget items, plan and
	// workflow transitions before the project row itself.
	Delete(ctx context.Context, id string, audit entities.AuditLog) error
}
