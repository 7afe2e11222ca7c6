package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// IProjectPlanRepository abstracts relational persistence for ProjectPlan.
type IProjectPlanRepository interface {
	Create(ctx context.Context, p entities.ProjectPlan, audit entities.AuditLog) (entities.ProjectPlan, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.ProjectPlan, error)
}
