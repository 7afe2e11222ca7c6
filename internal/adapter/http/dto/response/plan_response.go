package response

import (
	"time"

	"projectdesk/internal/domain/entities"
)

type PlanResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Methodology string    `json:"methodology,omitempty"`
	Baseline    string    `json:"baseline,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPlan(p entities.ProjectPlan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Methodology: p.Methodology,
		Baseline:    p.Baseline,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}
