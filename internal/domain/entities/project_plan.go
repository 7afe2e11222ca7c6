package entities

import "time"

// ProjectPlan is the single plan artifact of a project. At most one exists
// per project; the constraint is enforced by the plan service, not the schema.
type ProjectPlan struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string    `gorm:"type:uuid;not null;index" json:"project_id"`
	Methodology string    `gorm:"size:100" json:"methodology,omitempty"`
	Baseline    string    `gorm:"type:text" json:"baseline,omitempty"`
	CreatedBy   string    `gorm:"type:uuid" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
