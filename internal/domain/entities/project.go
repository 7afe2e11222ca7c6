package entities

import "time"

// ProjectStatus is the project lifecycle state.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusBudgeting  ProjectStatus = "budgeting"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is one of the lifecycle states.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusBudgeting, ProjectStatusInProgress,
		ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

type Project struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	OwnerID     string        `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       User          `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectPatch enumerates the updatable project fields. Pointer fields
// distinguish "absent" from "set to zero value".
type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

// Apply merges the patch into p and returns the status transition applied,
// if any (nil when the patch does not move the status).
func (patch ProjectPatch) Apply(p *Project) *WorkflowTransition {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil && *patch.Status != p.Status {
		from := p.Status
		p.Status = *patch.Status
		return &WorkflowTransition{ProjectID: p.ID, FromStatus: from, ToStatus: p.Status}
	}
	return nil
}

// WorkflowTransition records a single project status change. Transitions are
// owned by the project and removed with it.
type WorkflowTransition struct {
	ID         string        `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  string        `gorm:"type:uuid;not null;index" json:"project_id"`
	FromStatus ProjectStatus `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   ProjectStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	ActorID    string        `gorm:"type:uuid" json:"actor_id"`
	CreatedAt  time.Time     `json:"created_at"`
}
