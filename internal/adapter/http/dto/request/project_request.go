package request

import (
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"
)

// ProjectRequest is the creation payload for a project.
type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      entities.ProjectStatus(r.Status),
	}
}

// ProjectPatchRequest is the partial-update payload for a project.
type ProjectPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r ProjectPatchRequest) ToPatch() entities.ProjectPatch {
	patch := entities.ProjectPatch{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Status != nil {
		s := entities.ProjectStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}
