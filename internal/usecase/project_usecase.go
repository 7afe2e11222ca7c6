package usecase

import (
	"context"
	"errors"
	"strings"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/domain/permissions"
	"projectdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectName   = errors.New("invalid project name")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrEmptyProjectPatch    = errors.New("empty project patch")
)

// ProjectInput carries the caller-supplied fields for a new project.
type ProjectInput struct {
	Name        string
	Description string
	Status      entities.ProjectStatus
}

// IProjectUseCase exposes the project lifecycle operations.
type IProjectUseCase interface {
	Create(ctx context.Context, actor *entities.User, in ProjectInput) (entities.Project, error)
	Get(ctx context.Context, actor *entities.User, id string) (entities.Project, error)
	List(ctx context.Context, actor *entities.User) ([]entities.Project, error)
	Patch(ctx context.Context, actor *entities.User, id string, patch entities.ProjectPatch) (entities.Project, error)
	Delete(ctx context.Context, actor *entities.User, id string) error
}

type ProjectUseCase struct {
	repo  interfaces.IProjectRepository
	perms *permissions.Engine
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, perms *permissions.Engine) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, perms: perms}
}

func (u *ProjectUseCase) Create(ctx context.Context, actor *entities.User, in ProjectInput) (entities.Project, error) {
	if !u.perms.Can(actor, permissions.CapabilityCreateProject) {
		return entities.Project{}, ErrUnauthorized
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}
	if in.Status == "" {
		in.Status = entities.ProjectStatusPlanning
	}
	if !entities.ValidProjectStatus(in.Status) {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	project := entities.Project{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
		OwnerID:     actor.ID,
	}

	audit := newAuditLog(entities.EntityTypeProject, project.ID, actor, entities.AuditActionCreate, project)
	return u.repo.Create(ctx, project, audit)
}

func (u *ProjectUseCase) Get(ctx context.Context, actor *entities.User, id string) (entities.Project, error) {
	if actor == nil {
		return entities.Project{}, ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (u *ProjectUseCase) List(ctx context.Context, actor *entities.User) ([]entities.Project, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	return u.repo.List(ctx)
}

// Patch merges a typed partial update. A status change is recorded as a
// workflow transition in the same transaction as the project row.
func (u *ProjectUseCase) Patch(ctx context.Context, actor *entities.User, id string, patch entities.ProjectPatch) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	if patch.Name == nil && patch.Description == nil && patch.Status == nil {
		return entities.Project{}, ErrEmptyProjectPatch
	}
	if patch.Status != nil && !entities.ValidProjectStatus(*patch.Status) {
		return entities.Project{}, ErrInvalidProjectStatus
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	// Ownership override: the owner may edit regardless of rank.
	if !u.perms.CanOn(actor, permissions.CapabilityEdit, project.OwnerID) {
		return entities.Project{}, ErrUnauthorized
	}

	transition := patch.Apply(&project)
	if transition != nil {
		transition.ID = uuid.NewString()
		transition.ActorID = actor.ID
	}

	audit := newAuditLog(entities.EntityTypeProject, project.ID, actor, entities.AuditActionUpdate, patch)
	return u.repo.Update(ctx, project, transition, audit)
}

func (u *ProjectUseCase) Delete(ctx context.Context, actor *entities.User, id string) error {
	if !u.perms.Can(actor, permissions.CapabilityDelete) {
		return ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProjectNotFound
	}

	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.ID == "" {
		return ErrProjectNotFound
	}

	audit := newAuditLog(entities.EntityTypeProject, project.ID, actor, entities.AuditActionDelete, project)
	return u.repo.Delete(ctx, project.ID, audit)
}
