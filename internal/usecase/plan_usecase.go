package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/domain/permissions"
	"projectdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound      = errors.New("project plan not found")
	ErrPlanAlreadyExists = errors.New("project plan already exists")
	// ErrGateNotSatisfied is the workflow precondition failure; the message is
	// the hint returned to clients.
	ErrGateNotSatisfied = errors.New("approve at least one budget item first")
)

// PlanInput carries the free-text plan fields.
type PlanInput struct {
	Methodology string
	Baseline    string
}

// IPlanUseCase creates and reads the single plan artifact per project.
type IPlanUseCase interface {
	Create(ctx context.Context, actor *entities.User, projectID string, in PlanInput) (entities.ProjectPlan, error)
	Get(ctx context.Context, actor *entities.User, projectID string) (entities.ProjectPlan, error)
}

type PlanUseCase struct {
	repo     interfaces.IProjectPlanRepository
	projects interfaces.IProjectRepository
	gate     *WorkflowGate
	perms    *permissions.Engine
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IProjectPlanRepository, projects interfaces.IProjectRepository, gate *WorkflowGate, perms *permissions.Engine) *PlanUseCase {
	return &PlanUseCase{repo: repo, projects: projects, gate: gate, perms: perms}
}

// Create authorizes the actor, consults the workflow gate and only then
// writes. A closed gate fails before any persistence side effect: no plan
// row, no audit entry.
func (u *PlanUseCase) Create(ctx context.Context, actor *entities.User, projectID string, in PlanInput) (entities.ProjectPlan, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ProjectPlan{}, ErrProjectNotFound
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	if project.ID == "" {
		return entities.ProjectPlan{}, ErrProjectNotFound
	}
	if !u.perms.CanOn(actor, permissions.CapabilityEdit, project.OwnerID) {
		return entities.ProjectPlan{}, ErrUnauthorized
	}

	open, err := u.gate.CanCreatePlan(ctx, project.ID)
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	if !open {
		log.Printf("[plan][usecase] gate closed project_id=%s", project.ID)
		return entities.ProjectPlan{}, ErrGateNotSatisfied
	}

	existing, err := u.repo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	if existing.ID != "" {
		return entities.ProjectPlan{}, ErrPlanAlreadyExists
	}

	plan := entities.ProjectPlan{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		Methodology: strings.TrimSpace(in.Methodology),
		Baseline:    strings.TrimSpace(in.Baseline),
	}
	if actor != nil {
		plan.CreatedBy = actor.ID
	}

	audit := newAuditLog(entities.EntityTypeProjectPlan, plan.ID, actor, entities.AuditActionCreate, plan)
	return u.repo.Create(ctx, plan, audit)
}

func (u *PlanUseCase) Get(ctx context.Context, actor *entities.User, projectID string) (entities.ProjectPlan, error) {
	if actor == nil {
		return entities.ProjectPlan{}, ErrUnauthorized
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.ProjectPlan{}, ErrPlanNotFound
	}

	plan, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.ProjectPlan{}, err
	}
	if plan.ID == "" {
		return entities.ProjectPlan{}, ErrPlanNotFound
	}
	return plan, nil
}
