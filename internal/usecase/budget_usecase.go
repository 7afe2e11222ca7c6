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
	ErrBudgetItemNotFound   = errors.New("budget item not found")
	ErrInvalidBudgetItem    = errors.New("invalid budget item payload")
	ErrEmptyBudgetItemPatch = errors.New("empty budget item patch")
)

// BudgetItemInput carries the caller-supplied fields for a new budget item.
// ContingencyPercentage is optional and defaults to 10 when absent.
type BudgetItemInput struct {
	BudgetItemID          string
	Category              string
	EstimatedCost         float64
	ActualCost            float64
	ContingencyPercentage *float64
	FiscalPeriod          string
	CostCenter            string
	Justification         string
	FundingSource         string
}

// IBudgetUseCase is the budget ledger: it owns derived-field computation and
// the approval transitions on budget items.
type IBudgetUseCase interface {
	Create(ctx context.Context, actor *entities.User, projectID string, in BudgetItemInput) (entities.BudgetItem, error)
	Get(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error)
	ListByProject(ctx context.Context, actor *entities.User, projectID string) ([]entities.BudgetItem, error)
	Patch(ctx context.Context, actor *entities.User, id string, patch entities.BudgetItemPatch) (entities.BudgetItem, error)
	Approve(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error)
	Reject(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error)
	Delete(ctx context.Context, actor *entities.User, id string) error
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetItemRepository
	projects interfaces.IProjectRepository
	perms    *permissions.Engine
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetItemRepository, projects interfaces.IProjectRepository, perms *permissions.Engine) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, projects: projects, perms: perms}
}

func (u *BudgetUseCase) Create(ctx context.Context, actor *entities.User, projectID string, in BudgetItemInput) (entities.BudgetItem, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.BudgetItem{}, ErrProjectNotFound
	}

	in.BudgetItemID = strings.TrimSpace(in.BudgetItemID)
	in.Category = strings.TrimSpace(in.Category)
	in.FiscalPeriod = strings.TrimSpace(in.FiscalPeriod)
	if in.BudgetItemID == "" || in.Category == "" || in.FiscalPeriod == "" || in.EstimatedCost < 0 {
		return entities.BudgetItem{}, ErrInvalidBudgetItem
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if project.ID == "" {
		return entities.BudgetItem{}, ErrProjectNotFound
	}
	if !u.perms.CanOn(actor, permissions.CapabilityEdit, project.OwnerID) {
		return entities.BudgetItem{}, ErrUnauthorized
	}

	contingency := entities.DefaultContingencyPercentage
	if in.ContingencyPercentage != nil {
		contingency = *in.ContingencyPercentage
	}

	item := entities.BudgetItem{
		ID:                    uuid.NewString(),
		ProjectID:             project.ID,
		BudgetItemID:          in.BudgetItemID,
		Category:              in.Category,
		EstimatedCost:         in.EstimatedCost,
		ActualCost:            in.ActualCost,
		ContingencyPercentage: contingency,
		FiscalPeriod:          in.FiscalPeriod,
		CostCenter:            strings.TrimSpace(in.CostCenter),
		Justification:         strings.TrimSpace(in.Justification),
		FundingSource:         strings.TrimSpace(in.FundingSource),
		ApprovalStatus:        entities.ApprovalStatusPending,
	}
	item.RecomputeDerived()

	audit := newAuditLog(entities.EntityTypeBudgetItem, item.ID, actor, entities.AuditActionCreate, item)
	return u.repo.Create(ctx, item, audit)
}

func (u *BudgetUseCase) Get(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error) {
	if actor == nil {
		return entities.BudgetItem{}, ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if item.ID == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}
	return item, nil
}

func (u *BudgetUseCase) ListByProject(ctx context.Context, actor *entities.User, projectID string) ([]entities.BudgetItem, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrProjectNotFound
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ID == "" {
		return nil, ErrProjectNotFound
	}
	return u.repo.ListByProjectID(ctx, project.ID)
}

// Patch merges a typed partial update and recomputes the derived fields
// against the merged row: a patch supplying only actual_cost still sees the
// stored estimated_cost and contingency before recomputation.
func (u *BudgetUseCase) Patch(ctx context.Context, actor *entities.User, id string, patch entities.BudgetItemPatch) (entities.BudgetItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}
	if patch.Empty() {
		return entities.BudgetItem{}, ErrEmptyBudgetItemPatch
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if item.ID == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}

	project, err := u.projects.GetByID(ctx, item.ProjectID)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if !u.perms.CanOn(actor, permissions.CapabilityEdit, project.OwnerID) {
		return entities.BudgetItem{}, ErrUnauthorized
	}

	patch.Apply(&item)

	audit := newAuditLog(entities.EntityTypeBudgetItem, item.ID, actor, entities.AuditActionUpdate, patch)
	return u.repo.Update(ctx, item, audit)
}

func (u *BudgetUseCase) Approve(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error) {
	return u.setApprovalStatus(ctx, actor, id, entities.ApprovalStatusApproved)
}

func (u *BudgetUseCase) Reject(ctx context.Context, actor *entities.User, id string) (entities.BudgetItem, error) {
	return u.setApprovalStatus(ctx, actor, id, entities.ApprovalStatusRejected)
}

func (u *BudgetUseCase) setApprovalStatus(ctx context.Context, actor *entities.User, id string, status entities.ApprovalStatus) (entities.BudgetItem, error) {
	if !u.perms.Can(actor, permissions.CapabilityApprove) {
		return entities.BudgetItem{}, ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if item.ID == "" {
		return entities.BudgetItem{}, ErrBudgetItemNotFound
	}
	if item.ApprovalStatus == status {
		// Idempotent: nothing changed, nothing to audit.
		log.Printf("[budget][usecase] approval status already %s item_id=%s", status, item.ID)
		return item, nil
	}

	item.ApprovalStatus = status

	audit := newAuditLog(entities.EntityTypeBudgetItem, item.ID, actor, entities.AuditActionUpdate,
		map[string]any{"approval_status": status})
	return u.repo.Update(ctx, item, audit)
}

func (u *BudgetUseCase) Delete(ctx context.Context, actor *entities.User, id string) error {
	// No ownership override on delete; only rank matters.
	if !u.perms.Can(actor, permissions.CapabilityDelete) {
		return ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrBudgetItemNotFound
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.ID == "" {
		return ErrBudgetItemNotFound
	}

	// Deleting the last approved item does not revoke an existing plan; the
	// workflow gate is evaluated at plan creation only.
	audit := newAuditLog(entities.EntityTypeBudgetItem, item.ID, actor, entities.AuditActionDelete, item)
	return u.repo.Delete(ctx, item.ID, audit)
}
