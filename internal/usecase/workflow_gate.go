package usecase

import (
	"context"

	"projectdesk/internal/usecase/interfaces"
)

// WorkflowGate decides whether a project may progress to plan creation.
//
// The answer is computed fresh on every check from the current approval
// state; nothing is cached, so the gate can never serve a stale flag. The
// gate is one-shot by design: it is consulted at plan creation only, and a
// later deletion of the approving item does not revoke an existing plan.
type WorkflowGate struct {
	budgetItems interfaces.IBudgetItemRepository
}

func NewWorkflowGate(budgetItems interfaces.IBudgetItemRepository) *WorkflowGate {
	return &WorkflowGate{budgetItems: budgetItems}
}

// CanCreatePlan is true iff at least one budget item of the project is
// approved.
func (g *WorkflowGate) CanCreatePlan(ctx context.Context, projectID string) (bool, error) {
	n, err := g.budgetItems.CountApprovedByProjectID(ctx, projectID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
