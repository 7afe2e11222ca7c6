package request

import (
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"
)

// BudgetItemRequest is the creation payload for a budget item. EstimatedCost
// is a pointer so an explicit zero estimate still satisfies "required".
type BudgetItemRequest struct {
	BudgetItemID          string   `json:"budget_item_id" binding:"required"`
	Category              string   `json:"category" binding:"required"`
	EstimatedCost         *float64 `json:"estimated_cost" binding:"required"`
	ActualCost            float64  `json:"actual_cost"`
	FiscalPeriod          string   `json:"fiscal_period" binding:"required"`
	CostCenter            string   `json:"cost_center"`
	ContingencyPercentage *float64 `json:"contingency_percentage"`
	Justification         string   `json:"justification"`
	FundingSource         string   `json:"funding_source"`
}

func (r BudgetItemRequest) ToInput() usecase.BudgetItemInput {
	in := usecase.BudgetItemInput{
		BudgetItemID:          r.BudgetItemID,
		Category:              r.Category,
		ActualCost:            r.ActualCost,
		FiscalPeriod:          r.FiscalPeriod,
		CostCenter:            r.CostCenter,
		ContingencyPercentage: r.ContingencyPercentage,
		Justification:         r.Justification,
		FundingSource:         r.FundingSource,
	}
	if r.EstimatedCost != nil {
		in.EstimatedCost = *r.EstimatedCost
	}
	return in
}

// BudgetItemPatchRequest is the partial-update payload. Only the enumerated
// fields can change; absent fields keep their stored values.
type BudgetItemPatchRequest struct {
	BudgetItemID          *string  `json:"budget_item_id"`
	Category              *string  `json:"category"`
	EstimatedCost         *float64 `json:"estimated_cost"`
	ActualCost            *float64 `json:"actual_cost"`
	ContingencyPercentage *float64 `json:"contingency_percentage"`
	FiscalPeriod          *string  `json:"fiscal_period"`
	CostCenter            *string  `json:"cost_center"`
	Justification         *string  `json:"justification"`
	FundingSource         *string  `json:"funding_source"`
}

func (r BudgetItemPatchRequest) ToPatch() entities.BudgetItemPatch {
	return entities.BudgetItemPatch{
		BudgetItemID:          r.BudgetItemID,
		Category:              r.Category,
		EstimatedCost:         r.EstimatedCost,
		ActualCost:            r.ActualCost,
		ContingencyPercentage: r.ContingencyPercentage,
		FiscalPeriod:          r.FiscalPeriod,
		CostCenter:            r.CostCenter,
		Justification:         r.Justification,
		FundingSource:         r.FundingSource,
	}
}
