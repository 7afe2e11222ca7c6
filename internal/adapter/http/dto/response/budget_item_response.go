package response

import (
	"time"

	"projectdesk/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID                    string    `json:"id"`
	ProjectID             string    `json:"project_id"`
	BudgetItemID          string    `json:"budget_item_id"`
	Category              string    `json:"category"`
	EstimatedCost         float64   `json:"estimated_cost"`
	ActualCost            float64   `json:"actual_cost"`
	Variance              float64   `json:"variance"`
	ForecastRemaining     float64   `json:"forecast_remaining"`
	ContingencyPercentage float64   `json:"contingency_percentage"`
	FiscalPeriod          string    `json:"fiscal_period"`
	CostCenter            string    `json:"cost_center,omitempty"`
	Justification         string    `json:"justification,omitempty"`
	FundingSource         string    `json:"funding_source,omitempty"`
	ApprovalStatus        string    `json:"approval_status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromBudgetItem(b entities.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		ID:                    b.ID,
		ProjectID:             b.ProjectID,
		BudgetItemID:          b.BudgetItemID,
		Category:              b.Category,
		EstimatedCost:         b.EstimatedCost,
		ActualCost:            b.ActualCost,
		Variance:              b.Variance,
		ForecastRemaining:     b.ForecastRemaining,
		ContingencyPercentage: b.ContingencyPercentage,
		FiscalPeriod:          b.FiscalPeriod,
		CostCenter:            b.CostCenter,
		Justification:         b.Justification,
		FundingSource:         b.FundingSource,
		ApprovalStatus:        string(b.ApprovalStatus),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func FromBudgetItems(items []entities.BudgetItem) []BudgetItemResponse {
	out := make([]BudgetItemResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBudgetItem(b))
	}
	return out
}
