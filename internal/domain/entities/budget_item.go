package entities

import "time"

// ApprovalStatus is the budget item approval state.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// DefaultContingencyPercentage is applied when a caller omits the field.
const DefaultContingencyPercentage = 10.0

// BudgetItem is a single line of a project budget.
//
// Variance and ForecastRemaining are derived: they must always agree with the
// stored EstimatedCost/ActualCost/ContingencyPercentage, so every write that
// touches an input recomputes them against the merged row before persisting.
type BudgetItem struct {
	ID                    string         `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID             string         `gorm:"type:uuid;not null;index" json:"project_id"`
	BudgetItemID          string         `gorm:"size:64;not null" json:"budget_item_id"`
	Category              string         `gorm:"size:100;not null" json:"category"`
	EstimatedCost         float64        `gorm:"not null" json:"estimated_cost"`
	ActualCost            float64        `json:"actual_cost"`
	Variance              float64        `json:"variance"`
	ForecastRemaining     float64        `json:"forecast_remaining"`
	ContingencyPercentage float64        `json:"contingency_percentage"`
	FiscalPeriod          string         `gorm:"size:32;not null" json:"fiscal_period"`
	CostCenter            string         `gorm:"size:64" json:"cost_center,omitempty"`
	Justification         string        `gorm:"type:text" json:"justification,omitempty"`
	FundingSource         string         `gorm:"size:100" json:"funding_source,omitempty"`
	ApprovalStatus        ApprovalStatus `gorm:"type:varchar(20);not null" json:"approval_status"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// ComputeDerived returns the derived pair for the given inputs.
//
//	variance           = actual - estimated
//	forecast_remaining = estimated * (1 + contingency/100) - actual
func ComputeDerived(estimatedCost, actualCost, contingencyPercentage float64) (variance, forecastRemaining float64) {
	variance = actualCost - estimatedCost
	forecastRemaining = estimatedCost*(1+contingencyPercentage/100) - actualCost
	return variance, forecastRemaining
}

// RecomputeDerived refreshes Variance and ForecastRemaining from the item's
// current cost fields.
func (b *BudgetItem) RecomputeDerived() {
	b.Variance, b.ForecastRemaining = ComputeDerived(b.EstimatedCost, b.ActualCost, b.ContingencyPercentage)
}

// BudgetItemPatch enumerates the updatable budget item fields. Arbitrary JSON
// never reaches the persistence layer; only these fields can change.
type BudgetItemPatch struct {
	BudgetItemID          *string  `json:"budget_item_id,omitempty"`
	Category              *string  `json:"category,omitempty"`
	EstimatedCost         *float64 `json:"estimated_cost,omitempty"`
	ActualCost            *float64 `json:"actual_cost,omitempty"`
	ContingencyPercentage *float64 `json:"contingency_percentage,omitempty"`
	FiscalPeriod          *string  `json:"fiscal_period,omitempty"`
	CostCenter            *string  `json:"cost_center,omitempty"`
	Justification         *string  `json:"justification,omitempty"`
	FundingSource         *string  `json:"funding_source,omitempty"`
}

// Empty reports whether the patch carries no field at all.
func (patch BudgetItemPatch) Empty() bool {
	return patch.BudgetItemID == nil && patch.Category == nil && patch.EstimatedCost == nil &&
		patch.ActualCost == nil && patch.ContingencyPercentage == nil && patch.FiscalPeriod == nil &&
		patch.CostCenter == nil && patch.Justification == nil && patch.FundingSource == nil
}

// Apply merges the patch into b. Fields absent from the patch keep their
// stored value, so recomputation always sees the merged row. The derived pair
// is refreshed whenever a cost input changed.
func (patch BudgetItemPatch) Apply(b *BudgetItem) {
	touched := false
	if patch.BudgetItemID != nil {
		b.BudgetItemID = *patch.BudgetItemID
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.EstimatedCost != nil {
		b.EstimatedCost = *patch.EstimatedCost
		touched = true
	}
	if patch.ActualCost != nil {
		b.ActualCost = *patch.ActualCost
		touched = true
	}
	if patch.ContingencyPercentage != nil {
		b.ContingencyPercentage = *patch.ContingencyPercentage
		touched = true
	}
	if patch.FiscalPeriod != nil {
		b.FiscalPeriod = *patch.FiscalPeriod
	}
	if patch.CostCenter != nil {
		b.CostCenter = *patch.CostCenter
	}
	if patch.Justification != nil {
		b.Justification = *patch.Justification
	}
	if patch.FundingSource != nil {
		b.FundingSource = *patch.FundingSource
	}
	if touched {
		b.RecomputeDerived()
	}
}
