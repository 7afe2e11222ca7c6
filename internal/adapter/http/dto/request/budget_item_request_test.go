package request

import (
	"testing"

	"projectdesk/internal/domain/entities"
)

func TestBudgetItemRequestToInput(t *testing.T) {
	est := 1000.0
	cont := 25.0
	r := BudgetItemRequest{
		BudgetItemID:          "BI-001",
		Category:              "labor",
		EstimatedCost:         &est,
		ActualCost:            200,
		FiscalPeriod:          "2026-Q1",
		ContingencyPercentage: &cont,
	}

	in := r.ToInput()
	if in.EstimatedCost != 1000 || in.ActualCost != 200 {
		t.Fatalf("unexpected costs: %+v", in)
	}
	if in.ContingencyPercentage == nil || *in.ContingencyPercentage != 25 {
		t.Fatalf("unexpected contingency: %+v", in.ContingencyPercentage)
	}
}

func TestBudgetItemRequestToInputOmittedContingency(t *testing.T) {
	est := 0.0
	r := BudgetItemRequest{BudgetItemID: "BI-002", Category: "travel", EstimatedCost: &est, FiscalPeriod: "2026-Q2"}

	in := r.ToInput()
	if in.ContingencyPercentage != nil {
		t.Fatalf("expected nil contingency, got %v", *in.ContingencyPercentage)
	}
	if in.EstimatedCost != 0 {
		t.Fatalf("explicit zero estimate lost: %+v", in)
	}
}

func TestBudgetItemPatchRequestToPatch(t *testing.T) {
	actual := 400.0
	r := BudgetItemPatchRequest{ActualCost: &actual}

	patch := r.ToPatch()
	if patch.Empty() {
		t.Fatalf("expected non-empty patch")
	}
	if patch.ActualCost == nil || *patch.ActualCost != 400 || patch.EstimatedCost != nil {
		t.Fatalf("unexpected patch: %+v", patch)
	}

	if !(BudgetItemPatchRequest{}).ToPatch().Empty() {
		t.Fatalf("expected empty patch")
	}

	var _ entities.BudgetItemPatch = patch
}
