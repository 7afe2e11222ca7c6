package usecase

import (
	"context"
	"errors"
	"testing"

	"projectdesk/internal/domain/entities"
	mock_interfaces "projectdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkflowGate_CanCreatePlan(t *testing.T) {
	t.Run("closed with zero approved items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gate := NewWorkflowGate(items)

		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(0), nil)

		open, err := gate.CanCreatePlan(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if open {
			t.Fatalf("expected closed gate")
		}
	})

	t.Run("open with at least one approved item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gate := NewWorkflowGate(items)

		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(1), nil)

		open, err := gate.CanCreatePlan(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !open {
			t.Fatalf("expected open gate")
		}
	})

	t.Run("count error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gate := NewWorkflowGate(items)

		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(0), errors.New("db"))

		if _, err := gate.CanCreatePlan(context.Background(), "proj-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPlanUseCase_Create(t *testing.T) {
	newFixture := func(ctrl *gomock.Controller) (*PlanUseCase, *mock_interfaces.MockIProjectPlanRepository, *mock_interfaces.MockIProjectRepository, *mock_interfaces.MockIBudgetItemRepository) {
		plans := mock_interfaces.NewMockIProjectPlanRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		uc := NewPlanUseCase(plans, projects, NewWorkflowGate(items), testEngine())
		return uc, plans, projects, items
	}

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, projects, _ := newFixture(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "proj-9").Return(entities.Project{}, nil)

		_, err := uc.Create(context.Background(), manager(), "proj-9", PlanInput{})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("unauthorized non-owner stakeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, projects, _ := newFixture(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: "pm-1"}, nil)

		_, err := uc.Create(context.Background(), stakeholder(), "proj-1", PlanInput{})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("closed gate fails without any persistence side effect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, projects, items := newFixture(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: "pm-1"}, nil)
		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(0), nil)
		// No plan read, no plan insert, no audit: the plans mock gets no calls.

		_, err := uc.Create(context.Background(), manager(), "proj-1", PlanInput{Methodology: "agile"})
		if !errors.Is(err, ErrGateNotSatisfied) {
			t.Fatalf("expected ErrGateNotSatisfied, got %v", err)
		}
	})

	t.Run("second plan rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, plans, projects, items := newFixture(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: "pm-1"}, nil)
		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(2), nil)
		plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{ID: "plan-1"}, nil)

		_, err := uc.Create(context.Background(), manager(), "proj-1", PlanInput{})
		if !errors.Is(err, ErrPlanAlreadyExists) {
			t.Fatalf("expected ErrPlanAlreadyExists, got %v", err)
		}
	})

	t.Run("success after approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, plans, projects, items := newFixture(ctrl)

		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: "pm-1"}, nil)
		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(1), nil)
		plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{}, nil)
		plans.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProjectPlan, audit entities.AuditLog) (entities.ProjectPlan, error) {
				if p.ID == "" || p.ProjectID != "proj-1" || p.Methodology != "agile" || p.CreatedBy != "pm-1" {
					t.Fatalf("unexpected plan: %+v", p)
				}
				if audit.EntityType != entities.EntityTypeProjectPlan || audit.Action != entities.AuditActionCreate || audit.EntityID != p.ID {
					t.Fatalf("unexpected audit entry: %+v", audit)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), manager(), "proj-1", PlanInput{Methodology: " agile ", Baseline: "v1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("team member owner passes the edit override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, plans, projects, items := newFixture(ctrl)

		owner := teamMember()
		projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: owner.ID}, nil)
		items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(1), nil)
		plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{}, nil)
		plans.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProjectPlan, _ entities.AuditLog) (entities.ProjectPlan, error) {
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), owner, "proj-1", PlanInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlanUseCase_Get(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		uc := NewPlanUseCase(nil, nil, nil, testEngine())
		if _, err := uc.Get(context.Background(), nil, "proj-1"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIProjectPlanRepository(ctrl)
		uc := NewPlanUseCase(plans, nil, nil, testEngine())

		plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{}, nil)

		if _, err := uc.Get(context.Background(), stakeholder(), "proj-1"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		plans := mock_interfaces.NewMockIProjectPlanRepository(ctrl)
		uc := NewPlanUseCase(plans, nil, nil, testEngine())

		plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{ID: "plan-1", ProjectID: "proj-1"}, nil)

		res, err := uc.Get(context.Background(), stakeholder(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "plan-1" {
			t.Fatalf("unexpected plan: %+v", res)
		}
	})
}

// Mirrors the approval-to-plan walkthrough: a fresh project cannot take a
// plan, approving one budget item opens the gate, a budget-less project
// still fails with the gate hint.
func TestApprovalOpensGateEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	plans := mock_interfaces.NewMockIProjectPlanRepository(ctrl)

	budget := NewBudgetUseCase(items, projects, testEngine())
	planUC := NewPlanUseCase(plans, projects, NewWorkflowGate(items), testEngine())

	pm := manager()

	// Create the item: derived fields per the 1000/0/10 example.
	projects.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", OwnerID: pm.ID}, nil).AnyTimes()
	var storedItem entities.BudgetItem
	items.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.BudgetItem, _ entities.AuditLog) (entities.BudgetItem, error) {
			storedItem = b
			return b, nil
		},
	)
	created, err := budget.Create(context.Background(), pm, "proj-1", BudgetItemInput{
		BudgetItemID: "BI-001", Category: "labor", EstimatedCost: 1000, ActualCost: 0, FiscalPeriod: "2026-Q1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Variance != -1000 || created.ForecastRemaining != 1100 {
		t.Fatalf("unexpected derived pair: %+v", created)
	}

	// Approve it.
	items.EXPECT().GetByID(gomock.Any(), created.ID).Return(storedItem, nil)
	items.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.BudgetItem, _ entities.AuditLog) (entities.BudgetItem, error) {
			storedItem = b
			return b, nil
		},
	)
	approved, err := budget.Approve(context.Background(), pm, created.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.ApprovalStatus != entities.ApprovalStatusApproved {
		t.Fatalf("expected approved, got %s", approved.ApprovalStatus)
	}

	// The gate is now open for proj-1.
	items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-1").Return(int64(1), nil)
	plans.EXPECT().GetByProjectID(gomock.Any(), "proj-1").Return(entities.ProjectPlan{}, nil)
	plans.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.ProjectPlan, _ entities.AuditLog) (entities.ProjectPlan, error) {
			return p, nil
		},
	)
	if _, err := planUC.Create(context.Background(), pm, "proj-1", PlanInput{Methodology: "waterfall"}); err != nil {
		t.Fatalf("plan create: %v", err)
	}

	// A different, budget-less project still hits the gate.
	projects.EXPECT().GetByID(gomock.Any(), "proj-2").Return(entities.Project{ID: "proj-2", OwnerID: pm.ID}, nil)
	items.EXPECT().CountApprovedByProjectID(gomock.Any(), "proj-2").Return(int64(0), nil)
	if _, err := planUC.Create(context.Background(), pm, "proj-2", PlanInput{}); !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("expected ErrGateNotSatisfied, got %v", err)
	}
}
