package routes

import (
	"projectdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects    = "/projects"
	PathBudgetItems = "/budget-items"
	PathAuditLogs   = "/audit-logs"
	PathUsers       = "/users"
	PathAuth        = "/auth"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, budgetItemHandler *handlers.BudgetItemHandler, planHandler *handlers.PlanHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id", projectHandler.PatchProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)

		projects.GET("/:id/budget-items", budgetItemHandler.ListBudgetItems)
		projects.POST("/:id/budget-items", budgetItemHandler.CreateBudgetItem)

		// The plan endpoint is gated on an approved budget item.
		projects.GET("/:id/plan", planHandler.GetPlan)
		projects.POST("/:id/plan", planHandler.CreatePlan)
	}
}

func addBudgetItemRoutes(rg *gin.RouterGroup, budgetItemHandler *handlers.BudgetItemHandler) {
	budgetItems := rg.Group(PathBudgetItems)
	{
		budgetItems.GET("/:id", budgetItemHandler.GetBudgetItem)
		budgetItems.PATCH("/:id", budgetItemHandler.PatchBudgetItem)
		budgetItems.DELETE("/:id", budgetItemHandler.DeleteBudgetItem)
		budgetItems.POST("/:id/approve", budgetItemHandler.ApproveBudgetItem)
		budgetItems.POST("/:id/reject", budgetItemHandler.RejectBudgetItem)
	}
}

func addAuditRoutes(rg *gin.RouterGroup, auditHandler *handlers.AuditHandler) {
	rg.GET(PathAuditLogs, auditHandler.ListAuditLogs)
}

func addUserRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST(PathUsers, authHandler.CreateUser)
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
