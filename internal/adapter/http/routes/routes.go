package routes

import (
	"log"
	_ "projectdesk/docs" // This will be auto-generated
	"projectdesk/internal/adapter/http/handlers"
	"projectdesk/internal/adapter/http/middleware"
	repository2 "projectdesk/internal/adapter/persistence/repository"
	"projectdesk/internal/domain/permissions"
	"projectdesk/internal/infrastructure/database"
	"projectdesk/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.Connect()

	projectRepo := repository2.NewProjectGormRepository(db)
	budgetItemRepo := repository2.NewBudgetItemGormRepository(db)
	planRepo := repository2.NewProjectPlanGormRepository(db)
	auditRepo := repository2.NewAuditLogGormRepository(db)
	userRepo := repository2.NewUserGormRepository(db)
	tokenRepo := repository2.NewTokenGormRepository(db)

	perms := permissions.NewEngine(permissions.DefaultCapabilityTable())

	projectUseCase := usecase.NewProjectUseCase(projectRepo, perms)
	budgetUseCase := usecase.NewBudgetUseCase(budgetItemRepo, projectRepo, perms)
	gate := usecase.NewWorkflowGate(budgetItemRepo)
	planUseCase := usecase.NewPlanUseCase(planRepo, projectRepo, gate, perms)
	auditUseCase := usecase.NewAuditUseCase(auditRepo, perms)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenRepo, perms)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	budgetItemHandler := handlers.NewBudgetItemHandler(budgetUseCase)
	planHandler := handlers.NewPlanHandler(planUseCase)
	auditHandler := handlers.NewAuditHandler(auditUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Everything below requires a bearer token.
	protected := v1.Group("", middleware.RequireUser(tokenRepo))
	addProjectRoutes(protected, projectHandler, budgetItemHandler, planHandler)
	addBudgetItemRoutes(protected, budgetItemHandler)
	addAuditRoutes(protected, auditHandler)
	addUserRoutes(protected, authHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
