package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/metrics"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	workbook *repositories.WorkbookStore,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: wiring routes")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- storage ---
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	store := repositories.NewCachedSheetStore(workbook, cacheRepo, cfg.Cache.ReadTTL, logger)

	// --- repositories ---
	companyRepo := repositories.NewCompanyRepository(store, cfg.Workbook.CompaniesSheet, logger)
	equipmentRepo := repositories.NewEquipmentRepository(store, cfg.Workbook.EquipmentSheet, logger)
	usageRepo := repositories.NewUsageRepository(store, cfg.Workbook.UsageSheet, logger)
	taskRepo := repositories.NewTaskRepository(store, cfg.Workbook.TasksSheet, logger)
	chatRepo := repositories.NewChatRepository(store, cfg.Workbook.ChatSheet, logger)
	userRepo := repositories.NewUserRepository(store, cfg.Workbook.UsersSheet, logger)

	// --- services ---
	dashboardService := services.NewDashboardService(equipmentRepo, usageRepo, store, logger)
	companyService := services.NewCompanyService(companyRepo, dashboardService, logger)
	usageService := services.NewUsageService(usageRepo, equipmentRepo, cfg.OperatingWindow, logger)
	taskService := services.NewTaskService(taskRepo, logger)
	chatService := services.NewChatService(chatRepo, cacheRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	// --- controllers ---
	authController := controllers.NewAuthController(authService, logger)
	companyController := controllers.NewCompanyController(companyService, logger)
	dashboardController := controllers.NewDashboardController(companyService, dashboardService, logger)
	usageController := controllers.NewUsageController(usageService, logger)
	taskController := controllers.NewTaskController(taskService, logger)
	chatController := controllers.NewChatController(chatService, logger)

	// --- routers ---
	e.GET("/metrics", metrics.Handler())
	runHealthRouter(e, store)

	runAuthRouter(api, authController)

	secureGroup := api.Group("", authMW.Auth)
	runCompanyRouter(secureGroup, companyController)
	runDashboardRouter(secureGroup, dashboardController)
	runUsageRouter(secureGroup, usageController)
	runTaskRouter(secureGroup, taskController)
	runChatRouter(secureGroup, chatController)

	logger.Info("InitRouter: routes ready")
}
