package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/fitpro/internal/config"
	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/mansoorceksport/fitpro/internal/handler"
	"github.com/mansoorceksport/fitpro/internal/middleware"
	"github.com/mansoorceksport/fitpro/internal/repository"
	"github.com/mansoorceksport/fitpro/internal/service"
	"github.com/mansoorceksport/fitpro/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	AuthClient  service.FirebaseAuthClient
	// FileRepo overrides the S3 repository built from Config.S3
	FileRepo domain.FileRepository
	// RandSource overrides the random source of the nutrition planner
	RandSource service.RandSource
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	cfg := deps.Config

	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	progressRepo := repository.NewMongoProgressRepository(deps.MongoDB)
	statsRepo := repository.NewMongoStatsRepository(deps.MongoDB)
	planRepo := repository.NewMongoTrainingPlanRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	fileRepo := deps.FileRepo
	if fileRepo == nil && cfg.S3.Enabled {
		s3Repo, err := repository.NewSeaweedS3Repository(context.Background(), cfg.S3)
		if err != nil {
			logrus.WithError(err).Warn("failed to initialize S3 repository, exports disabled")
		} else {
			fileRepo = s3Repo
		}
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		logrus.WithError(err).Warn("failed to create metrics, counters disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, deps.AuthClient, cfg.JWT.Secret, cfg.JWT.AccessTTL)
	profileService := service.NewProfileService(userRepo, cacheRepo)
	nutritionService := service.NewNutritionService(userRepo, cacheRepo, metrics, cfg.Cache.NutritionPlanTTL, deps.RandSource)
	workoutService := service.NewWorkoutService(userRepo, planRepo, cfg.Planner.DefaultWeeklyAvailability)
	progressService := service.NewProgressService(progressRepo, statsRepo, planRepo, cacheRepo, metrics)
	dashboardService := service.NewDashboardService(userRepo, progressService, workoutService, cacheRepo, cfg.Cache.DashboardTTL)
	exportService := service.NewExportService(userRepo, progressRepo, progressService, fileRepo)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := workoutService.SeedTrainingPlans(seedCtx); err != nil {
		logrus.WithError(err).Error("failed to seed training plans")
	}
	cancel()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	nutritionHandler := handler.NewNutritionHandler(nutritionService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	progressHandler := handler.NewProgressHandler(progressService, exportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	bodyLimit := cfg.Server.BodyLimitKB * 1024
	if bodyLimit <= 0 {
		bodyLimit = 512 * 1024
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FitPro API",
		BodyLimit:    int(bodyLimit),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(telemetry.FiberMiddleware())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "fitpro",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Public endpoints
	v1.Post("/auth/login", authHandler.LoginOrRegister)
	v1.Get("/foods", nutritionHandler.ListFoods)
	v1.Get("/splits/:days", workoutHandler.GetSplit)
	v1.Get("/training-plans", workoutHandler.ListTrainingPlans)
	v1.Get("/training-plans/:id", workoutHandler.GetTrainingPlan)

	// ===========================================
	// USER API - /v1/me/*
	// ===========================================
	me := v1.Group("/me")
	me.Use(middleware.VerifyAccessToken(cfg.JWT.Secret))
	me.Use(middleware.IdempotencyMiddleware(deps.RedisClient, cfg.Cache.IdempotencyTTL))

	me.Get("/profile", profileHandler.GetProfile)
	me.Put("/profile", profileHandler.UpdateProfile)

	meNutrition := me.Group("/nutrition")
	meNutrition.Get("/", nutritionHandler.GetPlan)
	meNutrition.Post("/regenerate", nutritionHandler.Regenerate)
	meNutrition.Put("/preferences", nutritionHandler.SetPreferences)
	meNutrition.Post("/preferences/toggle", nutritionHandler.TogglePreference)

	me.Get("/workout-plan", workoutHandler.MyWorkoutPlan)
	me.Get("/training-plan", workoutHandler.MyTrainingPlan)

	meProgress := me.Group("/progress")
	meProgress.Post("/", progressHandler.LogSession)
	meProgress.Get("/", progressHandler.History)
	meProgress.Post("/export", progressHandler.Export)
	meProgress.Get("/:date", progressHandler.GetByDate)

	me.Get("/stats", progressHandler.Stats)
	me.Get("/achievements", progressHandler.Achievements)
	me.Get("/dashboard", dashboardHandler.GetDashboard)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
