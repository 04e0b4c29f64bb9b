package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentbridge/job-portal/internal/api/handler"
	"github.com/talentbridge/job-portal/internal/api/middleware"
	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/service"
	"github.com/talentbridge/job-portal/internal/infrastructure/config"
	mongodb "github.com/talentbridge/job-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/talentbridge/job-portal/internal/infrastructure/db/redis"
	"github.com/talentbridge/job-portal/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier is constructed and started by main so its workers share the
// process lifecycle.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	uploader *storage.Uploader,
	notifier service.StatusNotifier,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	applyGuard := redisdb.NewApplyGuard(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	companyService := service.NewCompanyService(companyRepo, log)
	jobService := service.NewJobService(jobRepo, companyRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, userRepo, companyRepo, applyGuard, notifier, log)

	authHandler := handler.NewAuthHandler(authService, authService.TokenTTL())
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	uploadHandler := handler.NewUploadHandler(uploader)

	authRequired := middleware.Auth(cfg.JWTSecret)
	recruiterOnly := middleware.RequireRole(domain.RoleRecruiter)
	studentOnly := middleware.RequireRole(domain.RoleStudent)

	v1 := e.Group("/api/v1")

	// --- User routes ---
	user := v1.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/logout", authHandler.Logout)
	user.POST("/profile/update", authHandler.UpdateProfile, authRequired)

	// --- Company routes (recruiter-owned) ---
	company := v1.Group("/company", authRequired)
	company.POST("/register", companyHandler.Register, recruiterOnly)
	company.GET("/get", companyHandler.List, recruiterOnly)
	company.GET("/get/:id", companyHandler.Get)
	company.PUT("/update/:id", companyHandler.Update, recruiterOnly)

	// --- Job routes ---
	job := v1.Group("/job", authRequired)
	job.POST("/post", jobHandler.Post, recruiterOnly)
	job.GET("/get", jobHandler.Search)
	job.GET("/getadminjobs", jobHandler.ListOwn, recruiterOnly)
	job.GET("/get/:id", jobHandler.Get)

	// --- Application routes ---
	application := v1.Group("/application", authRequired)
	application.GET("/apply/:id", appHandler.Apply, studentOnly)
	application.GET("/get", appHandler.ListOwn, studentOnly)
	application.GET("/:id/applicants", appHandler.ListApplicants, recruiterOnly)
	application.POST("/status/:id/update", appHandler.UpdateStatus, recruiterOnly)

	// --- Uploads ---
	v1.POST("/upload/presign", uploadHandler.Presign, authRequired)
	v1.GET("/upload/download", uploadHandler.Download, authRequired)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
