package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/config"
	"github.com/BruksfildServices01/dance-school/internal/handlers"
	infraRepo "github.com/BruksfildServices01/dance-school/internal/infra/repository"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
	"github.com/BruksfildServices01/dance-school/internal/storage"
	ucAccount "github.com/BruksfildServices01/dance-school/internal/usecase/account"
	ucEnrollment "github.com/BruksfildServices01/dance-school/internal/usecase/enrollment"
	ucNews "github.com/BruksfildServices01/dance-school/internal/usecase/news"
	"github.com/BruksfildServices01/dance-school/internal/validators"
)

const loginRateWindow = time.Minute

// Dependencies are the process-wide singletons the routes share.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Logger logrus.FieldLogger
	Tokens *auth.TokenIssuer
	Hasher *auth.Hasher
	Audit  *audit.Dispatcher

	// Optional. Nil disables login rate limiting.
	Redis *redis.Client
	// Optional. Nil makes uploads answer 503.
	Uploads storage.Uploader
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	log := deps.Logger

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewSchoolGormRepository(deps.DB)

	var domainCheck ucAccount.DomainCheck
	if cfg.EmailDomainCheck {
		domainCheck = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUserUC := ucAccount.NewRegisterUser(repo, deps.Hasher, deps.Audit, domainCheck)
	loginUC := ucAccount.NewLogin(repo, deps.Hasher, deps.Tokens, deps.Audit)

	createStudentUC := ucEnrollment.NewCreateStudent(repo, deps.Audit)
	registerStudentUC := ucEnrollment.NewRegisterStudent(repo, deps.Audit)

	createNewsUC := ucNews.NewCreateNews(repo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUserUC, loginUC, log)
	meHandler := handlers.NewMeHandler()
	catalogHandler := handlers.NewCatalogHandler(repo, log)
	studentHandler := handlers.NewStudentHandler(createStudentUC, registerStudentUC, log)
	newsHandler := handlers.NewNewsHandler(repo, createNewsUC, log)
	contactHandler := handlers.NewContactHandler(deps.Audit, log)
	adminHandler := handlers.NewAdminHandler(repo, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, log)
	uploadHandler := handlers.NewUploadHandler(deps.Uploads, deps.Audit, log)

	authenticated := middleware.AuthMiddleware(deps.Tokens, repo)

	// ======================================================
	// AUTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST(
		"/token",
		middleware.RateLimit(deps.Redis, cfg.LoginRateLimit, loginRateWindow, middleware.KeyByIPAndPath(), log),
		authHandler.Token,
	)
	r.POST("/register", authHandler.Register)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/classes", catalogHandler.ListClasses)
		api.GET("/classes/:id", catalogHandler.GetClass)
		api.GET("/classes/:id/schedule", catalogHandler.ClassSchedule)

		api.GET("/teachers", catalogHandler.ListTeachers)
		api.GET("/teachers/:id", catalogHandler.GetTeacher)

		api.GET("/schedule", catalogHandler.ListSchedule)

		api.POST("/students/", studentHandler.Create)
		api.POST("/students", studentHandler.Create)
		api.POST("/registrations", studentHandler.Register)

		api.GET("/news", newsHandler.List)
		api.GET("/news/:id", newsHandler.Get)

		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		api.GET("/me", authenticated, meHandler.GetMe)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/news", authenticated, middleware.RequireAdmin(), newsHandler.Create)

		admin := api.Group("/admin", authenticated, middleware.RequireAdmin())
		{
			admin.GET("", adminHandler.Overview)
			admin.GET("/students/:id/registrations", adminHandler.StudentRegistrations)
			admin.GET("/audit-logs", auditLogsHandler.List)
			admin.POST("/uploads", uploadHandler.UploadImage)
		}
	}
}
