package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/lms-go-api/api/swagger"
	"github.com/noah-isme/lms-go-api/internal/handler"
	"github.com/noah-isme/lms-go-api/internal/middleware"
	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/internal/repository"
	"github.com/noah-isme/lms-go-api/internal/service"
	"github.com/noah-isme/lms-go-api/pkg/cache"
	"github.com/noah-isme/lms-go-api/pkg/config"
	"github.com/noah-isme/lms-go-api/pkg/database"
	"github.com/noah-isme/lms-go-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/lms-go-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/lms-go-api/pkg/middleware/requestid"
	"github.com/noah-isme/lms-go-api/pkg/storage"
)

// @title LMS Go API
// @version 0.1.0
// @description Learning management backend: dashboard, courses, grades and assignments
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	cacheSvc := (*service.CacheService)(nil)
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	store := repository.NewQueryStore(db, metricsSvc)
	assignmentRepo := repository.NewAssignmentRepository(store)
	gradeRepo := repository.NewGradeRepository(store)
	quizRepo := repository.NewQuizRepository(store)
	studentRepo := repository.NewStudentRepository(store)
	scheduleRepo := repository.NewScheduleRepository(store)
	dashboardRepo := repository.NewDashboardRepository(store)
	submissionRepo := repository.NewSubmissionRepository(store)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, validator.New(), logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	assignmentSvc := service.NewAssignmentService(assignmentRepo, logr)
	gradeSvc := service.NewGradeService(gradeRepo, logr)
	studentSvc := service.NewStudentService(studentRepo, quizRepo, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cacheSvc, logr, service.DashboardServiceConfig{
		CacheTTL: cfg.Dashboard.CacheTTL,
	})

	uploadStore, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}
	submissionSvc := service.NewSubmissionService(submissionRepo, assignmentSvc, uploadStore, logr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportSvc = service.NewExportService(gradeSvc, exportStore, signer, service.ExportConfig{
			APIPrefix:  cfg.APIPrefix,
			ResultTTL:  cfg.Exports.SignedURLTTL,
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
		}, logr)
		exportSvc.Start(ctx)
		defer exportSvc.Stop()
	}

	authHandler := handler.NewAuthHandler(authSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc, submissionSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, dashboardSvc, gradeSvc, assignmentSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())
	r.MaxMultipartMemory = cfg.Uploads.MaxFileSize

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
	auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	students := api.Group("/students", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleStudent, models.RoleAdmin))
	students.GET("/dashboard/statistics", studentHandler.DashboardStatistics)
	students.GET("/dashboard/upcoming-tasks", studentHandler.UpcomingTasks)
	students.GET("/dashboard/leaderboard", studentHandler.Leaderboard)
	students.GET("/dashboard/activity-chart", studentHandler.ActivityChart)
	students.GET("/dashboard/grade-components", studentHandler.GradeComponents)
	students.GET("/courses", studentHandler.Courses)
	students.GET("/courses/with-sections", studentHandler.CoursesWithSections)
	students.GET("/course/:course_id", studentHandler.EnrolledByCourse)
	students.GET("/course/:course_id/detail", studentHandler.CourseDetail)
	students.GET("/course/:course_id/sections", studentHandler.CourseSections)
	students.GET("/course/:course_id/quizzes", studentHandler.CourseQuizzes)
	students.GET("/course/:course_id/grades", studentHandler.CourseGrades)
	students.GET("/course/:course_id/students", studentHandler.CourseClassmates)
	students.GET("/section/:section_id/:course_id/detail", studentHandler.SectionDetail)
	students.GET("/section/:section_id/:course_id/:semester/quizzes", studentHandler.SectionQuizzes)
	students.GET("/section/:section_id/:course_id/:semester/assignments", studentHandler.SectionAssignments)
	students.GET("/section/:section_id/:course_id/:semester/grades", studentHandler.SectionGrades)
	students.GET("/section/:section_id/:course_id/:semester/students", studentHandler.SectionClassmates)

	grades := api.Group("/grades", middleware.JWT(authSvc))
	grades.GET("/user/:user_id", middleware.RBAC("admin", "tutor", "SELF"), gradeHandler.UserGrades)

	schedule := api.Group("/schedule", middleware.JWT(authSvc))
	schedule.GET("/user/:user_id", middleware.RBAC("admin", "tutor", "SELF"), scheduleHandler.UserSchedule)

	assignments := api.Group("/assignments", middleware.JWT(authSvc))
	assignments.GET("/:id", assignmentHandler.Get)
	assignments.POST("/:id/submit", assignmentHandler.Submit)

	if exportSvc != nil {
		exportHandler := handler.NewExportHandler(exportSvc)
		exports := api.Group("/exports")
		exports.POST("/transcript", middleware.JWT(authSvc), exportHandler.Enqueue)
		exports.GET("/download", exportHandler.Download)
		exports.GET("/:job_id", middleware.JWT(authSvc), exportHandler.Status)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
}
