package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/api/swagger"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/handler"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/middleware"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/repository"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/service"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/cache"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/config"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/database"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/logger"
	corsmiddleware "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/middleware/requestid"
)

// @title HIN Language Center Planner API
// @version 1.0.0
// @description Weekly assignment planner service for the HIN Language Center LMS
// @BasePath /
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Planner.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, planner cache disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Planner.CacheTTL, logr, cacheRepo != nil)

	validate := validator.New()
	assignmentRepo := repository.NewAssignmentRepository(db)

	authSvc := service.NewAuthService(cfg.JWT)
	boardSvc := service.NewBoardService(assignmentRepo, cacheSvc, metricsSvc, validate, logr, cfg.Planner.BoardTTL)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, cacheSvc, validate, logr)

	boardHandler := handler.NewBoardHandler(boardSvc, nil)
	if cfg.Planner.ExportEnabled {
		boardHandler = handler.NewBoardHandler(boardSvc, service.NewExportService(boardSvc))
	}
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Expose)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authSvc))

	boards := api.Group("/planner/boards")
	{
		boards.POST("", boardHandler.Open)
		boards.GET("/:id", boardHandler.Get)
		boards.POST("/:id/drops", boardHandler.Drop)
		boards.POST("/:id/save", boardHandler.Save)
		boards.POST("/:id/cancel", boardHandler.Cancel)
		boards.GET("/:id/export", boardHandler.Export)
		boards.DELETE("/:id", boardHandler.Close)
	}

	assignments := api.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.List)
		assignments.PATCH("/:id/due-date",
			middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher),
			assignmentHandler.UpdateDueDate)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
