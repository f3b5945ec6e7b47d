package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/naiapps/pg-backend/api/swagger"
	"github.com/naiapps/pg-backend/internal/handler"
	"github.com/naiapps/pg-backend/internal/middleware"
	"github.com/naiapps/pg-backend/internal/repository"
	"github.com/naiapps/pg-backend/internal/service"
	"github.com/naiapps/pg-backend/pkg/config"
	"github.com/naiapps/pg-backend/pkg/database"
	"github.com/naiapps/pg-backend/pkg/logger"
	corsmiddleware "github.com/naiapps/pg-backend/pkg/middleware/cors"
	reqidmiddleware "github.com/naiapps/pg-backend/pkg/middleware/requestid"
)

// @title PG Backend API
// @version 1.0.0
// @description Paying-guest management API: students and fee payments
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	studentRepo := repository.NewStudentRepository(db)
	feeRepo := repository.NewFeeRepository(db)

	studentSvc := service.NewStudentService(studentRepo, nil, logr)
	feeSvc := service.NewFeeService(feeRepo, studentRepo, nil, logr)

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(middleware.Metrics(metricsSvc))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		metricsHandler := handler.NewMetricsHandler(metricsSvc)
		r.GET("/metrics", metricsHandler.Prometheus)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r,
		handler.NewStudentHandler(studentSvc),
		handler.NewFeeHandler(feeSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
