package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/shm-health-api/api/swagger"
	"github.com/noah-isme/shm-health-api/internal/handler"
	"github.com/noah-isme/shm-health-api/internal/middleware"
	"github.com/noah-isme/shm-health-api/internal/repository"
	"github.com/noah-isme/shm-health-api/internal/service"
	"github.com/noah-isme/shm-health-api/pkg/cache"
	"github.com/noah-isme/shm-health-api/pkg/config"
	"github.com/noah-isme/shm-health-api/pkg/database"
	"github.com/noah-isme/shm-health-api/pkg/jobs"
	"github.com/noah-isme/shm-health-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/shm-health-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/shm-health-api/pkg/middleware/requestid"
	"github.com/noah-isme/shm-health-api/pkg/storage"
)

// @title School Health Management API
// @version 1.0.0
// @description Vaccination campaigns, disease records and student health data
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		if cfg.Eligibility.CacheEnabled {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	diseaseRepo := repository.NewDiseaseRepository(db)
	diseaseRecordRepo := repository.NewDiseaseRecordRepository(db)
	vaccineRepo := repository.NewVaccineRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	vaccinationRepo := repository.NewVaccinationRepository(db)

	vaccineSvc := service.NewVaccineService(vaccineRepo, diseaseRepo, nil, logr)
	campaignSvc := service.NewCampaignService(campaignRepo, vaccineRepo, diseaseRepo, studentRepo,
		redisClient, cfg.Eligibility, metricsSvc, nil, logr)
	registrationSvc := service.NewRegistrationService(registrationRepo, campaignRepo, campaignSvc,
		vaccinationRepo, nil, logr)
	vaccinationSvc := service.NewVaccinationService(vaccinationRepo, studentRepo, campaignSvc, nil, logr)
	diseaseSvc := service.NewDiseaseService(diseaseRepo, diseaseRecordRepo, studentRepo, nil, logr)

	handlers := handler.Handlers{
		Vaccines:      handler.NewVaccineHandler(vaccineSvc),
		Campaigns:     handler.NewCampaignHandler(campaignSvc),
		Registrations: handler.NewRegistrationHandler(registrationSvc),
		Vaccinations:  handler.NewVaccinationHandler(vaccinationSvc),
		Diseases:      handler.NewDiseaseHandler(diseaseSvc),
	}

	if cfg.Exports.Enabled {
		store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportSvc := service.NewExportService(vaccinationRepo, studentRepo, store, signer, metricsSvc,
			jobs.QueueConfig{
				Workers:    cfg.Exports.WorkerConcurrency,
				MaxRetries: cfg.Exports.WorkerRetries,
			}, nil, logr)
		exportSvc.Start(context.Background())
		defer exportSvc.Stop()
		handlers.Exports = handler.NewExportHandler(exportSvc)
	}

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
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsSvc.Handler())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
