package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	reportapp "github.com/pitstop/backend/internal/application/report"
	"github.com/pitstop/backend/internal/infrastructure/auth"
	"github.com/pitstop/backend/internal/infrastructure/config"
	"github.com/pitstop/backend/internal/infrastructure/logger"
	"github.com/pitstop/backend/internal/infrastructure/persistence"
	"github.com/pitstop/backend/internal/infrastructure/reporting"
	"github.com/pitstop/backend/internal/interfaces/http/handler"
	"github.com/pitstop/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Pitstop Reports Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Auth: JWT validation plus optional Redis-backed revocation
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis token blacklist enabled")
	}

	// Report pipeline: source -> engine -> emitter (-> archive)
	source := persistence.NewGormReportSource(db.DB)
	store := reporting.NewTemplateStore(reporting.TemplateStoreConfig{
		ExternalDir: cfg.Report.TemplateDir,
		LogoPath:    cfg.Report.LogoPath,
	})
	engine, err := reporting.NewEngine(store, log)
	if err != nil {
		log.Fatal("Failed to compile report templates", zap.Error(err))
	}
	emitter := reporting.NewChromedpEmitter(reporting.ChromedpConfig{
		Timeout:   cfg.Report.RenderTimeout,
		RemoteURL: cfg.Report.ChromeRemoteURL,
		NoSandbox: cfg.Report.ChromeNoSandbox,
		Logger:    log,
	})
	archive, err := reporting.NewArchive(cfg.Archive, log)
	if err != nil {
		log.Fatal("Failed to initialize report archive", zap.Error(err))
	}

	service := reportapp.NewService(source, log)
	orchestrator := reportapp.NewOrchestrator(service, engine, emitter, archive, log)

	// HTTP
	ginEngine := router.Setup(router.Config{
		ReportHandler: handler.NewReportHandler(orchestrator),
		SystemHandler: handler.NewSystemHandler(db),
		JWTService:    jwtService,
		Blacklist:     blacklist,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
