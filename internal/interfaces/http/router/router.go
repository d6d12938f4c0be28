package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/infrastructure/auth"
	"github.com/pitstop/backend/internal/infrastructure/logger"
	"github.com/pitstop/backend/internal/interfaces/http/handler"
	"github.com/pitstop/backend/internal/interfaces/http/middleware"
)

// Config carries the handlers and auth services the router wires up.
type Config struct {
	ReportHandler *handler.ReportHandler
	SystemHandler *handler.SystemHandler
	JWTService    *auth.JWTService
	Blacklist     auth.TokenBlacklist
	Logger        *zap.Logger
}

// Setup builds the gin engine with all middleware and routes. Health is
// open; every report route sits behind bearer auth plus its role gate.
func Setup(cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(cfg.Logger),
		logger.Recovery(cfg.Logger),
	)

	engine.GET("/health", cfg.SystemHandler.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(middleware.JWTConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		Logger:     cfg.Logger,
	}))

	reports := api.Group("/reports")
	reports.GET("/available", cfg.ReportHandler.Available)

	gated := func(path string, t report.Type, h gin.HandlerFunc) {
		reports.GET(path, middleware.RequireRoles(handler.ReportRoles[t]...), h)
	}
	gated("/bookings", report.TypeBookings, cfg.ReportHandler.Bookings)
	gated("/payments", report.TypePayments, cfg.ReportHandler.Payments)
	gated("/jobs", report.TypeJobs, cfg.ReportHandler.Jobs)
	gated("/leaves", report.TypeLeaves, cfg.ReportHandler.Leaves)
	gated("/inventory", report.TypeInventory, cfg.ReportHandler.Inventory)
	gated("/users", report.TypeUsers, cfg.ReportHandler.Users)
	gated("/dashboard", report.TypeDashboard, cfg.ReportHandler.Dashboard)

	return engine
}
