package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reportapp "github.com/pitstop/backend/internal/application/report"
	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/domain/workshop"
	"github.com/pitstop/backend/internal/infrastructure/auth"
	"github.com/pitstop/backend/internal/infrastructure/config"
	"github.com/pitstop/backend/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopGenerator struct{}

func (noopGenerator) Generate(_ context.Context, _ reportapp.GenerateInput) (*reportapp.Result, error) {
	return &reportapp.Result{Bundle: report.NewBundle(), GeneratedAt: time.Now()}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	svc := auth.NewJWTService(config.JWTConfig{
		Secret:                "router-test-secret",
		AccessTokenExpiration: time.Hour,
		Issuer:                "pitstop-test",
	})
	engine := Setup(Config{
		ReportHandler: handler.NewReportHandler(noopGenerator{}),
		SystemHandler: handler.NewSystemHandler(nil),
		JWTService:    svc,
		Logger:        zap.NewNop(),
	})
	return engine, svc
}

func tokenFor(t *testing.T, svc *auth.JWTService, role string) string {
	t.Helper()
	token, _, err := svc.GenerateToken(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Name:   "Test User",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func get(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthIsOpen(t *testing.T) {
	engine, _ := newTestRouter(t)
	w := get(engine, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportsRequireAuth(t *testing.T) {
	engine, _ := newTestRouter(t)
	w := get(engine, "/api/v1/reports/bookings?format=json", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGating(t *testing.T) {
	engine, svc := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		role   string
		status int
	}{
		{"manager bookings", "/api/v1/reports/bookings?format=json", workshop.RoleManager, http.StatusOK},
		{"cashier bookings", "/api/v1/reports/bookings?format=json", workshop.RoleCashier, http.StatusOK},
		{"technician bookings", "/api/v1/reports/bookings?format=json", workshop.RoleTechnician, http.StatusForbidden},
		{"technician jobs", "/api/v1/reports/jobs?format=json", workshop.RoleTechnician, http.StatusOK},
		{"cashier jobs", "/api/v1/reports/jobs?format=json", workshop.RoleCashier, http.StatusForbidden},
		{"cashier leaves", "/api/v1/reports/leaves?format=json", workshop.RoleCashier, http.StatusForbidden},
		{"admin leaves", "/api/v1/reports/leaves?format=json", workshop.RoleAdmin, http.StatusOK},
		{"service advisor inventory", "/api/v1/reports/inventory?format=json", workshop.RoleServiceAdvisor, http.StatusForbidden},
		{"manager dashboard", "/api/v1/reports/dashboard", workshop.RoleManager, http.StatusOK},
		{"technician dashboard", "/api/v1/reports/dashboard", workshop.RoleTechnician, http.StatusForbidden},
		{"technician available", "/api/v1/reports/available", workshop.RoleTechnician, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(engine, tt.path, tokenFor(t, svc, tt.role))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
