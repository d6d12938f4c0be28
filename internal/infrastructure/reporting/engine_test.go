package reporting

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pitstop/backend/internal/domain/report"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "N/A"},
		{"zero time", time.Time{}, "N/A"},
		{"nil pointer", (*time.Time)(nil), "N/A"},
		{"empty string", "", "N/A"},
		{"never sentinel", "Never", "N/A"},
		{"unparseable string", "not-a-date", "Invalid Date"},
		{"unsupported type", 42, "Invalid Date"},
		{"valid time", ts, "Mar 15, 2024"},
		{"valid pointer", &ts, "Mar 15, 2024"},
		{"date string", "2024-03-15", "Mar 15, 2024"},
		{"rfc3339 string", "2024-03-15T14:30:00Z", "Mar 15, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDate(tt.input))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "Mar 15, 2024 2:30 PM", formatDateTime(ts))
	assert.Equal(t, "N/A", formatDateTime(nil))
	assert.Equal(t, "N/A", formatDateTime("Never"))
	assert.Equal(t, "Invalid Date", formatDateTime("garbage"))

	morning := time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Mar 15, 2024 9:05 AM", formatDateTime(morning))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain float", 1234.5, "1,234.50"},
		{"large value", 1234567.891, "1,234,567.89"},
		{"integer", 99, "99.00"},
		{"zero", 0, "0.00"},
		{"negative", -1234.5, "-1,234.50"},
		{"numeric string", "45.5", "45.50"},
		{"non-numeric string", "abc", "0.00"},
		{"nil", nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCurrency(tt.input))
		})
	}
}

func TestComparisonHelpers(t *testing.T) {
	assert.True(t, eqHelper("paid", "paid"))
	assert.True(t, eqHelper(5, 5))
	assert.False(t, eqHelper("paid", "pending"))

	assert.True(t, gtHelper(10, 5))
	assert.False(t, gtHelper(5, 10))
	assert.True(t, ltHelper(5.5, 10))
	assert.False(t, ltHelper(10, 5.5))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "In Progress", titleCase("in_progress"))
	assert.Equal(t, "Oil Change", titleCase("oil change"))
	assert.Equal(t, "", titleCase(nil))
}

func TestPeriodLabel(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "All Time", periodLabel(report.DateRange{}))
	assert.Equal(t, "All Time", periodLabel(report.DateRange{From: &from}))
	assert.Equal(t, "Mar 1, 2024 - Mar 31, 2024",
		periodLabel(report.DateRange{From: &from, To: &to}))
}

func newTestEngine(t *testing.T) *Engine {
	engine, err := NewEngine(NewTemplateStore(TemplateStoreConfig{}), zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestEngine_Render_Bookings(t *testing.T) {
	engine := newTestEngine(t)

	bundle := report.NewBundle()
	bundle.Rows = []report.Row{
		{
			"bookingNumber": "BK-1001",
			"customerName":  "Dana Cole",
			"vehicleInfo":   "2021 Toyota Corolla (ABC-1234)",
			"serviceType":   "repair",
			"scheduledDate": time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			"status":        "completed",
			"priority":      "high",
			"estimatedCost": 450.0,
		},
	}
	bundle.Summary = map[string]float64{
		"totalBookings":      1,
		"completedBookings":  1,
		"inProgressBookings": 0,
		"totalRevenue":       450,
		"completionRate":     100,
	}
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(map[string]int{"completed": 1}, nil)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	html, err := engine.Render(context.Background(), RenderInput{
		Type:        report.TypeBookings,
		Bundle:      bundle,
		GeneratedBy: "Jordan Reyes",
		Range:       report.DateRange{From: &from, To: &to},
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Bookings Report")
	assert.Contains(t, html, "BK-1001")
	assert.Contains(t, html, "Dana Cole")
	assert.Contains(t, html, "Mar 15, 2024")
	assert.Contains(t, html, "Jordan Reyes")
	assert.Contains(t, html, "Mar 1, 2024 - Mar 31, 2024")
	// Theme colors are inlined, no external stylesheet reference
	assert.Contains(t, html, report.ThemeFor(report.TypeBookings).Primary)
	assert.NotContains(t, html, "<link")
}

func TestEngine_Render_AllTypesHaveTemplates(t *testing.T) {
	engine := newTestEngine(t)

	for _, reportType := range report.AllTypes() {
		t.Run(string(reportType), func(t *testing.T) {
			html, err := engine.Render(context.Background(), RenderInput{
				Type:        reportType,
				Bundle:      report.NewBundle(),
				GeneratedBy: "System",
			})
			require.NoError(t, err)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, "All Time")
			assert.Contains(t, html, report.ThemeFor(reportType).Primary)
		})
	}
}

func TestEngine_Render_MissingTemplate(t *testing.T) {
	// An engine whose template map lacks the requested type must fail
	// hard, never fall back to default content.
	engine := &Engine{
		templates: nil,
		logger:    zap.NewNop(),
	}

	_, err := engine.Render(context.Background(), RenderInput{
		Type:   report.TypeBookings,
		Bundle: report.NewBundle(),
	})

	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeTemplateNotFound, renderErr.Code)
}

func TestEngine_Render_DashboardHasNoTemplate(t *testing.T) {
	engine := newTestEngine(t)

	assert.False(t, engine.Has(report.TypeDashboard))

	_, err := engine.Render(context.Background(), RenderInput{
		Type:   report.TypeDashboard,
		Bundle: report.NewBundle(),
	})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeTemplateNotFound, renderErr.Code)
}

func TestEngine_Render_NilBundle(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Render(context.Background(), RenderInput{Type: report.TypeBookings})

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)
}

func TestEngine_Render_UnknownCategoryDisplaysNA(t *testing.T) {
	engine := newTestEngine(t)

	bundle := report.NewBundle()
	bundle.Rows = []report.Row{
		{
			"bookingNumber": "BK-2001",
			"customerName":  "",
			"vehicleInfo":   "N/A",
			"serviceType":   "unknown",
			"status":        "pending",
			"priority":      "normal",
			"estimatedCost": 0.0,
		},
	}

	html, err := engine.Render(context.Background(), RenderInput{
		Type:        report.TypeBookings,
		Bundle:      bundle,
		GeneratedBy: "System",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "N/A")
}

func TestTemplateStore_ExternalOverride(t *testing.T) {
	dir := t.TempDir()
	override := `{{define "content"}}custom bookings body{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.html"), []byte(override), 0o644))

	store := NewTemplateStore(TemplateStoreConfig{ExternalDir: dir})

	fragment, err := store.Fragment(report.TypeBookings)
	require.NoError(t, err)
	assert.Equal(t, override, fragment)

	// Types without an override fall back to the embedded fragment
	embedded, err := store.Fragment(report.TypePayments)
	require.NoError(t, err)
	assert.Contains(t, embedded, "Invoice Details")
}

func TestTemplateStore_MissingLogoIsNotAnError(t *testing.T) {
	store := NewTemplateStore(TemplateStoreConfig{LogoPath: "/nonexistent/logo.png"})
	assert.Empty(t, store.LogoBase64())

	engine, err := NewEngine(store, zap.NewNop())
	require.NoError(t, err)

	html, err := engine.Render(context.Background(), RenderInput{
		Type:        report.TypeUsers,
		Bundle:      report.NewBundle(),
		GeneratedBy: "System",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "data:image/png")
}
