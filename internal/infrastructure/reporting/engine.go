package reporting

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pitstop/backend/internal/domain/report"
)

// Engine binds aggregated report data into a complete HTML document.
// It owns an immutable report-type to compiled-template map built once at
// construction; rendering never mutates shared template state.
type Engine struct {
	templates map[report.Type]*template.Template
	logo      string // base64 PNG, empty when no logo resource exists
	logger    *zap.Logger
}

// RenderInput carries everything the engine needs for one render.
type RenderInput struct {
	Type        report.Type
	Bundle      *report.Bundle
	GeneratedBy string
	Range       report.DateRange
}

// renderContext is the merged object bound into the layout template.
type renderContext struct {
	ReportTitle  string
	GeneratedBy  string
	GeneratedAt  string
	ReportPeriod string
	TotalRecords int
	ReportType   string
	CurrentYear  int
	LogoBase64   string
	Theme        report.Theme
	Rows         []report.Row
	Summary      map[string]float64
	Breakdowns   map[string]report.Breakdown
}

// NewEngine creates a render engine from a template store. Every template
// the store resolves is compiled up front; a compile failure at startup is
// an error, not a per-request surprise.
func NewEngine(store *TemplateStore, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	layout, err := store.Layout()
	if err != nil {
		return nil, NewRenderError(ErrCodeTemplateNotFound, "layout template unavailable", err)
	}

	templates := make(map[report.Type]*template.Template, len(report.AllTypes()))
	for _, t := range report.AllTypes() {
		fragment, err := store.Fragment(t)
		if err != nil {
			// Types without a fragment are simply absent from the map;
			// requesting them later is a hard template-not-found failure.
			logger.Warn("report template fragment missing",
				zap.String("report_type", string(t)),
				zap.Error(err))
			continue
		}

		tmpl, err := template.New("layout").Funcs(Helpers()).Parse(layout)
		if err != nil {
			return nil, NewRenderError(ErrCodeRenderFailed, "failed to parse layout template", err)
		}
		if _, err := tmpl.Parse(fragment); err != nil {
			return nil, NewRenderError(ErrCodeRenderFailed,
				fmt.Sprintf("failed to parse %s template fragment", t), err)
		}
		templates[t] = tmpl
	}

	return &Engine{
		templates: templates,
		logo:      store.LogoBase64(),
		logger:    logger,
	}, nil
}

// Render produces the full HTML document for one report. A missing
// template for the requested type is a hard failure.
func (e *Engine) Render(ctx context.Context, input RenderInput) (string, error) {
	if input.Bundle == nil {
		return "", NewRenderError(ErrCodeRenderFailed, "report bundle is nil", nil)
	}

	tmpl, ok := e.templates[input.Type]
	if !ok {
		return "", NewRenderError(ErrCodeTemplateNotFound,
			fmt.Sprintf("no template registered for report type %q", input.Type), nil)
	}

	now := time.Now()
	rc := renderContext{
		ReportTitle:  reportTitle(input.Type),
		GeneratedBy:  input.GeneratedBy,
		GeneratedAt:  now.Format("Jan 2, 2006 3:04 PM"),
		ReportPeriod: periodLabel(input.Range),
		TotalRecords: len(input.Bundle.Rows),
		ReportType:   string(input.Type),
		CurrentYear:  now.Year(),
		LogoBase64:   e.logo,
		Theme:        report.ThemeFor(input.Type),
		Rows:         input.Bundle.Rows,
		Summary:      input.Bundle.Summary,
		Breakdowns:   input.Bundle.Breakdowns,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rc); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed,
			fmt.Sprintf("failed to execute %s template", input.Type), err)
	}

	return buf.String(), nil
}

// Has reports whether a template is registered for the given type.
func (e *Engine) Has(t report.Type) bool {
	_, ok := e.templates[t]
	return ok
}

// reportTitle derives the document heading from the report type.
func reportTitle(t report.Type) string {
	return titleCase(string(t)) + " Report"
}

// periodLabel renders the human-readable reporting period: both bounds
// present gives "<from> - <to>", anything else gives "All Time".
func periodLabel(r report.DateRange) string {
	if r.From == nil || r.To == nil {
		return "All Time"
	}
	return formatDate(*r.From) + " - " + formatDate(*r.To)
}

// Helpers returns the template function map shared by all report
// templates. Every helper is a pure function of its inputs.
func Helpers() template.FuncMap {
	return template.FuncMap{
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"formatCurrency": formatCurrency,
		"formatNumber":   formatNumber,
		"title":          titleCase,
		"upper":          strings.ToUpper,
		"displayOrNA":    displayOrNA,
		"eq":             eqHelper,
		"gt":             gtHelper,
		"lt":             ltHelper,
		"add":            func(a, b int) int { return a + b },
	}
}

var titleCaser = cases.Title(language.English)

// titleCase title-cases a value, turning underscores into spaces so enum
// values like "in_progress" display as "In Progress".
func titleCase(v any) string {
	s := fmt.Sprintf("%v", v)
	if v == nil || s == "<nil>" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func displayOrNA(v any) string {
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if v == nil || s == "" || s == "<nil>" {
		return "N/A"
	}
	return s
}

// dateLayouts are the accepted textual date representations, tried in
// order when a helper receives a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// toTime normalizes a template value to a time. ok=false means the value
// is absent (nil pointer, zero time, empty or sentinel string); parse
// failure of a non-empty string is reported through invalid.
func toTime(v any) (t time.Time, ok bool, invalid bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false, false
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false, false
		}
		return val, true, false
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false, false
		}
		return *val, true, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" || strings.EqualFold(s, "never") {
			return time.Time{}, false, false
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true, false
			}
		}
		return time.Time{}, false, true
	default:
		return time.Time{}, false, true
	}
}

// formatDate renders a date as "Jan 2, 2006". Absent values render as
// "N/A", unparseable ones as "Invalid Date".
func formatDate(v any) string {
	t, ok, invalid := toTime(v)
	if invalid {
		return "Invalid Date"
	}
	if !ok {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// formatDateTime renders a timestamp as "Jan 2, 2006 3:04 PM" with the
// same absent/invalid handling as formatDate.
func formatDateTime(v any) string {
	t, ok, invalid := toTime(v)
	if invalid {
		return "Invalid Date"
	}
	if !ok {
		return "N/A"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// toFloat coerces a template value to float64, defaulting anything
// non-numeric to 0.
func toFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case decimal.Decimal:
		return val.InexactFloat64()
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// formatCurrency renders a numeric value with two decimals and thousand
// separators, no currency symbol. Non-numeric input renders as 0.00.
func formatCurrency(v any) string {
	return groupDigits(decimal.NewFromFloat(toFloat(v)).StringFixed(2))
}

// formatNumber renders an integral value with thousand separators.
func formatNumber(v any) string {
	return groupDigits(strconv.FormatInt(int64(toFloat(v)), 10))
}

// groupDigits inserts comma thousand separators into a plain decimal
// string, preserving sign and fractional part.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, decPart, hasDec := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}

	out := sign + b.String()
	if hasDec {
		out += "." + decPart
	}
	return out
}

func eqHelper(a, b any) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func gtHelper(a, b any) bool {
	return toFloat(a) > toFloat(b)
}

func ltHelper(a, b any) bool {
	return toFloat(a) < toFloat(b)
}
