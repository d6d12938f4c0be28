package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/infrastructure/reporting"
)

var (
	// ErrUnknownReportType signals a request for a type outside the
	// report catalog.
	ErrUnknownReportType = errors.New("unknown report type")
	// ErrPDFNotSupported signals a PDF request for a report type that
	// only exists as structured data.
	ErrPDFNotSupported = errors.New("pdf output is not supported for this report type")
)

// Renderer turns an aggregated bundle into a self-contained HTML
// document.
type Renderer interface {
	Render(ctx context.Context, input reporting.RenderInput) (string, error)
	Has(t report.Type) bool
}

// GenerateInput describes one report generation request after the HTTP
// boundary has validated and scoped it.
type GenerateInput struct {
	Type        report.Type
	Format      string
	GeneratedBy string
	Filter      Filter
}

// Result is the outcome of a generation request. JSON requests carry the
// bundle; PDF requests carry the document bytes and download filename.
type Result struct {
	Bundle      *report.Bundle
	PDF         []byte
	Filename    string
	GeneratedAt time.Time
}

// Output formats accepted by the pipeline
const (
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Orchestrator drives the report pipeline. Stages run strictly in order
// and a stage failure short-circuits the rest: nothing renders an
// unaggregated report and nothing emits an unrendered one.
type Orchestrator struct {
	service  *Service
	renderer Renderer
	emitter  reporting.Emitter
	archive  reporting.Archive
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrchestrator wires the pipeline stages. archive may be nil, which
// disables archival entirely.
func NewOrchestrator(service *Service, renderer Renderer, emitter reporting.Emitter, archive reporting.Archive, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		service:  service,
		renderer: renderer,
		emitter:  emitter,
		archive:  archive,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate runs the pipeline for one request.
func (o *Orchestrator) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if !input.Type.IsValid() {
		return nil, ErrUnknownReportType
	}
	if input.Format == FormatPDF && !o.renderer.Has(input.Type) {
		return nil, ErrPDFNotSupported
	}

	bundle, err := o.service.Build(ctx, input.Type, input.Filter)
	if err != nil {
		return nil, err
	}

	generatedAt := o.now()
	result := &Result{Bundle: bundle, GeneratedAt: generatedAt}
	if input.Format != FormatPDF {
		return result, nil
	}

	html, err := o.renderer.Render(ctx, reporting.RenderInput{
		Type:        input.Type,
		Bundle:      bundle,
		GeneratedBy: input.GeneratedBy,
		Range:       input.Filter.Range,
	})
	if err != nil {
		o.logger.Error("report render failed",
			zap.String("report_type", string(input.Type)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to generate %s report", input.Type)
	}

	pdf, err := o.emitter.Emit(ctx, html, reporting.EmitOptions{
		Title: fmt.Sprintf("%s report", input.Type),
	})
	if err != nil {
		o.logger.Error("report emit failed",
			zap.String("report_type", string(input.Type)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to generate %s report", input.Type)
	}

	result.PDF = pdf
	result.Filename = fmt.Sprintf("%s-report-%s.pdf", input.Type, generatedAt.Format("2006-01-02"))
	o.archivePDF(ctx, result.Filename, pdf)

	return result, nil
}

// archivePDF stores a copy of the document when an archive is
// configured. Archival is best effort; a failure is logged and the
// response proceeds with the generated bytes.
func (o *Orchestrator) archivePDF(ctx context.Context, filename string, pdf []byte) {
	if o.archive == nil {
		return
	}
	location, err := o.archive.Store(ctx, filename, pdf)
	if err != nil {
		o.logger.Warn("report archival failed",
			zap.String("filename", filename),
			zap.Error(err))
		return
	}
	o.logger.Info("report archived",
		zap.String("filename", filename),
		zap.String("location", location))
}
