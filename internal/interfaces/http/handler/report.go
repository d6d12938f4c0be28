package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	reportapp "github.com/pitstop/backend/internal/application/report"
	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/domain/workshop"
	"github.com/pitstop/backend/internal/infrastructure/logger"
	"github.com/pitstop/backend/internal/interfaces/http/dto"
	"github.com/pitstop/backend/internal/interfaces/http/middleware"
)

// dateLayout is the wire format for dateFrom/dateTo query parameters.
const dateLayout = "2006-01-02"

// ReportRoles maps each report type to the roles allowed to request it.
// The router and the /reports/available listing share this matrix.
var ReportRoles = map[report.Type][]string{
	report.TypeBookings:  {workshop.RoleCashier, workshop.RoleManager, workshop.RoleAdmin},
	report.TypePayments:  {workshop.RoleCashier, workshop.RoleManager, workshop.RoleAdmin},
	report.TypeJobs:      {workshop.RoleServiceAdvisor, workshop.RoleTechnician, workshop.RoleManager, workshop.RoleAdmin},
	report.TypeLeaves:    {workshop.RoleAdmin, workshop.RoleManager},
	report.TypeInventory: {workshop.RoleManager, workshop.RoleAdmin},
	report.TypeUsers:     {workshop.RoleAdmin, workshop.RoleManager},
	report.TypeDashboard: {workshop.RoleManager, workshop.RoleAdmin},
}

// reportName returns the display name used by the available listing.
var reportNames = map[report.Type]string{
	report.TypeBookings:  "Bookings Report",
	report.TypePayments:  "Payments Report",
	report.TypeJobs:      "Jobs Report",
	report.TypeLeaves:    "Leave Requests Report",
	report.TypeInventory: "Inventory Report",
	report.TypeUsers:     "Staff Report",
	report.TypeDashboard: "Dashboard Summary",
}

// ReportGenerator runs the report pipeline for one validated request.
type ReportGenerator interface {
	Generate(ctx context.Context, input reportapp.GenerateInput) (*reportapp.Result, error)
}

// ReportHandler handles report generation endpoints.
type ReportHandler struct {
	BaseHandler
	generator ReportGenerator
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(generator ReportGenerator) *ReportHandler {
	return &ReportHandler{generator: generator}
}

// reportFilterRequest binds the recognized query parameters. Parameters a
// report type does not recognize are ignored by its builder.
type reportFilterRequest struct {
	Format         string `form:"format" binding:"omitempty,oneof=pdf json"`
	Status         string `form:"status"`
	ServiceType    string `form:"serviceType"`
	Priority       string `form:"priority"`
	PaymentStatus  string `form:"paymentStatus"`
	Category       string `form:"category"`
	LeaveType      string `form:"leaveType"`
	Role           string `form:"role"`
	Specialization string `form:"specialization"`
	TechnicianID   string `form:"technicianId" binding:"omitempty,uuid"`
	EmployeeID     string `form:"employeeId" binding:"omitempty,uuid"`
	LowStock       bool   `form:"lowStock"`
	OutOfStock     bool   `form:"outOfStock"`
	DateFrom       string `form:"dateFrom"`
	DateTo         string `form:"dateTo"`
}

// Bookings handles GET /reports/bookings
func (h *ReportHandler) Bookings(c *gin.Context) { h.generate(c, report.TypeBookings) }

// Payments handles GET /reports/payments
func (h *ReportHandler) Payments(c *gin.Context) { h.generate(c, report.TypePayments) }

// Jobs handles GET /reports/jobs
func (h *ReportHandler) Jobs(c *gin.Context) { h.generate(c, report.TypeJobs) }

// Leaves handles GET /reports/leaves
func (h *ReportHandler) Leaves(c *gin.Context) { h.generate(c, report.TypeLeaves) }

// Inventory handles GET /reports/inventory
func (h *ReportHandler) Inventory(c *gin.Context) { h.generate(c, report.TypeInventory) }

// Users handles GET /reports/users
func (h *ReportHandler) Users(c *gin.Context) { h.generate(c, report.TypeUsers) }

// Dashboard handles GET /reports/dashboard. The dashboard is JSON only;
// a PDF request is rejected with 501.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	if c.Query("format") == reportapp.FormatPDF {
		h.Error(c, dto.ErrCodeNotImplemented, "pdf output is not supported for the dashboard report")
		return
	}
	result, err := h.generator.Generate(c.Request.Context(), reportapp.GenerateInput{
		Type:        report.TypeDashboard,
		Format:      reportapp.FormatJSON,
		GeneratedBy: middleware.GetUserName(c),
	})
	if err != nil {
		h.handleGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReportResponse(result.Bundle, dto.ReportFilters{}, result.GeneratedAt))
}

// Available handles GET /reports/available, listing the report types the
// caller's role may request.
func (h *ReportHandler) Available(c *gin.Context) {
	role := middleware.GetRole(c)

	available := make([]dto.AvailableReport, 0)
	for _, t := range append(report.AllTypes(), report.TypeDashboard) {
		if !roleAllowed(ReportRoles[t], role) {
			continue
		}
		formats := []string{reportapp.FormatPDF, reportapp.FormatJSON}
		if t == report.TypeDashboard {
			formats = []string{reportapp.FormatJSON}
		}
		available = append(available, dto.AvailableReport{
			Type:    string(t),
			Name:    reportNames[t],
			Formats: formats,
		})
	}
	h.Success(c, available)
}

func roleAllowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// generate runs the shared request flow: bind and validate filters,
// apply technician self-scoping, invoke the pipeline, and write either
// the JSON envelope or the PDF attachment.
func (h *ReportHandler) generate(c *gin.Context, t report.Type) {
	var req reportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Error(c, dto.ErrCodeValidationFormat, "invalid query parameters")
		return
	}

	format := req.Format
	if format == "" {
		format = reportapp.FormatPDF
	}

	dateRange, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		h.Error(c, dto.ErrCodeValidationFormat, err.Error())
		return
	}
	// An inverted range is rejected here; the aggregator never sees it.
	if dateRange.Inverted() {
		h.Error(c, dto.ErrCodeValidationRange, "dateFrom must not be after dateTo")
		return
	}

	filter := reportapp.Filter{
		Status:         req.Status,
		ServiceType:    req.ServiceType,
		Priority:       req.Priority,
		PaymentStatus:  req.PaymentStatus,
		Category:       req.Category,
		LeaveType:      req.LeaveType,
		Role:           req.Role,
		Specialization: req.Specialization,
		LowStock:       req.LowStock,
		OutOfStock:     req.OutOfStock,
		Range:          dateRange,
	}
	if req.TechnicianID != "" {
		id, err := uuid.Parse(req.TechnicianID)
		if err != nil {
			h.Error(c, dto.ErrCodeValidationFormat, "technicianId must be a valid uuid")
			return
		}
		filter.TechnicianID = &id
	}
	if req.EmployeeID != "" {
		id, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			h.Error(c, dto.ErrCodeValidationFormat, "employeeId must be a valid uuid")
			return
		}
		filter.EmployeeID = &id
	}

	// A technician only ever sees their own jobs, regardless of any
	// technicianId supplied.
	if t == report.TypeJobs && middleware.GetRole(c) == workshop.RoleTechnician {
		selfID, err := uuid.Parse(middleware.GetUserID(c))
		if err != nil {
			h.Error(c, dto.ErrCodeUnauthorized, "invalid user identity")
			return
		}
		filter.TechnicianID = &selfID
	}

	result, err := h.generator.Generate(c.Request.Context(), reportapp.GenerateInput{
		Type:        t,
		Format:      format,
		GeneratedBy: middleware.GetUserName(c),
		Filter:      filter,
	})
	if err != nil {
		h.handleGenerateError(c, err)
		return
	}

	if format == reportapp.FormatPDF {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		c.Data(http.StatusOK, "application/pdf", result.PDF)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(result.Bundle, echoFilters(req, filter), result.GeneratedAt))
}

func (h *ReportHandler) handleGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reportapp.ErrPDFNotSupported):
		h.Error(c, dto.ErrCodeNotImplemented, err.Error())
	case errors.Is(err, reportapp.ErrUnknownReportType):
		h.NotFound(c, err.Error())
	default:
		logger.FromGin(c).Error("report generation failed", zap.Error(err))
		h.Error(c, dto.ErrCodeReportFailed, err.Error())
	}
}

// parseDateRange parses the inclusive dateFrom/dateTo bounds. The upper
// bound is widened to the end of its day so a record dated anywhere on
// dateTo is included.
func parseDateRange(fromStr, toStr string) (report.DateRange, error) {
	var r report.DateRange
	if fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return r, errors.New("dateFrom must be formatted as YYYY-MM-DD")
		}
		r.From = &from
	}
	if toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return r, errors.New("dateTo must be formatted as YYYY-MM-DD")
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		r.To = &endOfDay
	}
	return r, nil
}

// echoFilters reflects the effective filter values back on the JSON
// envelope, including any self-scoping override.
func echoFilters(req reportFilterRequest, filter reportapp.Filter) dto.ReportFilters {
	out := dto.ReportFilters{
		Status:         req.Status,
		ServiceType:    req.ServiceType,
		Priority:       req.Priority,
		PaymentStatus:  req.PaymentStatus,
		Category:       req.Category,
		LeaveType:      req.LeaveType,
		Role:           req.Role,
		Specialization: req.Specialization,
		LowStock:       req.LowStock,
		OutOfStock:     req.OutOfStock,
		DateFrom:       req.DateFrom,
		DateTo:         req.DateTo,
	}
	if filter.TechnicianID != nil {
		out.TechnicianID = filter.TechnicianID.String()
	}
	if filter.EmployeeID != nil {
		out.EmployeeID = filter.EmployeeID.String()
	}
	return out
}
