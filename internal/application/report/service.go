package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/domain/workshop"
)

// Filter is the union of recognized filter keys across report types.
// Each builder reads only the keys its report type recognizes and
// ignores the rest.
type Filter struct {
	Status         string
	ServiceType    string
	Priority       string
	PaymentStatus  string
	Category       string
	LeaveType      string
	Role           string
	Specialization string
	TechnicianID   *uuid.UUID
	EmployeeID     *uuid.UUID
	LowStock       bool
	OutOfStock     bool
	Range          report.DateRange
}

// Service aggregates domain records into report bundles. Aggregation is
// a pure read: the same filters against an unchanged store produce an
// identical bundle.
type Service struct {
	source report.Source
	logger *zap.Logger
}

// NewService creates a report aggregation service
func NewService(source report.Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Build produces the bundle for a single-collection report type.
func (s *Service) Build(ctx context.Context, t report.Type, filter Filter) (*report.Bundle, error) {
	switch t {
	case report.TypeBookings:
		return s.BuildBookings(ctx, filter)
	case report.TypePayments:
		return s.BuildPayments(ctx, filter)
	case report.TypeJobs:
		return s.BuildJobs(ctx, filter)
	case report.TypeLeaves:
		return s.BuildLeaves(ctx, filter)
	case report.TypeInventory:
		return s.BuildInventory(ctx, filter)
	case report.TypeUsers:
		return s.BuildUsers(ctx, filter)
	case report.TypeDashboard:
		return s.BuildDashboard(ctx)
	default:
		return nil, fmt.Errorf("unknown report type %q", t)
	}
}

// aggregationError logs the cause and returns the generic per-type
// failure surfaced to the HTTP boundary. Internal details never leak.
func (s *Service) aggregationError(t report.Type, cause error) error {
	s.logger.Error("report aggregation failed",
		zap.String("report_type", string(t)),
		zap.Error(cause))
	return fmt.Errorf("failed to generate %s report", t)
}

// money converts a decimal amount to the float64 used in summaries,
// treating the invalid state of nullable amounts as 0.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func nullMoney(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}

// BuildBookings aggregates bookings into rows, summary, and breakdowns.
func (s *Service) BuildBookings(ctx context.Context, filter Filter) (*report.Bundle, error) {
	bookings, err := s.source.ListBookings(ctx, report.BookingFilter{
		Status:      filter.Status,
		ServiceType: filter.ServiceType,
		Priority:    filter.Priority,
		Range:       filter.Range,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypeBookings, err)
	}

	bundle := report.NewBundle()
	statusCounts := make(map[string]int)
	serviceCounts := make(map[string]int)
	serviceRevenue := make(map[string]float64)

	var completed, inProgress, pending, cancelled int
	var totalRevenue float64

	for i := range bookings {
		b := &bookings[i]
		status := workshop.NormalizeCategory(b.Status)
		service := workshop.NormalizeCategory(b.ServiceType)

		// Revenue per booking: the actual cost when recorded, the
		// estimate otherwise.
		revenue := nullMoney(b.ActualCost)
		if !b.ActualCost.Valid {
			revenue = money(b.EstimatedCost)
		}

		switch status {
		case workshop.BookingStatusCompleted:
			completed++
			totalRevenue += revenue
		case workshop.BookingStatusInProgress:
			inProgress++
		case workshop.BookingStatusPending:
			pending++
		case workshop.BookingStatusCancelled:
			cancelled++
		}

		statusCounts[status]++
		serviceCounts[service]++
		if status == workshop.BookingStatusCompleted {
			serviceRevenue[service] += revenue
		}

		row := report.Row{
			"bookingId":     b.ID.String(),
			"bookingNumber": b.BookingNumber,
			"customerName":  b.CustomerName(),
			"vehicleInfo":   b.VehicleInfo(),
			"serviceType":   service,
			"scheduledDate": b.ScheduledDate,
			"status":        status,
			"priority":      workshop.NormalizeCategory(b.Priority),
			"estimatedCost": money(b.EstimatedCost),
			"actualCost":    nullMoney(b.ActualCost),
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(bookings)
	bundle.Summary = map[string]float64{
		"totalBookings":      float64(total),
		"completedBookings":  float64(completed),
		"inProgressBookings": float64(inProgress),
		"pendingBookings":    float64(pending),
		"cancelledBookings":  float64(cancelled),
		"totalRevenue":       report.Round2(totalRevenue),
		"completionRate":     report.Percentage(completed, total),
	}
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(statusCounts, nil)
	bundle.Breakdowns["byServiceType"] = report.BuildBreakdown(serviceCounts, serviceRevenue)

	return bundle, nil
}

// BuildPayments aggregates invoices into rows, summary, and breakdowns.
func (s *Service) BuildPayments(ctx context.Context, filter Filter) (*report.Bundle, error) {
	invoices, err := s.source.ListInvoices(ctx, report.PaymentFilter{
		PaymentStatus: filter.PaymentStatus,
		Range:         filter.Range,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypePayments, err)
	}

	bundle := report.NewBundle()
	statusCounts := make(map[string]int)
	statusAmounts := make(map[string]float64)
	methodCounts := make(map[string]int)
	methodAmounts := make(map[string]float64)

	var paid, pending, overdue int
	var totalAmount, collectedRevenue, outstanding float64

	for i := range invoices {
		inv := &invoices[i]
		status := workshop.NormalizeCategory(inv.Status)
		method := workshop.NormalizeCategory(inv.PaymentMethod)
		amount := money(inv.Total)

		totalAmount += amount
		switch status {
		case workshop.InvoiceStatusPaid:
			paid++
			collectedRevenue += amount
		case workshop.InvoiceStatusPending:
			pending++
			outstanding += amount
		case workshop.InvoiceStatusOverdue:
			overdue++
			outstanding += amount
		}

		statusCounts[status]++
		statusAmounts[status] += amount
		methodCounts[method]++
		methodAmounts[method] += amount

		row := report.Row{
			"invoiceId":     inv.ID.String(),
			"invoiceNumber": inv.InvoiceNumber,
			"customerName":  inv.CustomerName(),
			"status":        status,
			"issueDate":     inv.IssueDate,
			"dueDate":       inv.DueDate,
			"subtotal":      money(inv.Subtotal),
			"tax":           money(inv.Tax),
			"total":         amount,
			"paymentMethod": method,
			"paidAt":        inv.PaidAt,
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(invoices)
	averageInvoice := 0.0
	if total > 0 {
		averageInvoice = report.Round2(totalAmount / float64(total))
	}

	bundle.Summary = map[string]float64{
		"totalInvoices":     float64(total),
		"paidInvoices":      float64(paid),
		"pendingInvoices":   float64(pending),
		"overdueInvoices":   float64(overdue),
		"totalRevenue":      report.Round2(collectedRevenue),
		"outstandingAmount": report.Round2(outstanding),
		"averageInvoice":    averageInvoice,
		"paymentRate":       report.Percentage(paid, total),
	}
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(statusCounts, statusAmounts)
	bundle.Breakdowns["byPaymentMethod"] = report.BuildBreakdown(methodCounts, methodAmounts)

	return bundle, nil
}

// BuildJobs aggregates jobs into rows, summary, and breakdowns.
func (s *Service) BuildJobs(ctx context.Context, filter Filter) (*report.Bundle, error) {
	jobs, err := s.source.ListJobs(ctx, report.JobFilter{
		Status:       filter.Status,
		Category:     filter.Category,
		Priority:     filter.Priority,
		TechnicianID: filter.TechnicianID,
		Range:        filter.Range,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypeJobs, err)
	}

	bundle := report.NewBundle()
	statusCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	priorityCounts := make(map[string]int)

	var completed, inProgress, pending int
	var estimatedHours, actualHours float64

	for i := range jobs {
		j := &jobs[i]
		status := workshop.NormalizeCategory(j.Status)
		category := workshop.NormalizeCategory(j.Category)
		priority := workshop.NormalizeCategory(j.Priority)

		switch status {
		case workshop.JobStatusCompleted:
			completed++
		case workshop.JobStatusInProgress:
			inProgress++
		case workshop.JobStatusPending:
			pending++
		}

		estimatedHours += money(j.EstimatedHours)
		actualHours += nullMoney(j.ActualHours)

		statusCounts[status]++
		categoryCounts[category]++
		priorityCounts[priority]++

		row := report.Row{
			"jobId":          j.ID.String(),
			"jobNumber":      j.JobNumber,
			"title":          j.Title,
			"category":       category,
			"status":         status,
			"priority":       priority,
			"technicianName": j.TechnicianName(),
			"estimatedHours": money(j.EstimatedHours),
			"actualHours":    nullMoney(j.ActualHours),
			"createdAt":      j.CreatedAt,
			"completedAt":    j.CompletedAt,
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(jobs)
	bundle.Summary = map[string]float64{
		"totalJobs":           float64(total),
		"completedJobs":       float64(completed),
		"inProgressJobs":      float64(inProgress),
		"pendingJobs":         float64(pending),
		"totalEstimatedHours": report.Round2(estimatedHours),
		"totalActualHours":    report.Round2(actualHours),
		"completionRate":      report.Percentage(completed, total),
	}
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(statusCounts, nil)
	bundle.Breakdowns["byCategory"] = report.BuildBreakdown(categoryCounts, nil)
	bundle.Breakdowns["byPriority"] = report.BuildBreakdown(priorityCounts, nil)

	return bundle, nil
}

// BuildLeaves aggregates leave requests into rows, summary, and
// breakdowns.
func (s *Service) BuildLeaves(ctx context.Context, filter Filter) (*report.Bundle, error) {
	leaves, err := s.source.ListLeaveRequests(ctx, report.LeaveFilter{
		Status:     filter.Status,
		LeaveType:  filter.LeaveType,
		EmployeeID: filter.EmployeeID,
		Range:      filter.Range,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypeLeaves, err)
	}

	bundle := report.NewBundle()
	statusCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	typeDays := make(map[string]float64)

	var approved, pending, rejected, totalDays int

	for i := range leaves {
		l := &leaves[i]
		status := workshop.NormalizeCategory(l.Status)
		leaveType := workshop.NormalizeCategory(l.LeaveType)
		days := l.Days()

		switch status {
		case workshop.LeaveStatusApproved:
			approved++
		case workshop.LeaveStatusPending:
			pending++
		case workshop.LeaveStatusRejected:
			rejected++
		}
		totalDays += days

		statusCounts[status]++
		typeCounts[leaveType]++
		typeDays[leaveType] += float64(days)

		row := report.Row{
			"requestId":    l.ID.String(),
			"employeeName": l.EmployeeName(),
			"leaveType":    leaveType,
			"status":       status,
			"startDate":    l.StartDate,
			"endDate":      l.EndDate,
			"days":         float64(days),
			"reason":       workshop.DisplayOrNA(l.Reason),
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(leaves)
	bundle.Summary = map[string]float64{
		"totalRequests":      float64(total),
		"approvedRequests":   float64(approved),
		"pendingRequests":    float64(pending),
		"rejectedRequests":   float64(rejected),
		"totalDaysRequested": float64(totalDays),
		"approvalRate":       report.Percentage(approved, total),
	}
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(statusCounts, nil)
	bundle.Breakdowns["byType"] = report.BuildBreakdown(typeCounts, typeDays)

	return bundle, nil
}

// Stock statuses carried on inventory rows
const (
	stockStatusOut = "out_of_stock"
	stockStatusLow = "low_stock"
	stockStatusOK  = "in_stock"
)

// BuildInventory aggregates inventory items into rows, summary, and
// breakdowns. Out-of-stock is the more specific condition: an item at or
// below zero stock counts toward both lowStockItems and outOfStockItems,
// but its row is classified out_of_stock and it never appears in the
// low-stock alert set.
func (s *Service) BuildInventory(ctx context.Context, filter Filter) (*report.Bundle, error) {
	items, err := s.source.ListInventoryItems(ctx, report.InventoryFilter{
		Category:   filter.Category,
		LowStock:   filter.LowStock,
		OutOfStock: filter.OutOfStock,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypeInventory, err)
	}

	bundle := report.NewBundle()
	categoryCounts := make(map[string]int)
	categoryValues := make(map[string]float64)

	var lowStock, outOfStock int
	var totalValue float64

	for i := range items {
		item := &items[i]
		category := workshop.NormalizeCategory(item.Category)
		value := money(item.StockValue())

		status := stockStatusOK
		switch {
		case item.IsOutOfStock():
			status = stockStatusOut
			outOfStock++
			lowStock++
		case item.IsLowStock():
			status = stockStatusLow
			lowStock++
		}

		totalValue += value
		categoryCounts[category]++
		categoryValues[category] += value

		row := report.Row{
			"itemId":        item.ID.String(),
			"name":          item.Name,
			"partNumber":    workshop.DisplayOrNA(item.PartNumber),
			"category":      category,
			"currentStock":  float64(item.CurrentStock),
			"minimumStock":  float64(item.MinimumStock),
			"unitPrice":     money(item.UnitPrice),
			"stockValue":    value,
			"stockStatus":   status,
			"supplier":      workshop.DisplayOrNA(item.Supplier),
			"lastRestocked": item.LastRestocked,
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(items)
	healthy := total - lowStock
	bundle.Summary = map[string]float64{
		"totalItems":      float64(total),
		"lowStockItems":   float64(lowStock),
		"outOfStockItems": float64(outOfStock),
		"totalValue":      report.Round2(totalValue),
		"stockHealth":     report.Percentage(healthy, total),
	}
	bundle.Breakdowns["byCategory"] = report.BuildBreakdown(categoryCounts, categoryValues)

	return bundle, nil
}

// LowStockAlerts extracts the low-stock alert set from an inventory
// bundle: items at or below their minimum that still have stock on hand.
func LowStockAlerts(bundle *report.Bundle) []report.Row {
	alerts := make([]report.Row, 0)
	for _, row := range bundle.Rows {
		if row["stockStatus"] == stockStatusLow {
			alerts = append(alerts, row)
		}
	}
	return alerts
}

// BuildUsers aggregates staff accounts into rows, summary, and
// breakdowns.
func (s *Service) BuildUsers(ctx context.Context, filter Filter) (*report.Bundle, error) {
	users, err := s.source.ListUsers(ctx, report.UserFilter{
		Role:           filter.Role,
		Status:         filter.Status,
		Specialization: filter.Specialization,
		Range:          filter.Range,
	})
	if err != nil {
		return nil, s.aggregationError(report.TypeUsers, err)
	}

	bundle := report.NewBundle()
	roleCounts := make(map[string]int)
	statusCounts := make(map[string]int)

	var active, inactive, technicians int

	for i := range users {
		u := &users[i]
		role := workshop.NormalizeCategory(u.Role)
		status := workshop.NormalizeCategory(u.Status)

		if u.IsActive() {
			active++
		} else {
			inactive++
		}
		if role == workshop.RoleTechnician {
			technicians++
		}

		roleCounts[role]++
		statusCounts[status]++

		row := report.Row{
			"userId":         u.ID.String(),
			"name":           u.Name,
			"email":          u.Email,
			"role":           role,
			"status":         status,
			"specialization": workshop.DisplayOrNA(u.Specialization),
			"phone":          workshop.DisplayOrNA(u.Phone),
			"lastLogin":      u.LastLogin,
			"createdAt":      u.CreatedAt,
		}
		bundle.Rows = append(bundle.Rows, row)
	}

	total := len(users)
	bundle.Summary = map[string]float64{
		"totalUsers":      float64(total),
		"activeUsers":     float64(active),
		"inactiveUsers":   float64(inactive),
		"technicianCount": float64(technicians),
		"activeRate":      report.Percentage(active, total),
	}
	bundle.Breakdowns["byRole"] = report.BuildBreakdown(roleCounts, nil)
	bundle.Breakdowns["byStatus"] = report.BuildBreakdown(statusCounts, nil)

	return bundle, nil
}

// CurrentMonthRange returns the inclusive bounds of the current calendar
// month, the fixed period of the dashboard composite.
func CurrentMonthRange(now time.Time) report.DateRange {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return report.DateRange{From: &from, To: &to}
}

// BuildDashboard runs the bookings, payments, jobs, and inventory
// aggregations concurrently over the current calendar month and merges
// their summaries into one composite bundle.
func (s *Service) BuildDashboard(ctx context.Context) (*report.Bundle, error) {
	monthRange := CurrentMonthRange(time.Now())

	var bookings, payments, jobs, inventory *report.Bundle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.BuildBookings(gctx, Filter{Range: monthRange})
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.BuildPayments(gctx, Filter{Range: monthRange})
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.BuildJobs(gctx, Filter{Range: monthRange})
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = s.BuildInventory(gctx, Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.aggregationError(report.TypeDashboard, err)
	}

	bundle := report.NewBundle()
	bundle.Summary = map[string]float64{
		"totalBookings":     bookings.Summary["totalBookings"],
		"completedBookings": bookings.Summary["completedBookings"],
		"totalInvoices":     payments.Summary["totalInvoices"],
		"paidInvoices":      payments.Summary["paidInvoices"],
		"monthlyRevenue":    payments.Summary["totalRevenue"],
		"outstandingAmount": payments.Summary["outstandingAmount"],
		"totalJobs":         jobs.Summary["totalJobs"],
		"completedJobs":     jobs.Summary["completedJobs"],
		"jobCompletionRate": jobs.Summary["completionRate"],
		"totalItems":        inventory.Summary["totalItems"],
		"lowStockItems":     inventory.Summary["lowStockItems"],
		"outOfStockItems":   inventory.Summary["outOfStockItems"],
		"inventoryValue":    inventory.Summary["totalValue"],
	}
	bundle.Breakdowns["bookingsByStatus"] = bookings.Breakdowns["byStatus"]
	bundle.Breakdowns["invoicesByStatus"] = payments.Breakdowns["byStatus"]
	bundle.Breakdowns["jobsByStatus"] = jobs.Breakdowns["byStatus"]
	bundle.Breakdowns["stockByCategory"] = inventory.Breakdowns["byCategory"]

	return bundle, nil
}
