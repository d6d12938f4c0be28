package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/domain/workshop"
)

// GormReportSource implements report.Source using GORM.
// Date ranges are applied inclusively at both bounds; callers normalize
// the upper bound to end of day before it reaches this layer.
type GormReportSource struct {
	db *gorm.DB
}

// NewGormReportSource creates a new GormReportSource
func NewGormReportSource(db *gorm.DB) *GormReportSource {
	return &GormReportSource{db: db}
}

func applyRange(query *gorm.DB, column string, r report.DateRange) *gorm.DB {
	if r.From != nil {
		query = query.Where(column+" >= ?", *r.From)
	}
	if r.To != nil {
		query = query.Where(column+" <= ?", *r.To)
	}
	return query
}

// ListBookings returns bookings matching the filter with customer and
// vehicle associations loaded.
func (s *GormReportSource) ListBookings(ctx context.Context, filter report.BookingFilter) ([]workshop.Booking, error) {
	query := s.db.WithContext(ctx).Model(&workshop.Booking{}).
		Preload("Customer").
		Preload("Vehicle")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	query = applyRange(query, "scheduled_date", filter.Range)

	var bookings []workshop.Booking
	if err := query.Order("scheduled_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListInvoices returns invoices matching the filter with the customer
// association loaded.
func (s *GormReportSource) ListInvoices(ctx context.Context, filter report.PaymentFilter) ([]workshop.Invoice, error) {
	query := s.db.WithContext(ctx).Model(&workshop.Invoice{}).
		Preload("Customer")

	if filter.PaymentStatus != "" {
		query = query.Where("status = ?", filter.PaymentStatus)
	}
	query = applyRange(query, "issue_date", filter.Range)

	var invoices []workshop.Invoice
	if err := query.Order("issue_date ASC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListJobs returns jobs matching the filter with the technician
// association loaded.
func (s *GormReportSource) ListJobs(ctx context.Context, filter report.JobFilter) ([]workshop.Job, error) {
	query := s.db.WithContext(ctx).Model(&workshop.Job{}).
		Preload("Technician")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	query = applyRange(query, "created_at", filter.Range)

	var jobs []workshop.Job
	if err := query.Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListLeaveRequests returns leave requests whose start/end interval
// overlaps the filter range.
func (s *GormReportSource) ListLeaveRequests(ctx context.Context, filter report.LeaveFilter) ([]workshop.LeaveRequest, error) {
	query := s.db.WithContext(ctx).Model(&workshop.LeaveRequest{}).
		Preload("Employee")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		query = query.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Range.From != nil {
		query = query.Where("end_date >= ?", *filter.Range.From)
	}
	if filter.Range.To != nil {
		query = query.Where("start_date <= ?", *filter.Range.To)
	}

	var leaves []workshop.LeaveRequest
	if err := query.Order("start_date ASC").Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

// ListInventoryItems returns inventory items matching the filter. Stock
// classification mirrors the domain predicates: out of stock means zero
// or negative stock, low stock means at or below the minimum but still
// positive.
func (s *GormReportSource) ListInventoryItems(ctx context.Context, filter report.InventoryFilter) ([]workshop.InventoryItem, error) {
	query := s.db.WithContext(ctx).Model(&workshop.InventoryItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.OutOfStock {
		query = query.Where("current_stock <= 0")
	} else if filter.LowStock {
		query = query.Where("current_stock > 0 AND current_stock <= minimum_stock")
	}

	var items []workshop.InventoryItem
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListUsers returns staff accounts matching the filter.
func (s *GormReportSource) ListUsers(ctx context.Context, filter report.UserFilter) ([]workshop.User, error) {
	query := s.db.WithContext(ctx).Model(&workshop.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Specialization != "" {
		query = query.Where("specialization = ?", filter.Specialization)
	}
	query = applyRange(query, "created_at", filter.Range)

	var users []workshop.User
	if err := query.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

var _ report.Source = (*GormReportSource)(nil)
