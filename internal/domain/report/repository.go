package report

import (
	"context"

	"github.com/pitstop/backend/internal/domain/workshop"
)

// Source is the read-only view of the domain store consumed by the report
// aggregator. Implementations populate referenced display fields (customer,
// vehicle, technician, employee); a missing reference degrades to a nil
// association on the record, never to an error.
//
// Every listing honors its filter's date range inclusively at both bounds.
type Source interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]workshop.Booking, error)
	ListInvoices(ctx context.Context, filter PaymentFilter) ([]workshop.Invoice, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]workshop.Job, error)
	ListLeaveRequests(ctx context.Context, filter LeaveFilter) ([]workshop.LeaveRequest, error)
	ListInventoryItems(ctx context.Context, filter InventoryFilter) ([]workshop.InventoryItem, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]workshop.User, error)
}
