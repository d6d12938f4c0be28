package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pitstop/backend/internal/domain/report"
	"github.com/pitstop/backend/internal/domain/workshop"
)

// setupReportSourceDB creates an in-memory SQLite database with the
// workshop schema for testing
func setupReportSourceDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&workshop.Customer{},
		&workshop.Vehicle{},
		&workshop.Booking{},
		&workshop.Invoice{},
		&workshop.User{},
		&workshop.Job{},
		&workshop.LeaveRequest{},
		&workshop.InventoryItem{},
	)
	require.NoError(t, err)

	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(t *testing.T, db *gorm.DB, status string, scheduled time.Time) workshop.Booking {
	t.Helper()

	customer := workshop.Customer{ID: uuid.New(), Name: "Dana Cole"}
	require.NoError(t, db.Create(&customer).Error)

	vehicle := workshop.Vehicle{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		LicensePlate: "ABC-1234",
	}
	require.NoError(t, db.Create(&vehicle).Error)

	booking := workshop.Booking{
		ID:            uuid.New(),
		BookingNumber: "BK-" + uuid.New().String()[:8],
		CustomerID:    customer.ID,
		VehicleID:     vehicle.ID,
		ServiceType:   "oil_change",
		Status:        status,
		Priority:      workshop.PriorityNormal,
		ScheduledDate: scheduled,
		EstimatedCost: decimal.NewFromInt(120),
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func TestGormReportSource_ListBookings_DateRangeInclusive(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	seedBooking(t, db, workshop.BookingStatusCompleted, day(2024, 3, 1))
	seedBooking(t, db, workshop.BookingStatusCompleted, day(2024, 3, 15))
	seedBooking(t, db, workshop.BookingStatusCompleted, day(2024, 3, 31))
	seedBooking(t, db, workshop.BookingStatusCompleted, day(2024, 4, 1))

	from := day(2024, 3, 1)
	to := day(2024, 3, 31)
	bookings, err := source.ListBookings(ctx, report.BookingFilter{
		Range: report.DateRange{From: &from, To: &to},
	})

	require.NoError(t, err)
	require.Len(t, bookings, 3)
	// Both boundary dates are included
	assert.Equal(t, day(2024, 3, 1), bookings[0].ScheduledDate.UTC())
	assert.Equal(t, day(2024, 3, 31), bookings[2].ScheduledDate.UTC())
}

func TestGormReportSource_ListBookings_StatusFilterAndPreloads(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	seedBooking(t, db, workshop.BookingStatusCompleted, day(2024, 3, 10))
	seedBooking(t, db, workshop.BookingStatusPending, day(2024, 3, 11))

	bookings, err := source.ListBookings(ctx, report.BookingFilter{Status: workshop.BookingStatusCompleted})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Customer)
	require.NotNil(t, bookings[0].Vehicle)
	assert.Equal(t, "Dana Cole", bookings[0].Customer.Name)
	assert.Equal(t, "2021 Toyota Corolla (ABC-1234)", bookings[0].Vehicle.Descriptor())
}

func TestGormReportSource_ListInvoices_IssueDateRange(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	customer := workshop.Customer{ID: uuid.New(), Name: "Sam Ortiz"}
	require.NoError(t, db.Create(&customer).Error)

	for i, issue := range []time.Time{day(2024, 2, 28), day(2024, 3, 1), day(2024, 3, 31)} {
		invoice := workshop.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "INV-" + uuid.New().String()[:8],
			CustomerID:    customer.ID,
			Status:        workshop.InvoiceStatusPaid,
			IssueDate:     issue,
			Subtotal:      decimal.NewFromInt(int64(100 * (i + 1))),
			Total:         decimal.NewFromInt(int64(110 * (i + 1))),
		}
		require.NoError(t, db.Create(&invoice).Error)
	}

	from := day(2024, 3, 1)
	invoices, err := source.ListInvoices(ctx, report.PaymentFilter{
		Range: report.DateRange{From: &from},
	})

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, day(2024, 3, 1), invoices[0].IssueDate.UTC())
}

func TestGormReportSource_ListJobs_TechnicianFilter(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	tech := workshop.User{
		ID:           uuid.New(),
		Name:         "Riley Park",
		Email:        "riley@pitstop.test",
		PasswordHash: "x",
		Role:         workshop.RoleTechnician,
		Status:       workshop.UserStatusActive,
	}
	require.NoError(t, db.Create(&tech).Error)

	mine := workshop.Job{
		ID:           uuid.New(),
		JobNumber:    "JOB-0001",
		Title:        "Brake pad replacement",
		Category:     workshop.JobCategoryMechanical,
		Status:       workshop.JobStatusInProgress,
		Priority:     workshop.PriorityHigh,
		TechnicianID: &tech.ID,
	}
	unassigned := workshop.Job{
		ID:        uuid.New(),
		JobNumber: "JOB-0002",
		Title:     "Engine diagnostics",
		Category:  workshop.JobCategoryDiagnostics,
		Status:    workshop.JobStatusPending,
		Priority:  workshop.PriorityNormal,
	}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&unassigned).Error)

	jobs, err := source.ListJobs(ctx, report.JobFilter{TechnicianID: &tech.ID})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "JOB-0001", jobs[0].JobNumber)
	require.NotNil(t, jobs[0].Technician)
	assert.Equal(t, "Riley Park", jobs[0].Technician.Name)
}

func TestGormReportSource_ListLeaveRequests_OverlapSemantics(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	employee := workshop.User{
		ID:           uuid.New(),
		Name:         "Avery Kim",
		Email:        "avery@pitstop.test",
		PasswordHash: "x",
		Role:         workshop.RoleTechnician,
		Status:       workshop.UserStatusActive,
	}
	require.NoError(t, db.Create(&employee).Error)

	makeLeave := func(start, end time.Time) {
		leave := workshop.LeaveRequest{
			ID:         uuid.New(),
			EmployeeID: employee.ID,
			LeaveType:  workshop.LeaveTypeAnnual,
			Status:     workshop.LeaveStatusApproved,
			StartDate:  start,
			EndDate:    end,
		}
		require.NoError(t, db.Create(&leave).Error)
	}

	// Ends inside the range, starts inside, spans the whole range, fully outside
	makeLeave(day(2024, 2, 25), day(2024, 3, 2))
	makeLeave(day(2024, 3, 30), day(2024, 4, 3))
	makeLeave(day(2024, 2, 1), day(2024, 4, 30))
	makeLeave(day(2024, 5, 1), day(2024, 5, 5))

	from := day(2024, 3, 1)
	to := day(2024, 3, 31)
	leaves, err := source.ListLeaveRequests(ctx, report.LeaveFilter{
		Range: report.DateRange{From: &from, To: &to},
	})

	require.NoError(t, err)
	assert.Len(t, leaves, 3)
}

func TestGormReportSource_ListInventoryItems_StockFilters(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	seed := func(name string, current, minimum int) {
		item := workshop.InventoryItem{
			ID:           uuid.New(),
			Name:         name,
			PartNumber:   "PN-" + uuid.New().String()[:8],
			Category:     "filters",
			CurrentStock: current,
			MinimumStock: minimum,
			UnitPrice:    decimal.NewFromFloat(9.99),
		}
		require.NoError(t, db.Create(&item).Error)
	}

	seed("Oil filter", 0, 5)   // out of stock
	seed("Air filter", 3, 5)   // low stock
	seed("Cabin filter", 8, 5) // healthy

	low, err := source.ListInventoryItems(ctx, report.InventoryFilter{LowStock: true})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Air filter", low[0].Name)

	out, err := source.ListInventoryItems(ctx, report.InventoryFilter{OutOfStock: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Oil filter", out[0].Name)

	all, err := source.ListInventoryItems(ctx, report.InventoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGormReportSource_ListUsers_RoleAndCreationRange(t *testing.T) {
	db := setupReportSourceDB(t)
	source := NewGormReportSource(db)
	ctx := context.Background()

	seed := func(name, email, role string, createdAt time.Time) {
		user := workshop.User{
			ID:           uuid.New(),
			Name:         name,
			Email:        email,
			PasswordHash: "x",
			Role:         role,
			Status:       workshop.UserStatusActive,
			CreatedAt:    createdAt,
		}
		require.NoError(t, db.Create(&user).Error)
	}

	seed("Riley Park", "riley@pitstop.test", workshop.RoleTechnician, day(2024, 1, 10))
	seed("Avery Kim", "avery@pitstop.test", workshop.RoleTechnician, day(2024, 3, 10))
	seed("Jordan Reyes", "jordan@pitstop.test", workshop.RoleManager, day(2024, 3, 12))

	from := day(2024, 3, 1)
	users, err := source.ListUsers(ctx, report.UserFilter{
		Role:  workshop.RoleTechnician,
		Range: report.DateRange{From: &from},
	})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Avery Kim", users[0].Name)
}
