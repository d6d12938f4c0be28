package report

import (
	"time"

	"github.com/google/uuid"
)

// DateRange is an inclusive range over a report-type-specific date field.
// Either bound may be nil (open range).
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Inverted reports whether both bounds are set with From after To.
// The HTTP boundary rejects inverted ranges before aggregation runs;
// the aggregator never swaps or silently drops them.
func (r DateRange) Inverted() bool {
	return r.From != nil && r.To != nil && r.From.After(*r.To)
}

// Contains reports whether t falls within the range, inclusive at both
// bounds.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// BookingFilter selects bookings for aggregation. The range constrains
// the scheduled date.
type BookingFilter struct {
	Status      string
	ServiceType string
	Priority    string
	Range       DateRange
}

// PaymentFilter selects invoices. The range constrains the issue date.
type PaymentFilter struct {
	PaymentStatus string
	Range         DateRange
}

// JobFilter selects jobs. The range constrains the creation date.
type JobFilter struct {
	Status       string
	Category     string
	Priority     string
	TechnicianID *uuid.UUID
	Range        DateRange
}

// LeaveFilter selects leave requests. The range matches any leave whose
// start/end interval overlaps it.
type LeaveFilter struct {
	Status     string
	LeaveType  string
	EmployeeID *uuid.UUID
	Range      DateRange
}

// InventoryFilter selects inventory items. LowStock and OutOfStock narrow
// the result to the respective stock conditions.
type InventoryFilter struct {
	Category   string
	LowStock   bool
	OutOfStock bool
}

// UserFilter selects staff accounts. The range constrains the account
// creation date.
type UserFilter struct {
	Role           string
	Status         string
	Specialization string
	Range          DateRange
}
