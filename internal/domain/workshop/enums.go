package workshop

import "strings"

// Booking statuses
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Service types offered by the service center
const (
	ServiceTypeMaintenance = "maintenance"
	ServiceTypeRepair      = "repair"
	ServiceTypeInspection  = "inspection"
	ServiceTypeBodywork    = "bodywork"
	ServiceTypeDetailing   = "detailing"
)

// Priorities shared by bookings and jobs
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Invoice payment statuses
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Job statuses
const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusOnHold     = "on_hold"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job categories
const (
	JobCategoryMechanical  = "mechanical"
	JobCategoryElectrical  = "electrical"
	JobCategoryBodywork    = "bodywork"
	JobCategoryDiagnostics = "diagnostics"
	JobCategoryGeneral     = "general"
)

// Leave request statuses
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Leave types
const (
	LeaveTypeAnnual = "annual"
	LeaveTypeSick   = "sick"
	LeaveTypeCasual = "casual"
	LeaveTypeUnpaid = "unpaid"
)

// Inventory categories
const (
	InventoryCategoryParts       = "parts"
	InventoryCategoryFluids      = "fluids"
	InventoryCategoryTires       = "tires"
	InventoryCategoryAccessories = "accessories"
	InventoryCategoryConsumables = "consumables"
)

// User roles
const (
	RoleAdmin          = "admin"
	RoleManager        = "manager"
	RoleCashier        = "cashier"
	RoleServiceAdvisor = "service_advisor"
	RoleTechnician     = "technician"
)

// User account statuses
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// CategoryUnknown is the bucket for missing or unrecognized categorical
// values. Report breakdowns must never drop a record because its category
// is absent; it degrades here instead.
const CategoryUnknown = "unknown"

// NormalizeCategory lowercases and trims a categorical field value,
// degrading empty values to CategoryUnknown.
func NormalizeCategory(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return CategoryUnknown
	}
	return v
}

// DisplayOrNA returns the value for display rows, substituting "N/A"
// for missing values.
func DisplayOrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
