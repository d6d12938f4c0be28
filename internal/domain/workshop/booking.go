package workshop

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a vehicle owner who books services.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255"`
	Phone     string    `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// Vehicle is a customer's registered vehicle.
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Make         string    `gorm:"size:128"`
	Model        string    `gorm:"size:128"`
	Year         int
	LicensePlate string `gorm:"size:32"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// Descriptor returns a human-readable vehicle description for report rows,
// e.g. "2021 Toyota Corolla (ABC-1234)". Missing pieces are omitted; a
// vehicle with no data at all yields "N/A".
func (v *Vehicle) Descriptor() string {
	if v == nil {
		return "N/A"
	}
	parts := make([]string, 0, 3)
	if v.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", v.Year))
	}
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	desc := strings.Join(parts, " ")
	if v.LicensePlate != "" {
		if desc != "" {
			desc = fmt.Sprintf("%s (%s)", desc, v.LicensePlate)
		} else {
			desc = v.LicensePlate
		}
	}
	if desc == "" {
		return "N/A"
	}
	return desc
}

// Booking is a scheduled service appointment.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingNumber string    `gorm:"size:32;uniqueIndex;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceType   string    `gorm:"size:64;not null;index"`
	Status        string    `gorm:"size:32;not null;index"`
	Priority      string    `gorm:"size:32;not null;default:normal"`
	ScheduledDate time.Time `gorm:"not null;index"`
	EstimatedCost decimal.Decimal `gorm:"type:decimal(18,2);default:0"`
	ActualCost    decimal.NullDecimal `gorm:"type:decimal(18,2)"`
	Notes         string              `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Associations - populated for report rows
	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID"`
}

// TableName returns the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// CustomerName returns the populated customer name, degrading a missing
// reference to "N/A" rather than failing the row.
func (b *Booking) CustomerName() string {
	if b.Customer == nil {
		return "N/A"
	}
	return DisplayOrNA(b.Customer.Name)
}

// VehicleInfo returns the populated vehicle descriptor for display.
func (b *Booking) VehicleInfo() string {
	return b.Vehicle.Descriptor()
}
