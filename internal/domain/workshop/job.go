package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job is a unit of work carried out by a technician against a booking.
type Job struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobNumber      string     `gorm:"size:32;uniqueIndex;not null"`
	BookingID      *uuid.UUID `gorm:"type:uuid;index"`
	Title          string     `gorm:"size:255;not null"`
	Category       string     `gorm:"size:64;not null;index"`
	Status         string     `gorm:"size:32;not null;index"`
	Priority       string     `gorm:"size:32;not null;default:normal"`
	TechnicianID   *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedHours decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	ActualHours    decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	CompletedAt    *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Technician *User `gorm:"foreignKey:TechnicianID"`
}

// TableName returns the table name for GORM
func (Job) TableName() string {
	return "jobs"
}

// TechnicianName returns the populated technician name or "N/A" when the
// job is unassigned or the reference is missing.
func (j *Job) TechnicianName() string {
	if j.Technician == nil {
		return "N/A"
	}
	return DisplayOrNA(j.Technician.Name)
}
