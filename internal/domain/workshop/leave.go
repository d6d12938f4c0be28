package workshop

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequest is an employee's request for time off.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveType  string    `gorm:"size:32;not null;index"`
	Status     string    `gorm:"size:32;not null;index"`
	StartDate  time.Time `gorm:"not null;index"`
	EndDate    time.Time `gorm:"not null;index"`
	Reason     string    `gorm:"type:text"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *User `gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for GORM
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// EmployeeName returns the populated employee name or "N/A".
func (l *LeaveRequest) EmployeeName() string {
	if l.Employee == nil {
		return "N/A"
	}
	return DisplayOrNA(l.Employee.Name)
}

// Days returns the inclusive number of calendar days the leave spans.
// A request ending before it starts counts as zero days.
func (l *LeaveRequest) Days() int {
	start := l.StartDate.Truncate(24 * time.Hour)
	end := l.EndDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
