package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is a bill issued for a completed booking.
type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string     `gorm:"size:32;uniqueIndex;not null"`
	BookingID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status        string     `gorm:"size:32;not null;index"` // payment status
	IssueDate     time.Time  `gorm:"not null;index"`
	DueDate       time.Time
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);default:0"`
	Tax           decimal.Decimal `gorm:"type:decimal(18,2);default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);default:0"`
	PaymentMethod string          `gorm:"size:32"`
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// CustomerName returns the populated customer name or "N/A".
func (i *Invoice) CustomerName() string {
	if i.Customer == nil {
		return "N/A"
	}
	return DisplayOrNA(i.Customer.Name)
}

// IsPaid reports whether the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
