package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked part or supply.
type InventoryItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:255;not null"`
	PartNumber    string    `gorm:"size:64;uniqueIndex"`
	Category      string    `gorm:"size:64;not null;index"`
	CurrentStock  int       `gorm:"not null;default:0"`
	MinimumStock  int       `gorm:"not null;default:0"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,2);default:0"`
	Supplier      string          `gorm:"size:255"`
	LastRestocked *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsOutOfStock reports whether the item has no usable stock.
// Out-of-stock is the more specific condition and wins over low-stock.
func (i *InventoryItem) IsOutOfStock() bool {
	return i.CurrentStock <= 0
}

// IsLowStock reports whether the item is at or below its minimum
// stock threshold. Out-of-stock items also satisfy this predicate;
// callers building alert lists must exclude them explicitly.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

// StockValue returns the total value of the stock on hand. Negative
// stock counts contribute zero rather than a negative value.
func (i *InventoryItem) StockValue() decimal.Decimal {
	if i.CurrentStock <= 0 {
		return decimal.Zero
	}
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
