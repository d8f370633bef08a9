package model

import "time"

// InventoryItem is one row of the corner-store inventory table.
type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ItemName     string    `gorm:"size:256;not null" json:"item_name"`
	Price        float64   `gorm:"not null" json:"price"`
	UnitsSold    int       `gorm:"not null;default:0" json:"units_sold"`
	UnitsLeft    int       `gorm:"not null;default:0" json:"units_left"`
	CostPrice    float64   `gorm:"not null" json:"cost_price"`
	ReorderPoint int       `gorm:"not null;default:0" json:"reorder_point"`
	Description  string    `gorm:"size:512" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NeedsReorder reports whether stock has fallen below the reorder point.
func (i *InventoryItem) NeedsReorder() bool {
	return i.UnitsLeft < i.ReorderPoint
}
