package models

import "time"

// InventoryItem adalah bahan habis pakai (deterjen, plastik, hanger, ...).
type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Unit         string    `gorm:"type:varchar(30);not null" json:"unit"` // liter, pcs, kg
	StockLevel   float64   `gorm:"type:decimal(12,2);not null;default:0.00" json:"stock_level"`
	ReorderLevel float64   `gorm:"type:decimal(12,2);not null;default:0.00" json:"reorder_level"`
	CostPerUnit  float64   `gorm:"type:decimal(12,2);not null;default:0.00" json:"cost_per_unit"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BelowReorder melaporkan apakah stok sudah menyentuh batas pemesanan ulang.
func (i *InventoryItem) BelowReorder() bool {
	return i.StockLevel <= i.ReorderLevel
}
