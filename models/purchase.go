package models

import "time"

const (
	PurchaseStatusOrdered   = "ordered"
	PurchaseStatusReceived  = "received"
	PurchaseStatusCancelled = "cancelled"
)

type Purchase struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SupplierID   uint           `gorm:"not null" json:"supplier_id"`
	Supplier     Supplier       `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"supplier"`
	Status       string         `gorm:"type:varchar(20);not null;default:'ordered'" json:"status"`
	TotalAmount  float64        `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	PurchaseDate time.Time      `gorm:"not null;index" json:"purchase_date"`
	Items        []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
}

type PurchaseItem struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	PurchaseID      uint          `gorm:"not null" json:"purchase_id"`
	Purchase        Purchase      `gorm:"foreignKey:PurchaseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	InventoryItemID uint          `gorm:"not null" json:"inventory_item_id"`
	InventoryItem   InventoryItem `gorm:"foreignKey:InventoryItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"inventory_item"`
	Quantity        float64       `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitCost        float64       `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	Subtotal        float64       `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	CreatedAt       time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updated_at"`
}
