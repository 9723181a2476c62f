package models

import "time"

// Sumber harga sebuah item: hasil quote server atau harga default offering
// (fallback saat checkout terjadi sebelum quote settle).
const (
	PriceSourceQuoted  = "quoted"
	PriceSourceDefault = "default"
)

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Order disembunyikan dari JSON agar tidak nested rekursif
	Order             Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServiceOfferingID uint            `gorm:"not null" json:"service_offering_id"`
	ServiceOffering   ServiceOffering `gorm:"foreignKey:ServiceOfferingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service_offering"`
	PricingStrategy   string          `gorm:"type:varchar(20);not null;default:'fixed'" json:"pricing_strategy"`
	Quantity          int             `gorm:"not null" json:"quantity"`
	LengthMeters      *float64        `gorm:"type:decimal(8,2)" json:"length_meters,omitempty"`
	WidthMeters       *float64        `gorm:"type:decimal(8,2)" json:"width_meters,omitempty"`
	UnitPrice         float64         `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Subtotal          float64         `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	AppliedUnit       string          `gorm:"type:varchar(20)" json:"applied_unit"`
	PriceSource       string          `gorm:"type:varchar(20);not null;default:'quoted'" json:"price_source"`
	Notes             string          `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}
