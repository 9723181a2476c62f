package models

import "time"

// ProductType adalah jenis barang yang dilayani (kemeja, karpet, gorden, ...).
// IsDimensionBased menentukan strategi harga: true -> harga dihitung dari
// panjang x lebar (meter), false -> harga flat per item.
type ProductType struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CategoryID       uint            `gorm:"not null" json:"category_id"`
	Category         ProductCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	IsDimensionBased bool            `gorm:"not null;default:false" json:"is_dimension_based"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

// PricingStrategy mengembalikan tag strategi harga untuk item keranjang.
func (pt *ProductType) PricingStrategy() string {
	if pt.IsDimensionBased {
		return PricingDimensionBased
	}
	return PricingFixed
}

const (
	PricingFixed          = "fixed"
	PricingDimensionBased = "dimension_based"
)
