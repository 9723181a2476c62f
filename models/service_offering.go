package models

import "time"

// ServiceOffering adalah unit jual: satu ProductType + satu ServiceAction.
// Price dipakai untuk strategi fixed, PricePerSquareMeter untuk
// dimension_based. Keduanya hanya harga default; harga final selalu lewat
// quote (lihat package pricing).
type ServiceOffering struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	ProductTypeID       uint          `gorm:"not null;index:idx_offering_combo,unique" json:"product_type_id"`
	ProductType         ProductType   `gorm:"foreignKey:ProductTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product_type"`
	ServiceActionID     uint          `gorm:"not null;index:idx_offering_combo,unique" json:"service_action_id"`
	ServiceAction       ServiceAction `gorm:"foreignKey:ServiceActionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service_action"`
	Name                string        `gorm:"type:varchar(255);not null" json:"name"`
	Price               float64       `gorm:"type:decimal(12,2);not null;default:0.00" json:"price"`
	PricePerSquareMeter float64       `gorm:"type:decimal(12,2);not null;default:0.00" json:"price_per_square_meter"`
	// Tanpa tag default: gorm membuang nilai false saat Create bila field
	// punya default, jadi nilai Active selalu diisi eksplisit oleh pemanggil.
	Active              bool          `gorm:"not null" json:"active"`
	CreatedAt           time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"not null" json:"updated_at"`
}

// CustomerPrice meng-override harga default sebuah offering untuk satu
// customer (harga langganan). Inilah sebabnya quote bersifat per-customer.
type CustomerPrice struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CustomerID          uint            `gorm:"not null;index:idx_customer_offering,unique" json:"customer_id"`
	Customer            Customer        `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServiceOfferingID   uint            `gorm:"not null;index:idx_customer_offering,unique" json:"service_offering_id"`
	ServiceOffering     ServiceOffering `gorm:"foreignKey:ServiceOfferingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Price               float64         `gorm:"type:decimal(12,2);not null;default:0.00" json:"price"`
	PricePerSquareMeter float64         `gorm:"type:decimal(12,2);not null;default:0.00" json:"price_per_square_meter"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}
