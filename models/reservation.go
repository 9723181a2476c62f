package models

import "time"

const (
	ReservationStatusBooked    = "booked"
	ReservationStatusSeated    = "seated"
	ReservationStatusCancelled = "cancelled"
)

type Reservation struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"not null" json:"customer_id"`
	Customer   Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer"`
	TableID    uint        `gorm:"not null" json:"table_id"`
	Table      DiningTable `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table"`
	ReservedAt time.Time   `gorm:"not null;index" json:"reserved_at"`
	PartySize  int         `gorm:"not null;default:1" json:"party_size"`
	Status     string      `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	Notes      string      `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}
