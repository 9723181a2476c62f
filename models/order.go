package models

import (
	"fmt"
	"time"
)

// Status order mengikuti papan kanban: empat kolom aktif + cancelled.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// BoardStatuses adalah kolom papan kanban, urut kiri ke kanan.
var BoardStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusCompleted,
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(50);unique;not null" json:"order_number"`
	CustomerID  uint        `gorm:"not null;index" json:"customer_id"`
	Customer    Customer    `gorm:"foreignKey:CustomerID" json:"customer"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalAmount float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	PaidAmount  float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"paid_amount"`
	DueAmount   float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"due_amount"`
	// Version naik setiap perubahan status; dipakai papan kanban untuk
	// menolak update yang berdasarkan data basi.
	Version    uint        `gorm:"not null;default:0" json:"version"`
	Notes      string      `gorm:"type:text" json:"notes"`
	OrderDate  time.Time   `gorm:"not null;index" json:"order_date"`
	PickupDate *time.Time  `json:"pickup_date,omitempty"`
	CreatedBy  *uint       `gorm:"index" json:"created_by,omitempty"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
}

// ValidStatus melaporkan apakah s termasuk enumerasi status order.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition memeriksa apakah perpindahan status diizinkan.
// pending -> processing -> ready -> completed; selain completed boleh
// dibatalkan kapan saja.
func CanTransition(from, to string) bool {
	if from == to {
		return false
	}
	if to == OrderStatusCancelled {
		return from != OrderStatusCompleted
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing
	case OrderStatusProcessing:
		return to == OrderStatusReady
	case OrderStatusReady:
		return to == OrderStatusCompleted
	}
	return false
}

func (o *Order) DisplayNumber() string {
	return fmt.Sprintf("ORD-%s", o.OrderNumber)
}
