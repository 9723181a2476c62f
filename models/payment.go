package models

import "time"

// Payment represents a payment recorded against an order
type Payment struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	OrderID       uint       `json:"order_id" gorm:"not null;index"`
	Order         Order      `json:"order" gorm:"foreignKey:OrderID"`
	Amount        float64    `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod string     `json:"payment_method" gorm:"type:varchar(20);not null;default:'cash'"`
	ReferenceID   string     `json:"reference_id" gorm:"type:varchar(100)"`
	CashReceived  float64    `json:"cash_received" gorm:"type:decimal(12,2);default:0.00"` // untuk pembayaran cash
	Change        float64    `json:"change" gorm:"type:decimal(12,2);default:0.00"`
	PaymentTime   *time.Time `json:"payment_time"`
	RecordedBy    *uint      `json:"recorded_by"` // staff yang mencatat pembayaran
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

const (
	PaymentMethodCash         = "cash"
	PaymentMethodQRIS         = "qris"
	PaymentMethodBankTransfer = "bank_transfer"
)

// ValidPaymentMethod melaporkan apakah m termasuk metode yang didukung.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodQRIS, PaymentMethodBankTransfer:
		return true
	}
	return false
}
