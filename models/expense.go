package models

import "time"

type ExpenseCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	Category    ExpenseCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Amount      float64         `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	ExpenseDate time.Time       `gorm:"not null;index" json:"expense_date"`
	RecordedBy  *uint           `json:"recorded_by,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
