package models

import "time"

// Role mengelompokkan user dan menentukan halaman/aksi yang boleh diakses
// lewat daftar NavigationItem (role_permissions).
type Role struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Permissions []NavigationItem `gorm:"many2many:role_permissions" json:"permissions"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NavigationItem adalah satu entri menu/permission, mis. "orders.create".
type NavigationItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"type:varchar(100);unique;not null" json:"key"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPermission memeriksa apakah role memiliki permission key tertentu.
func (r *Role) HasPermission(key string) bool {
	for _, p := range r.Permissions {
		if p.Key == key {
			return true
		}
	}
	return false
}
