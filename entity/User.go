package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:cashier" json:"role"`
	Status   string `gorm:"not null;default:active" json:"status"`

	Orders []Order `json:"-"`
}
