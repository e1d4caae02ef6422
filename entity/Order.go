package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	gorm.Model
	OrderNumber  string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	OrderType    string `gorm:"not null" json:"orderType"` // dine_in / take_away
	CustomerName string `json:"customerName"`
	TableNumber  string `json:"tableNumber"`

	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`

	Status string `gorm:"index;not null;default:pending" json:"status"`

	UserID uint `json:"userId"` // cashier who took the order
	User   User `json:"-"`

	Items   []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Payment *Payment    `json:"-"`
}
