package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const PaymentMethodCash = "cash"

type Payment struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"` // one payment per order
	Order   Order `json:"-"`

	Method   string `gorm:"not null;default:cash" json:"method"`
	Amount   int64  `json:"amount"`   // order total at payment time
	Received int64  `json:"received"` // cash handed over
	Change   int64  `json:"change"`
	Status   string `gorm:"not null;default:paid" json:"status"`
}
