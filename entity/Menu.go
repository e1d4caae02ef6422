package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryFoods     = "foods"
	CategoryBeverages = "beverages"
	CategoryDesserts  = "desserts"
)

const (
	MenuStatusActive     = "active"
	MenuStatusInactive   = "inactive"
	MenuStatusOutOfStock = "out_of_stock"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"index;not null" json:"category"`
	Price       int64  `gorm:"not null" json:"price"` // smallest currency unit
	Status      string `gorm:"not null;default:active" json:"status"`

	// Image stored as a blob; not serialized, served from its own endpoint.
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"` // e.g. "image/jpeg"
	ImageSize int64  `json:"-"`

	OrderItems []OrderItem `json:"-"`
}

// IsAvailable reports whether the item can be added to a cart.
func (m *Menu) IsAvailable() bool {
	return m.Status == MenuStatusActive
}
