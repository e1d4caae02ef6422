package repository

import (
	"time"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("order_number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter narrows List; zero values are ignored.
type OrderFilter struct {
	Status string
	Active bool // pending or processing
	Number string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	OrderType    string    `json:"orderType"`
	CustomerName string    `json:"customerName"`
	TableNumber  string    `json:"tableNumber"`
	Total        int64     `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) List(f OrderFilter) ([]OrderSummary, int64, error) {
	page, limit := f.Page, f.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Active {
		q = q.Where("status IN ?", []string{entity.OrderStatusPending, entity.OrderStatusProcessing})
	}
	if f.Number != "" {
		q = q.Where("order_number = ?", f.Number)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("id, order_number, order_type, customer_name, table_number, total, status, created_at").
		Order("id DESC").Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips the status only when the current value matches,
// so concurrent terminals cannot double-apply a transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
