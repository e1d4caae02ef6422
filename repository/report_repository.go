package repository

import (
	"time"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Reports only count completed orders; cancelled and in-flight ones are not
// revenue.

type SalesOverview struct {
	OrderCount int64 `json:"orderCount"`
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	Gross      int64 `json:"gross"`
}

func (r *ReportRepository) SalesOverview(from, to time.Time) (*SalesOverview, error) {
	var out SalesOverview
	err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(subtotal),0) AS subtotal, COALESCE(SUM(tax),0) AS tax, COALESCE(SUM(total),0) AS gross").
		Where("status = ? AND created_at >= ? AND created_at < ?", entity.OrderStatusCompleted, from, to).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type CategorySales struct {
	Category string `json:"category"`
	Qty      int64  `json:"qty"`
	Revenue  int64  `json:"revenue"`
}

func (r *ReportRepository) SalesByCategory(from, to time.Time) ([]CategorySales, error) {
	var out []CategorySales
	err := r.DB.Model(&entity.OrderItem{}).
		Select("menus.category AS category, COALESCE(SUM(order_items.qty),0) AS qty, COALESCE(SUM(order_items.total),0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN menus ON menus.id = order_items.menu_id").
		Where("orders.status = ? AND orders.created_at >= ? AND orders.created_at < ?", entity.OrderStatusCompleted, from, to).
		Group("menus.category").
		Order("revenue DESC").
		Scan(&out).Error
	return out, err
}

type PeriodSales struct {
	Day        string `json:"day"` // YYYY-MM-DD
	OrderCount int64  `json:"orderCount"`
	Gross      int64  `json:"gross"`
}

func (r *ReportRepository) SalesByPeriod(from, to time.Time) ([]PeriodSales, error) {
	var out []PeriodSales
	err := r.DB.Model(&entity.Order{}).
		Select("strftime('%Y-%m-%d', created_at) AS day, COUNT(*) AS order_count, COALESCE(SUM(total),0) AS gross").
		Where("status = ? AND created_at >= ? AND created_at < ?", entity.OrderStatusCompleted, from, to).
		Group("day").
		Order("day").
		Scan(&out).Error
	return out, err
}

type TopMenuItem struct {
	MenuID  uint   `json:"menuId"`
	Name    string `json:"name"`
	Qty     int64  `json:"qty"`
	Revenue int64  `json:"revenue"`
}

func (r *ReportRepository) TopMenuItems(from, to time.Time, limit int) ([]TopMenuItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var out []TopMenuItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_items.menu_id AS menu_id, order_items.menu_name AS name, COALESCE(SUM(order_items.qty),0) AS qty, COALESCE(SUM(order_items.total),0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ? AND orders.created_at >= ? AND orders.created_at < ?", entity.OrderStatusCompleted, from, to).
		Group("order_items.menu_id, order_items.menu_name").
		Order("qty DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

type DashboardStats struct {
	TodayOrders  int64 `json:"todayOrders"`
	TodayRevenue int64 `json:"todayRevenue"`
	ActiveOrders int64 `json:"activeOrders"`
	MenuCount    int64 `json:"menuCount"`
}

func (r *ReportRepository) Dashboard(now time.Time) (*DashboardStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var out DashboardStats
	err := r.DB.Model(&entity.Order{}).
		Where("status = ? AND created_at >= ?", entity.OrderStatusCompleted, dayStart).
		Count(&out.TodayOrders).Error
	if err != nil {
		return nil, err
	}
	err = r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total),0)").
		Where("status = ? AND created_at >= ?", entity.OrderStatusCompleted, dayStart).
		Scan(&out.TodayRevenue).Error
	if err != nil {
		return nil, err
	}
	err = r.DB.Model(&entity.Order{}).
		Where("status IN ?", []string{entity.OrderStatusPending, entity.OrderStatusProcessing}).
		Count(&out.ActiveOrders).Error
	if err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Menu{}).Count(&out.MenuCount).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
