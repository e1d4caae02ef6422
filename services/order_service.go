package services

import (
	"errors"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/pkg/cart"
	"github.com/DonAdhyatma/fe-final-project/repository"

	"gorm.io/gorm"
)

var (
	ErrNoItems          = errors.New("order has no items")
	ErrTotalsMismatch   = errors.New("submitted totals do not match line items")
	ErrBadTransition    = errors.New("invalid status transition")
	ErrInvalidOrderType = errors.New("order type must be dine_in or take_away")
)

// OrderNotifier receives order lifecycle events; the websocket hub implements
// it. A nil notifier is fine.
type OrderNotifier interface {
	NotifyOrder(event, orderNumber, status string, total int64)
}

// MenuFinder is the slice of the menu repository the order service needs to
// re-check submitted lines against the catalog.
type MenuFinder interface {
	FindByID(id uint) (*entity.Menu, error)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	MenuRepo  MenuFinder
	Notifier  OrderNotifier
	taxRateBP int64
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo MenuFinder, taxRateBP int64) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, taxRateBP: taxRateBP}
}

func (s *OrderService) notify(event string, o *entity.Order) {
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(event, o.OrderNumber, o.Status, o.Total)
	}
}

// CreateFromCart persists a finalized cart snapshot as a pending order.
func (s *OrderService) CreateFromCart(userID uint, fo *cart.FinalizedOrder) (*entity.Order, error) {
	if len(fo.Lines) == 0 {
		return nil, ErrNoItems
	}

	order := &entity.Order{
		OrderNumber:  fo.OrderNumber,
		OrderType:    string(fo.OrderType),
		CustomerName: fo.CustomerName,
		TableNumber:  fo.TableNumber,
		Subtotal:     fo.Subtotal,
		Tax:          fo.Tax,
		Total:        fo.Total,
		Status:       entity.OrderStatusPending,
		UserID:       userID,
	}
	for _, line := range fo.Lines {
		order.Items = append(order.Items, entity.OrderItem{
			MenuID:    line.MenuItemID,
			MenuName:  line.Name,
			Qty:       line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total(),
			Note:      line.Notes,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}
	s.notify("order_created", order)
	return order, nil
}

// ----- externally priced submissions (POST /orders) -----

type OrderLineIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"min=1"`
	UnitPrice  int64  `json:"unitPrice"`
	Notes      string `json:"notes"`
}

type CreateOrderIn struct {
	OrderType    string        `json:"orderType" binding:"required"`
	CustomerName string        `json:"customerName"`
	TableNumber  string        `json:"tableNumber"`
	Lines        []OrderLineIn `json:"lines" binding:"required"`
	Subtotal     int64         `json:"subtotal"`
	Tax          int64         `json:"tax"`
	Total        int64         `json:"total"`
}

// Create accepts an order priced by the caller and re-validates it through
// the cart engine, so submitted totals can never drift from the line items.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	fo, err := s.priceSubmission(in)
	if err != nil {
		return nil, err
	}
	return s.CreateFromCart(userID, fo)
}

// priceSubmission replays the submitted lines through the cart engine and
// compares the caller's totals against the engine's. The engine rejects
// unavailable items, bad quantities, and negative unit prices on the way.
func (s *OrderService) priceSubmission(in *CreateOrderIn) (*cart.FinalizedOrder, error) {
	if len(in.Lines) == 0 {
		return nil, ErrNoItems
	}
	if !ValidOrderType(in.OrderType) {
		return nil, ErrInvalidOrderType
	}

	c := cart.New(s.taxRateBP)
	c.SetOrderType(cart.OrderType(in.OrderType))
	c.SetCustomer(in.CustomerName, in.TableNumber)
	for _, line := range in.Lines {
		m, err := s.MenuRepo.FindByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		item := cart.MenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Category:    m.Category,
			Price:       line.UnitPrice, // caller's snapshot price wins
			IsAvailable: m.IsAvailable(),
		}
		if err := c.AddItem(item, line.Quantity, line.Notes); err != nil {
			return nil, err
		}
	}

	fo, err := c.Checkout()
	if err != nil {
		return nil, err
	}
	if fo.Subtotal != in.Subtotal || fo.Tax != in.Tax || fo.Total != in.Total {
		return nil, ErrTotalsMismatch
	}
	return fo, nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

func (s *OrderService) ByNumber(number string) (*entity.Order, error) {
	return s.Repo.FindByNumber(number)
}

func (s *OrderService) List(f repository.OrderFilter) ([]repository.OrderSummary, int64, error) {
	return s.Repo.List(f)
}
