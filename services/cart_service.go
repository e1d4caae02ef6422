package services

import (
	"sync"

	"github.com/DonAdhyatma/fe-final-project/pkg/cart"
	"github.com/DonAdhyatma/fe-final-project/repository"
)

// CartService keeps one in-memory cart per cashier session. Carts live only
// for the lifetime of the process; they are never persisted until checkout
// turns them into orders. The mutex guards only the registry map — each cart
// is owned by a single cashier and is never shared between sessions.
type CartService struct {
	mu        sync.Mutex
	carts     map[uint]*cart.Cart
	menuRepo  *repository.MenuRepository
	taxRateBP int64
}

func NewCartService(menuRepo *repository.MenuRepository, taxRateBP int64) *CartService {
	return &CartService{
		carts:     make(map[uint]*cart.Cart),
		menuRepo:  menuRepo,
		taxRateBP: taxRateBP,
	}
}

func (s *CartService) cartFor(userID uint) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = cart.New(s.taxRateBP)
		s.carts[userID] = c
	}
	return c
}

type AddToCartIn struct {
	MenuID uint   `json:"menuId" binding:"required"`
	Qty    int    `json:"qty"`
	Note   string `json:"note"`
}

// CartView is what the ordering screen renders: lines in add order plus the
// running totals and order metadata.
type CartView struct {
	Lines        []cart.Line    `json:"lines"`
	OrderType    cart.OrderType `json:"orderType"`
	CustomerName string         `json:"customerName"`
	TableNumber  string         `json:"tableNumber"`
	Totals       cart.Totals    `json:"totals"`
}

func (s *CartService) view(c *cart.Cart) *CartView {
	return &CartView{
		Lines:        c.Lines(),
		OrderType:    c.OrderType(),
		CustomerName: c.CustomerName(),
		TableNumber:  c.TableNumber(),
		Totals:       c.Totals(),
	}
}

func (s *CartService) Get(userID uint) *CartView {
	return s.view(s.cartFor(userID))
}

// Add looks the item up in the catalog and snapshots its name and price into
// the cart line. Only active items can be added.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*CartView, error) {
	if in.Qty == 0 {
		in.Qty = 1
	}
	m, err := s.menuRepo.FindByID(in.MenuID)
	if err != nil {
		return nil, err
	}

	c := s.cartFor(userID)
	item := cart.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Price:       m.Price,
		IsAvailable: m.IsAvailable(),
	}
	if err := c.AddItem(item, in.Qty, in.Note); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

func (s *CartService) SetQuantity(userID, menuID uint, qty int) (*CartView, error) {
	c := s.cartFor(userID)
	if err := c.SetQuantity(menuID, qty); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

func (s *CartService) Remove(userID, menuID uint) *CartView {
	c := s.cartFor(userID)
	c.RemoveItem(menuID)
	return s.view(c)
}

func (s *CartService) SetOrderType(userID uint, t cart.OrderType) *CartView {
	c := s.cartFor(userID)
	c.SetOrderType(t)
	return s.view(c)
}

func (s *CartService) SetCustomer(userID uint, name, tableNumber string) *CartView {
	c := s.cartFor(userID)
	c.SetCustomer(name, tableNumber)
	return s.view(c)
}

func (s *CartService) Clear(userID uint) *CartView {
	c := s.cartFor(userID)
	c.Clear()
	return s.view(c)
}

// Checkout finalizes the cart into an order snapshot. The cart stays
// populated; callers clear it only after the order is stored, so a failed
// store can be retried without re-entering items.
func (s *CartService) Checkout(userID uint) (*cart.FinalizedOrder, error) {
	return s.cartFor(userID).Checkout()
}

// ValidOrderType guards the order-type toggle coming in over HTTP.
func ValidOrderType(t string) bool {
	return t == string(cart.OrderTypeDineIn) || t == string(cart.OrderTypeTakeAway)
}
