// Package cart holds the in-progress order a cashier is building: line items
// with price snapshots, tax/total computation, and checkout into an immutable
// order ready for submission. It does no I/O; persistence and menu lookups
// belong to the caller.
package cart

import (
	"errors"
	"time"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeAway OrderType = "take_away"
)

// DefaultTaxRateBP is 10% in basis points.
const DefaultTaxRateBP int64 = 1000

var (
	ErrItemUnavailable     = errors.New("menu item is not available")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidPrice        = errors.New("unit price must not be negative")
	ErrLineNotFound        = errors.New("line not found in cart")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name and table number are required for dine-in")
)

// MenuItem is the slice of the catalog record the cart needs. Price is in the
// smallest currency unit.
type MenuItem struct {
	ID          uint
	Name        string
	Category    string
	Price       int64
	IsAvailable bool
}

// Line is one menu item in the cart. Name and UnitPrice are snapshots taken
// when the item was added; later catalog changes do not touch them.
type Line struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Notes      string `json:"notes,omitempty"`
}

func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// FinalizedOrder is the immutable snapshot Checkout produces. The engine does
// not persist it; that is the order API's job.
type FinalizedOrder struct {
	OrderNumber  string    `json:"orderNumber"`
	Lines        []Line    `json:"lines"`
	Subtotal     int64     `json:"subtotal"`
	Tax          int64     `json:"tax"`
	Total        int64     `json:"total"`
	OrderType    OrderType `json:"orderType"`
	CustomerName string    `json:"customerName"`
	TableNumber  string    `json:"tableNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Cart is one order in progress. Not safe for concurrent use; each cashier
// session owns exactly one.
type Cart struct {
	lines        map[uint]*Line
	order        []uint // menu item ids in insertion order
	orderType    OrderType
	customerName string
	tableNumber  string
	taxRateBP    int64
}

func New(taxRateBP int64) *Cart {
	if taxRateBP < 0 {
		taxRateBP = DefaultTaxRateBP
	}
	return &Cart{
		lines:     make(map[uint]*Line),
		orderType: OrderTypeDineIn,
		taxRateBP: taxRateBP,
	}
}

// AddItem puts qty of item into the cart. Adding an item already present
// increments its quantity and replaces its notes; the unit price stays the one
// snapshotted on first add.
func (c *Cart) AddItem(item MenuItem, qty int, notes string) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	if !item.IsAvailable {
		return ErrItemUnavailable
	}
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity += qty
		if notes != "" {
			line.Notes = notes
		}
		return nil
	}
	c.lines[item.ID] = &Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Quantity:   qty,
		UnitPrice:  item.Price,
		Notes:      notes,
	}
	c.order = append(c.order, item.ID)
	return nil
}

// RemoveItem drops the whole line. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(menuItemID uint) {
	if _, ok := c.lines[menuItemID]; !ok {
		return
	}
	delete(c.lines, menuItemID)
	for i, id := range c.order {
		if id == menuItemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetQuantity overwrites a line's quantity. Zero is rejected; use RemoveItem
// to take a line out.
func (c *Cart) SetQuantity(menuItemID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	line, ok := c.lines[menuItemID]
	if !ok {
		return ErrLineNotFound
	}
	line.Quantity = qty
	return nil
}

func (c *Cart) SetNotes(menuItemID uint, notes string) error {
	line, ok := c.lines[menuItemID]
	if !ok {
		return ErrLineNotFound
	}
	line.Notes = notes
	return nil
}

func (c *Cart) SetOrderType(t OrderType) {
	c.orderType = t
}

func (c *Cart) OrderType() OrderType { return c.orderType }

func (c *Cart) SetCustomer(name, tableNumber string) {
	c.customerName = name
	c.tableNumber = tableNumber
}

func (c *Cart) CustomerName() string { return c.customerName }
func (c *Cart) TableNumber() string  { return c.tableNumber }

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy of the lines in the order items were first added.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Totals prices the cart. Tax is rounded half-up to the smallest currency
// unit. An empty cart prices to all zeros.
func (c *Cart) Totals() Totals {
	var subtotal int64
	for _, line := range c.lines {
		subtotal += line.Total()
	}
	tax := roundHalfUpBP(subtotal, c.taxRateBP)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// roundHalfUpBP computes amount*rateBP/10000 rounded half-up.
func roundHalfUpBP(amount, rateBP int64) int64 {
	return (amount*rateBP + 5000) / 10000
}

// ValidateForCheckout reports whether the cart can become an order: it must
// have lines, and dine-in orders need a customer name and table number.
func (c *Cart) ValidateForCheckout() error {
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	if c.orderType == OrderTypeDineIn && (c.customerName == "" || c.tableNumber == "") {
		return ErrMissingCustomerInfo
	}
	return nil
}

// Checkout validates the cart and snapshots it into a FinalizedOrder with a
// fresh order number. The cart is left intact so a failed submission can be
// retried; callers clear it explicitly once the order is stored.
func (c *Cart) Checkout() (*FinalizedOrder, error) {
	if err := c.ValidateForCheckout(); err != nil {
		return nil, err
	}
	totals := c.Totals()
	return &FinalizedOrder{
		OrderNumber:  NewOrderNumber(),
		Lines:        c.Lines(),
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		OrderType:    c.orderType,
		CustomerName: c.customerName,
		TableNumber:  c.tableNumber,
		CreatedAt:    time.Now(),
	}, nil
}

// Clear empties the lines and customer fields. The order type is kept, since
// cashiers usually stay in the same mode between orders.
func (c *Cart) Clear() {
	c.lines = make(map[uint]*Line)
	c.order = nil
	c.customerName = ""
	c.tableNumber = ""
}
