package controllers

import (
	"errors"
	"strconv"

	"github.com/DonAdhyatma/fe-final-project/pkg/cart"
	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/services"
	"github.com/DonAdhyatma/fe-final-project/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartController drives the cashier's order-in-progress. The cart itself is
// the engine in pkg/cart; orders only reach the database at checkout.
type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(svc *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Svc: svc, Orders: orders}
}

// cartError maps engine errors onto HTTP statuses.
func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "menu not found")
	case errors.Is(err, cart.ErrLineNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, cart.ErrItemUnavailable),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPrice),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrMissingCustomerInfo):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.Get(utils.CurrentUserID(c)))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /cart/items/:menuId
func (h *CartController) SetQuantity(c *gin.Context) {
	menuID, ok := menuIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Qty int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.SetQuantity(utils.CurrentUserID(c), menuID, req.Qty)
	if err != nil {
		cartError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:menuId
func (h *CartController) Remove(c *gin.Context) {
	menuID, ok := menuIDParam(c)
	if !ok {
		return
	}
	resp.OK(c, h.Svc.Remove(utils.CurrentUserID(c), menuID))
}

// PATCH /cart/order-type
func (h *CartController) SetOrderType(c *gin.Context) {
	var req struct {
		OrderType string `json:"orderType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !services.ValidOrderType(req.OrderType) {
		resp.BadRequest(c, services.ErrInvalidOrderType.Error())
		return
	}
	resp.OK(c, h.Svc.SetOrderType(utils.CurrentUserID(c), cart.OrderType(req.OrderType)))
}

// PATCH /cart/customer
func (h *CartController) SetCustomer(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customerName"`
		TableNumber  string `json:"tableNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.SetCustomer(utils.CurrentUserID(c), req.CustomerName, req.TableNumber))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	resp.OK(c, h.Svc.Clear(utils.CurrentUserID(c)))
}

// POST /cart/checkout
// Finalizes the cart, stores the order, and only then clears the cart. If the
// store fails the cart is untouched and the cashier can retry.
func (h *CartController) Checkout(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	fo, err := h.Svc.Checkout(userID)
	if err != nil {
		cartError(c, err)
		return
	}

	order, err := h.Orders.CreateFromCart(userID, fo)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Svc.Clear(userID)

	resp.Created(c, order)
}

func menuIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("menuId"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid menu id")
		return 0, false
	}
	return uint(id), true
}
