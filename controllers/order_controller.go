package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/repository"
	"github.com/DonAdhyatma/fe-final-project/services"
	"github.com/DonAdhyatma/fe-final-project/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc      *services.OrderService
	Payments *services.PaymentService
}

func NewOrderController(svc *services.OrderService, payments *services.PaymentService) *OrderController {
	return &OrderController{Svc: svc, Payments: payments}
}

// GET /orders?status=&active=&number=&from=&to=&page=&limit=
// Dates are YYYY-MM-DD; "to" is inclusive of that day.
func (h *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Active: c.Query("active") == "true",
		Number: c.Query("number"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		end := t.AddDate(0, 0, 1)
		f.To = &end
	}

	orders, total, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/payment
func (h *OrderController) Payment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payment, err := h.Payments.ByOrderID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "no payment for this order")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, payment)
}

// POST /orders
// Accepts an already-priced order payload; totals are re-checked against the
// line items before anything is stored.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(id, req.Status)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Svc.Cancel(id)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	resp.OK(c, order)
}

func (h *OrderController) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrBadTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
