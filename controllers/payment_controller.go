package controllers

import (
	"errors"

	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /payments
func (h *PaymentController) Process(c *gin.Context) {
	var req services.ProcessPaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := h.Svc.Process(&req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrAlreadyPaid),
			errors.Is(err, services.ErrOrderNotPayable):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInsufficientCash):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, payment)
}

// POST /payments/:id/refund
func (h *PaymentController) Refund(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	payment, err := h.Svc.Refund(id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "payment not found")
		case errors.Is(err, services.ErrNotRefundable),
			errors.Is(err, services.ErrBadTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, payment)
}
