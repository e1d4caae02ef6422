package controllers

import (
	"strconv"
	"time"

	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

func dateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return nil, nil, false
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return nil, nil, false
		}
		end := t.AddDate(0, 0, 1) // inclusive end day
		to = &end
	}
	return from, to, true
}

// GET /reports/sales-overview
func (h *ReportController) SalesOverview(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	out, err := h.Svc.SalesOverview(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/sales-by-category
func (h *ReportController) SalesByCategory(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	out, err := h.Svc.SalesByCategory(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/sales-by-period
func (h *ReportController) SalesByPeriod(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	out, err := h.Svc.SalesByPeriod(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/top-menu-items
func (h *ReportController) TopMenuItems(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	out, err := h.Svc.TopMenuItems(from, to, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/dashboard-stats
func (h *ReportController) Dashboard(c *gin.Context) {
	out, err := h.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
