package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /menu?category=&q=&page=&limit=
func (h *MenuController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	category := c.Query("category")

	if category != "" && !services.ValidCategory(category) {
		resp.BadRequest(c, services.ErrInvalidCategory.Error())
		return
	}

	menus, total, err := h.Svc.List(category, c.Query("q"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus, "total": total, "page": page, "limit": limit})
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	menu, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /menu/:id/image
func (h *MenuController) Image(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	menu, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if len(menu.Image) == 0 {
		resp.NotFound(c, "menu has no image")
		return
	}
	c.Data(http.StatusOK, menu.ImageType, menu.Image)
}

// POST /menu (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, menu)
}

// PUT /menu/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := h.Svc.Update(id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, menu)
}

// DELETE /menu/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /menu/:id/status (admin)
func (h *MenuController) UpdateStatus(c *gin.Context) {
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

	if err := h.Svc.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// POST /menu/:id/image (admin, multipart)
func (h *MenuController) UploadImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	defer file.Close()

	if header.Size > services.MaxImageSize {
		resp.BadRequest(c, services.ErrImageTooLarge.Error())
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, services.MaxImageSize+1))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if err := h.Svc.SaveImage(id, data, mimeType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "size": len(data)})
}
