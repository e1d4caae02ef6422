package controllers

import (
	"errors"
	"strconv"

	"github.com/DonAdhyatma/fe-final-project/pkg/resp"
	"github.com/DonAdhyatma/fe-final-project/services"
	"github.com/DonAdhyatma/fe-final-project/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// GET /users?q=&page=&limit= (admin)
func (h *UserController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, total, err := h.Svc.List(c.Query("q"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

// GET /users/:id (admin)
func (h *UserController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /users (admin)
func (h *UserController) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Create(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// PUT /users/:id (admin)
func (h *UserController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Email string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Update(id, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id (admin)
func (h *UserController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if id == utils.CurrentUserID(c) {
		resp.BadRequest(c, "cannot delete your own account")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /users/:id/status (admin)
func (h *UserController) UpdateStatus(c *gin.Context) {
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
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// PATCH /users/:id/role (admin)
func (h *UserController) ChangeRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if id == utils.CurrentUserID(c) {
		resp.BadRequest(c, "cannot change your own role")
		return
	}
	if err := h.Svc.ChangeRole(id, req.Role); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "role": req.Role})
}
