package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// AdminUserHandler super-admin account management
type AdminUserHandler struct {
	adminSvc service.AdminUserService
}

// NewAdminUserHandler creates an AdminUserHandler.
func NewAdminUserHandler(adminSvc service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{adminSvc: adminSvc}
}

// ListAdminUsers GET /api/v1/admin-users
func (h *AdminUserHandler) ListAdminUsers(c *gin.Context) {
	var req dto.AdminUserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	users, total, err := h.adminSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAdminUserError(c, err)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// CreateAdminUser POST /api/v1/admin-users
func (h *AdminUserHandler) CreateAdminUser(c *gin.Context) {
	var req dto.CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.adminSvc.Create(c.Request.Context(), &req, actorOf(c))
	if err != nil {
		h.handleAdminUserError(c, err)
		return
	}

	response.Created(c, user)
}

// UpdateAdminUser PUT /api/v1/admin-users/:id
func (h *AdminUserHandler) UpdateAdminUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.adminSvc.Update(c.Request.Context(), id, &req, actorOf(c))
	if err != nil {
		h.handleAdminUserError(c, err)
		return
	}

	response.OK(c, user)
}

// ResetPassword POST /api/v1/admin-users/:id/reset-password
func (h *AdminUserHandler) ResetPassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.adminSvc.ResetPassword(c.Request.Context(), id, &req, actorOf(c)); err != nil {
		h.handleAdminUserError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *AdminUserHandler) handleAdminUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, 12002, "username already exists")
	default:
		handleCommonError(c, err)
	}
}
