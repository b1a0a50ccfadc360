package handler

import (
	"mbanq-accounts/internal/adapter/http/dto"
	"mbanq-accounts/internal/adapter/http/middleware"
	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration, profiles and account administration.
type UserHandler struct {
	accountSvc ports.AccountService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(accountSvc ports.AccountService) *UserHandler {
	return &UserHandler{accountSvc: accountSvc}
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bind(c, &req) {
		return
	}

	id, err := h.accountSvc.Register(c.Request.Context(), req.ToPort())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, id)
	response.Created(c, "Registration successful. Please complete KYC.", dto.RegisterResponse{AccountID: id})
}

// Dashboard handles GET /users/me/dashboard.
func (h *UserHandler) Dashboard(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	dash, err := h.accountSvc.Dashboard(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dash)
}

// GetProfile handles GET /users/:id.
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	profile, err := h.accountSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, profile)
}

// ListAccounts handles GET /users/admin/list.
func (h *UserHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountSvc.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if accounts == nil {
		accounts = []domain.AdminAccountView{}
	}
	response.OK(c, accounts)
}

// Deactivate handles DELETE /users/admin/deactivate/:id.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	if err := h.accountSvc.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "User deactivated successfully", dto.AccountRef{AccountID: id})
}

// Delete handles DELETE /users/admin/delete/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	if err := h.accountSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "User deleted successfully", dto.AccountRef{AccountID: id})
}

// AdminUpdate handles PUT /users/admin/update/:id.
func (h *UserHandler) AdminUpdate(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	var req dto.AdminUpdateRequest
	if !bind(c, &req) {
		return
	}

	if err := h.accountSvc.AdminUpdate(c.Request.Context(), id, req.ToPort()); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "User updated successfully", dto.AccountRef{AccountID: id})
}
