package handler

import (
	"mbanq-accounts/internal/adapter/http/dto"
	"mbanq-accounts/internal/adapter/http/middleware"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the login and credential endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// LoginEmail handles POST /auth/login/email.
func (h *AuthHandler) LoginEmail(c *gin.Context) {
	var req dto.LoginEmailRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.authSvc.LoginWithEmail(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	loggedIn(c, res)
}

// RequestOTP handles POST /auth/login/phone. The reply is the same whether
// or not the phone belongs to anyone.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.LoginPhoneRequest
	if !bind(c, &req) {
		return
	}

	if err := h.authSvc.RequestPhoneOTP(c.Request.Context(), req.CountryCode, req.PhoneNumber); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "OTP sent successfully", nil)
}

// VerifyOTP handles POST /auth/login/phone/verify.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.authSvc.VerifyPhoneOTP(c.Request.Context(), req.CountryCode, req.PhoneNumber, req.OTP)
	if err != nil {
		response.Error(c, err)
		return
	}
	loggedIn(c, res)
}

// LoginPasscode handles POST /auth/login/passcode.
func (h *AuthHandler) LoginPasscode(c *gin.Context) {
	var req dto.LoginPasscodeRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.authSvc.LoginWithPasscode(c.Request.Context(), req.UserID, req.Passcode)
	if err != nil {
		response.Error(c, err)
		return
	}
	loggedIn(c, res)
}

// ChangePassword handles PUT /auth/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ChangePasswordRequest
	if !bind(c, &req) {
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), accountID, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "Password updated successfully", dto.AccountRef{AccountID: accountID})
}

// SetPasscode handles PUT /auth/passcode.
func (h *AuthHandler) SetPasscode(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetPasscodeRequest
	if !bind(c, &req) {
		return
	}

	if err := h.authSvc.SetPasscode(c.Request.Context(), accountID, req.Password, req.Passcode); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "Passcode set successfully", dto.AccountRef{AccountID: accountID})
}

func loggedIn(c *gin.Context, res *ports.LoginResult) {
	if res.Dashboard != nil {
		c.Set(middleware.CtxAuditResource, res.Dashboard.AccountID)
	}
	if res.Admin != nil {
		c.Set(middleware.CtxAdmin, &res.Admin.Principal)
	}
	response.OK(c, dto.NewLoginResponse(res))
}
