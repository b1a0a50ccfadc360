package handler

import (
	"strings"

	"mbanq-accounts/internal/adapter/http/dto"
	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

// KYCHandler handles identity verification endpoints.
type KYCHandler struct {
	kycSvc ports.KYCService
}

// NewKYCHandler creates a new KYCHandler.
func NewKYCHandler(kycSvc ports.KYCService) *KYCHandler {
	return &KYCHandler{kycSvc: kycSvc}
}

// Submit handles POST /kyc/submit/:id.
func (h *KYCHandler) Submit(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	var req dto.KYCSubmitRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.kycSvc.Submit(c.Request.Context(), id, ports.KYCSubmission{
		IDNumber: req.AadharNumber,
		Address:  req.Address.Input(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "KYC submitted successfully", view)
}

// Status handles GET /kyc/:id.
func (h *KYCHandler) Status(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	view, err := h.kycSvc.Status(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Decide handles PUT /kyc/admin/verify/:id?status=VERIFIED|REJECTED.
// The status value is passed through unmodified.
func (h *KYCHandler) Decide(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	status := domain.KYCStatus(c.Query("status"))
	view, err := h.kycSvc.Decide(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, "KYC "+strings.ToLower(string(view.Status))+" successfully", view)
}
