package handler

import (
	"mbanq-accounts/internal/adapter/http/dto"
	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey makes a ledger append safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

// LedgerHandler handles ledger endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Record handles POST /ledger/admin/record/:id.
func (h *LedgerHandler) Record(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	var req dto.RecordEntryRequest
	if !bind(c, &req) {
		return
	}

	entry, err := h.ledgerSvc.Record(c.Request.Context(), ports.RecordRequest{
		AccountID:      id,
		Type:           domain.EntryType(req.TransactionType),
		Amount:         req.Amount,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Entry recorded", entry)
}

// Balance handles GET /ledger/:id/balance.
func (h *LedgerHandler) Balance(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	balance, err := h.ledgerSvc.BalanceOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: id, AvailableBalance: balance})
}

// History handles GET /ledger/:id/transactions, newest first.
func (h *LedgerHandler) History(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}

	entries, err := h.ledgerSvc.HistoryOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	response.OK(c, entries)
}
