package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditResource lets a handler name the resource it created or
// authenticated when the route has no id parameter.
const CtxAuditResource = "audit_resource"

type auditRoute struct {
	action   domain.AuditAction
	resource string
}

// auditRoutes is keyed by method + route template.
var auditRoutes = map[string]auditRoute{
	"POST /users/register":               {domain.AuditActionRegister, "account"},
	"POST /auth/login/email":             {domain.AuditActionLogin, "session"},
	"POST /auth/login/phone":             {domain.AuditActionOTPRequest, "otp"},
	"POST /auth/login/phone/verify":      {domain.AuditActionLogin, "session"},
	"POST /auth/login/passcode":          {domain.AuditActionLogin, "session"},
	"PUT /auth/password":                 {domain.AuditActionPasswordChange, "credential"},
	"PUT /auth/passcode":                 {domain.AuditActionPasscodeSet, "credential"},
	"POST /kyc/submit/:id":               {domain.AuditActionKYCSubmit, "kyc"},
	"PUT /kyc/admin/verify/:id":          {domain.AuditActionKYCDecide, "kyc"},
	"DELETE /users/admin/deactivate/:id": {domain.AuditActionDeactivate, "account"},
	"DELETE /users/admin/delete/:id":     {domain.AuditActionDelete, "account"},
	"PUT /users/admin/update/:id":        {domain.AuditActionAdminUpdate, "account"},
	"POST /ledger/admin/record/:id":      {domain.AuditActionLedgerRecord, "ledger"},
}

// AuditLog records successful state-changing requests after they are served.
func AuditLog(audit ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Action:       route.action,
			ResourceType: route.resource,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			CreatedAt:    time.Now().UTC(),
		}
		if id, ok := AccountID(c); ok {
			entry.AccountID = &id
		}
		if v, ok := c.Get(CtxAuditResource); ok {
			if id, ok := v.(int64); ok {
				entry.ResourceID = strconv.FormatInt(id, 10)
			}
		}

		details := map[string]any{"method": c.Request.Method, "route": c.FullPath(), "status": status}
		if p, ok := Admin(c); ok {
			details["admin"] = p.Name
			details["admin_method"] = p.Method
		}
		raw, _ := json.Marshal(details)
		entry.Details = string(raw)

		audit.Log(c.Request.Context(), entry)
	}
}
