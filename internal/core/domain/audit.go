package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegister       AuditAction = "REGISTER"
	AuditActionLogin          AuditAction = "LOGIN"
	AuditActionOTPRequest     AuditAction = "OTP_REQUEST"
	AuditActionPasswordChange AuditAction = "PASSWORD_CHANGE"
	AuditActionPasscodeSet    AuditAction = "PASSCODE_SET"
	AuditActionKYCSubmit      AuditAction = "KYC_SUBMIT"
	AuditActionKYCDecide      AuditAction = "KYC_DECIDE"
	AuditActionDeactivate     AuditAction = "DEACTIVATE"
	AuditActionDelete         AuditAction = "DELETE"
	AuditActionAdminUpdate    AuditAction = "ADMIN_UPDATE"
	AuditActionLedgerRecord   AuditAction = "LEDGER_RECORD"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	AccountID    *int64      `json:"account_id,omitempty"` // actor, nil for admin or anonymous
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
