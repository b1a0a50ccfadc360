package domain

import "time"

// Routing keys for events published on the domain exchange.
const (
	EventOTPIssued          = "otp.issued"
	EventAccountRegistered  = "account.registered"
	EventAccountDeactivated = "account.deactivated"
	EventAccountDeleted     = "account.deleted"
	EventKYCSubmitted       = "kyc.submitted"
	EventKYCDecided         = "kyc.decided"
	EventLedgerRecorded     = "ledger.recorded"
)

// OTPIssuedEvent asks the delivery gateway to send a code to a phone.
type OTPIssuedEvent struct {
	PhoneKey  string    `json:"phone_key"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountEvent reports a lifecycle change of an account.
type AccountEvent struct {
	AccountID  int64     `json:"account_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KYCEvent reports a KYC transition.
type KYCEvent struct {
	AccountID  int64     `json:"account_id"`
	Status     KYCStatus `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
