package domain

import "time"

// OTPOutcome is the result of a single verification attempt.
type OTPOutcome string

const (
	OTPVerified OTPOutcome = "VERIFIED"
	OTPExpired  OTPOutcome = "EXPIRED"
	OTPInvalid  OTPOutcome = "INVALID"
	OTPNotFound OTPOutcome = "NOT_FOUND"
)

// OTPRecord is the live one-time passcode for a phone key.
type OTPRecord struct {
	PhoneKey  string    `json:"phone_key"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Check evaluates a submitted code. A record is expired from ExpiresAt
// onwards; codes compare as exact strings.
func (r *OTPRecord) Check(code string, now time.Time) OTPOutcome {
	if !now.Before(r.ExpiresAt) {
		return OTPExpired
	}
	if code != r.Code {
		return OTPInvalid
	}
	return OTPVerified
}
