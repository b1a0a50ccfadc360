package domain

import "time"

// Credential holds the one-way hashes used to authenticate an account.
// Exactly one exists per account.
type Credential struct {
	AccountID         int64
	PasswordHash      string
	PasscodeHash      *string
	PasswordUpdatedAt time.Time
	LastLoginAt       *time.Time
	CreatedAt         time.Time
}

// HasPasscode reports whether a passcode was ever set.
func (c *Credential) HasPasscode() bool {
	return c.PasscodeHash != nil && *c.PasscodeHash != ""
}
