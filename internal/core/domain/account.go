package domain

import (
	"errors"
	"strings"
	"time"
)

// DateOfBirthLayout is the textual date format accepted at registration (DD-MM-YYYY).
const DateOfBirthLayout = "02-01-2006"

// ErrInvalidDateOfBirth is returned when a date of birth does not match DateOfBirthLayout.
var ErrInvalidDateOfBirth = errors.New("date of birth must be DD-MM-YYYY")

// AccountType is the product category of an account.
type AccountType string

const (
	AccountTypeStudent   AccountType = "Student"
	AccountTypeSavings   AccountType = "Savings"
	AccountTypeCorporate AccountType = "Corporate"
)

// Valid reports whether t is a known account category.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeStudent, AccountTypeSavings, AccountTypeCorporate:
		return true
	}
	return false
}

// Account is a registered customer identity.
type Account struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	DateOfBirth time.Time   `json:"date_of_birth"`
	Gender      string      `json:"gender"`
	AccountType AccountType `json:"account_type"`
	Email       string      `json:"email"`
	CountryCode string      `json:"country_code"`
	PhoneNumber string      `json:"phone_number"`
	IsActive    bool        `json:"is_active"`
	IsDeleted   bool        `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// FullName joins given and family names, omitting an empty family name.
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// PhoneKey is the full phone identity (country code + number).
func (a *Account) PhoneKey() string {
	return PhoneKey(a.CountryCode, a.PhoneNumber)
}

// CanLogin reports whether the account may open a session.
func (a *Account) CanLogin() bool {
	return a.IsActive && !a.IsDeleted
}

// AccountStatus is derived from the account flags and its KYC status.
type AccountStatus string

const (
	AccountStatusActive        AccountStatus = "Active"
	AccountStatusKYCIncomplete AccountStatus = "KYC incomplete"
	AccountStatusInactive      AccountStatus = "Inactive"
)

// Status gates the account on KYC: only a verified, active account is Active.
func (a *Account) Status(kyc KYCStatus) AccountStatus {
	switch {
	case !a.CanLogin():
		return AccountStatusInactive
	case kyc == KYCStatusVerified:
		return AccountStatusActive
	default:
		return AccountStatusKYCIncomplete
	}
}

// PhoneKey builds the identity used to key OTP records and phone lookups.
func PhoneKey(countryCode, phoneNumber string) string {
	return strings.TrimSpace(countryCode) + strings.TrimSpace(phoneNumber)
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitDisplayName splits a free-text name on its first whitespace run.
// The first token is the given name; the remainder, possibly empty, is the family name.
func SplitDisplayName(name string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// ParseDateOfBirth parses a DD-MM-YYYY date.
func ParseDateOfBirth(s string) (time.Time, error) {
	t, err := time.Parse(DateOfBirthLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateOfBirth
	}
	return t, nil
}
