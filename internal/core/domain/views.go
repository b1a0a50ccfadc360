package domain

import "time"

// Dashboard is the read model returned by every successful user login.
type Dashboard struct {
	Message          string        `json:"message"`
	AccountID        int64         `json:"account_id"`
	AccountHolder    string        `json:"account_holder"`
	LoginTime        time.Time     `json:"login_time"`
	Status           AccountStatus `json:"status"`
	KYCStatus        KYCStatus     `json:"kyc_status"`
	AvailableBalance int64         `json:"available_balance"`
	Transactions     []LedgerEntry `json:"transactions"`
}

// Profile is the public view of an account.
type Profile struct {
	ID          int64         `json:"id"`
	FullName    string        `json:"full_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	AccountType AccountType   `json:"account_type"`
	IsActive    bool          `json:"is_active"`
	Status      AccountStatus `json:"status"`
	KYCStatus   KYCStatus     `json:"kyc_status"`
}

// AdminAccountView is one row of the administrator's account list.
type AdminAccountView struct {
	ID               int64         `json:"id"`
	FullName         string        `json:"full_name"`
	Email            string        `json:"email"`
	CountryCode      string        `json:"country_code"`
	PhoneNumber      string        `json:"phone_number"`
	AccountType      AccountType   `json:"account_type"`
	IsActive         bool          `json:"is_active"`
	Status           AccountStatus `json:"status"`
	KYCStatus        KYCStatus     `json:"kyc_status"`
	AvailableBalance int64         `json:"available_balance"`
}

// KYCView is the externally visible KYC state. The ID number is masked.
type KYCView struct {
	AccountID  int64      `json:"account_id"`
	Status     KYCStatus  `json:"kyc_status"`
	IDNumber   string     `json:"id_number,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}
