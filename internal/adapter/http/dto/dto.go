package dto

import (
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// AddressRequest is a postal address in a request body.
type AddressRequest struct {
	DoorNumber string `json:"door_number" binding:"required,max=50"`
	StreetName string `json:"street_name" binding:"required,max=200"`
	District   string `json:"district" binding:"required,max=100"`
	State      string `json:"state" binding:"required,max=100"`
	Pincode    string `json:"pincode" binding:"required,pincode"`
	Country    string `json:"country" binding:"required,max=100"`
}

func (a *AddressRequest) Input() *ports.AddressInput {
	if a == nil {
		return nil
	}
	return &ports.AddressInput{
		DoorNumber: a.DoorNumber,
		StreetName: a.StreetName,
		District:   a.District,
		State:      a.State,
		Pincode:    a.Pincode,
		Country:    a.Country,
	}
}

// RegisterRequest is the body of POST /users/register. Aadhar is accepted
// for older clients and ignored; the ID number arrives with KYC submission.
type RegisterRequest struct {
	Username    string         `json:"username" binding:"required,max=100"`
	DateOfBirth string         `json:"date_of_birth" binding:"required,dob"`
	Gender      string         `json:"gender" binding:"required,max=20"`
	AccountType string         `json:"account_type" binding:"required,account_type"`
	Email       string         `json:"email" binding:"required,email,max=254"`
	CountryCode string         `json:"country_code" binding:"required,dial_code"`
	PhoneNumber string         `json:"phone_number" binding:"required,phone_number"`
	Password    string         `json:"password" binding:"required,strong_password" trim:"-"`
	Passcode    *string        `json:"passcode,omitempty" binding:"omitempty,passcode" trim:"-"`
	Aadhar      *string        `json:"aadhar,omitempty"`
	Address     AddressRequest `json:"address" binding:"required"`
}

func (r *RegisterRequest) ToPort() ports.RegisterRequest {
	return ports.RegisterRequest{
		DisplayName: r.Username,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		AccountType: domain.AccountType(r.AccountType),
		Email:       r.Email,
		CountryCode: r.CountryCode,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
		Passcode:    r.Passcode,
		Address:     *r.Address.Input(),
	}
}

// RegisterResponse is returned with 201 Created.
type RegisterResponse struct {
	AccountID int64 `json:"account_id"`
}

// AccountRef names the account an administrative action touched.
type AccountRef struct {
	AccountID int64 `json:"account_id"`
}

type LoginEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" trim:"-"`
}

type LoginPhoneRequest struct {
	CountryCode string `json:"country_code" binding:"required,dial_code"`
	PhoneNumber string `json:"phone_number" binding:"required,phone_number"`
}

type VerifyOTPRequest struct {
	CountryCode string `json:"country_code" binding:"required,dial_code"`
	PhoneNumber string `json:"phone_number" binding:"required,phone_number"`
	OTP         string `json:"otp" binding:"required,len=6,numeric" trim:"-"`
}

type LoginPasscodeRequest struct {
	UserID   int64  `json:"user_id" binding:"required,gt=0"`
	Passcode string `json:"passcode" binding:"required" trim:"-"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" trim:"-"`
	NewPassword string `json:"new_password" binding:"required,strong_password" trim:"-"`
}

type SetPasscodeRequest struct {
	Password string `json:"password" binding:"required" trim:"-"`
	Passcode string `json:"passcode" binding:"required,passcode" trim:"-"`
}

// LoginResponse carries either Dashboard or Admin, never both.
type LoginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt int64               `json:"expires_at"` // Unix timestamp
	Dashboard *domain.Dashboard   `json:"dashboard,omitempty"`
	Admin     *AdminLoginResponse `json:"admin,omitempty"`
}

type AdminLoginResponse struct {
	Message   string                    `json:"message"`
	Method    domain.AdminMethod        `json:"method"`
	LoginTime time.Time                 `json:"login_time"`
	Users     []domain.AdminAccountView `json:"users"`
}

func NewLoginResponse(res *ports.LoginResult) LoginResponse {
	out := LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.Unix(),
		Dashboard: res.Dashboard,
	}
	if res.Admin != nil {
		out.Admin = &AdminLoginResponse{
			Message:   res.Admin.Message,
			Method:    res.Admin.Principal.Method,
			LoginTime: res.Admin.LoginTime,
			Users:     res.Admin.Accounts,
		}
	}
	return out
}

// KYCSubmitRequest is the body of POST /kyc/submit/{id}.
type KYCSubmitRequest struct {
	AadharNumber string          `json:"aadhar_number" binding:"required,national_id"`
	Address      *AddressRequest `json:"address,omitempty"`
}

// AdminUpdateRequest is a partial update; omitted fields stay unchanged.
type AdminUpdateRequest struct {
	AadharNumber *string         `json:"aadhar_number,omitempty" binding:"omitempty,national_id"`
	AccountType  *string         `json:"account_type,omitempty" binding:"omitempty,account_type"`
	Address      *AddressRequest `json:"address,omitempty"`
}

func (r *AdminUpdateRequest) ToPort() ports.AdminUpdateRequest {
	out := ports.AdminUpdateRequest{
		IDNumber: r.AadharNumber,
		Address:  r.Address.Input(),
	}
	if r.AccountType != nil {
		t := domain.AccountType(*r.AccountType)
		out.AccountType = &t
	}
	return out
}

// RecordEntryRequest is the body of POST /ledger/admin/record/{id}. Amount
// and type are checked by the ledger so its own error codes reach the client.
type RecordEntryRequest struct {
	TransactionType string `json:"transaction_type" binding:"required"`
	Amount          int64  `json:"amount"`
}

type BalanceResponse struct {
	AccountID        int64 `json:"account_id"`
	AvailableBalance int64 `json:"available_balance"`
}
