package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-checkable error category surfaced to callers.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindExpired      Kind = "EXPIRED"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindInternal     Kind = "INTERNAL"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Kind       Kind   `json:"kind"`
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Accounts (ACC) ----

func ErrAccountNotFound() *AppError {
	return New(KindNotFound, "ACC_001", "Account not found", http.StatusNotFound)
}

func ErrEmailTaken() *AppError {
	return New(KindConflict, "ACC_002", "Email already registered", http.StatusBadRequest)
}

func ErrPhoneTaken() *AppError {
	return New(KindConflict, "ACC_003", "Phone number already registered", http.StatusBadRequest)
}

func ErrAccountInactive() *AppError {
	return New(KindForbidden, "ACC_004", "Account is deactivated", http.StatusForbidden)
}

func ErrDuplicateCredential() *AppError {
	return New(KindConflict, "ACC_005", "Credential already exists for account", http.StatusConflict)
}

func ErrNotRegistered() *AppError {
	return New(KindNotFound, "ACC_006", "User not registered", http.StatusNotFound)
}

func ErrInvalidDateOfBirth() *AppError {
	return New(KindInvalidInput, "ACC_007", "Date of birth must be in DD-MM-YYYY format", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New(KindUnauthorized, "AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidPasscode() *AppError {
	return New(KindUnauthorized, "AUTH_002", "Invalid passcode", http.StatusUnauthorized)
}

func ErrPasscodeNotSet() *AppError {
	return New(KindUnauthorized, "AUTH_003", "Passcode not set", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(KindUnauthorized, "AUTH_004", "Invalid token", http.StatusUnauthorized)
}

func ErrTokenExpired() *AppError {
	return New(KindExpired, "AUTH_005", "Token expired", http.StatusUnauthorized)
}

func ErrAdminRequired() *AppError {
	return New(KindUnauthorized, "AUTH_006", "Administrator credentials required", http.StatusForbidden)
}

func ErrAccessDenied() *AppError {
	return New(KindForbidden, "AUTH_007", "Access to this account is not permitted", http.StatusForbidden)
}

func ErrCredentialNotFound() *AppError {
	return New(KindNotFound, "AUTH_008", "Credential not found", http.StatusNotFound)
}

// ---- One-time passcodes (OTP) ----

func ErrOTPExpired() *AppError {
	return New(KindExpired, "OTP_001", "OTP expired", http.StatusUnauthorized)
}

func ErrOTPInvalid() *AppError {
	return New(KindUnauthorized, "OTP_002", "Invalid OTP", http.StatusUnauthorized)
}

func ErrOTPNotFound() *AppError {
	return New(KindUnauthorized, "OTP_003", "No OTP requested for this phone", http.StatusUnauthorized)
}

// ---- KYC ----

func ErrKYCNotFound() *AppError {
	return New(KindNotFound, "KYC_001", "KYC record not found", http.StatusNotFound)
}

func ErrKYCAlreadySubmitted() *AppError {
	return New(KindConflict, "KYC_002", "KYC already submitted", http.StatusBadRequest)
}

func ErrKYCInvalidStatus() *AppError {
	return New(KindInvalidInput, "KYC_003", "Status must be VERIFIED or REJECTED", http.StatusBadRequest)
}

func ErrKYCNotPending() *AppError {
	return New(KindConflict, "KYC_004", "KYC is not awaiting a decision", http.StatusBadRequest)
}

func ErrIDNumberTaken() *AppError {
	return New(KindConflict, "KYC_005", "ID number already registered", http.StatusBadRequest)
}

func ErrInvalidIDNumber() *AppError {
	return New(KindInvalidInput, "KYC_006", "ID number must be exactly 12 digits", http.StatusBadRequest)
}

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New(KindConflict, "LED_001", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(KindInvalidInput, "LED_002", "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrInvalidEntryType() *AppError {
	return New(KindInvalidInput, "LED_003", "Entry type must be DEPOSIT or WITHDRAW", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(KindInternal, "SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 input validation error.
func Validation(message string) *AppError {
	return New(KindInvalidInput, "VAL_001", message, http.StatusBadRequest)
}
