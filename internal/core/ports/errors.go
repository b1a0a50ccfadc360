package ports

import "errors"

// Storage-level conflicts. Adapters translate constraint violations into
// these so services never depend on a driver's error codes.
var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrPhoneTaken              = errors.New("phone already registered")
	ErrDuplicateCredential     = errors.New("credential already exists")
	ErrDuplicateKYC            = errors.New("kyc record already exists")
	ErrIDNumberTaken           = errors.New("id number already registered")
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
	ErrKYCStale                = errors.New("kyc record changed concurrently")
	ErrRowNotFound             = errors.New("row not found")
)

// Session token failures reported by TokenService.Verify.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
