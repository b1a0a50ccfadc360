package ports

import (
	"context"
	"time"

	"mbanq-accounts/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService computes keyed HMAC-SHA256 digests.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// Claims is the payload of a session token. The issuer does not interpret it.
type Claims map[string]any

// Claim keys used by callers.
const (
	ClaimAccountID = "account_id"
	ClaimRole      = "role"
	ClaimExpiry    = "exp"
)

// AccountID returns the account_id claim when it holds an integer.
func (c Claims) AccountID() (int64, bool) {
	switch v := c[ClaimAccountID].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

// Role returns the role claim, or "" when absent.
func (c Claims) Role() string {
	r, _ := c[ClaimRole].(string)
	return r
}

// TokenService mints and verifies time-bounded signed claim sets.
type TokenService interface {
	// Issue signs claims with an absolute expiry of now+ttl; ttl <= 0 uses the default.
	Issue(claims Claims, ttl time.Duration) (string, time.Time, error)
	// Verify returns the claims plus "exp", or ErrTokenExpired / ErrTokenInvalid.
	Verify(token string) (Claims, error)
}

// --- Core components ---

// CredentialStore owns password and passcode hashes per account.
type CredentialStore interface {
	SetCredential(ctx context.Context, accountID int64, password string, passcode *string) error
	VerifyPassword(ctx context.Context, accountID int64, password string) (bool, error)
	VerifyPasscode(ctx context.Context, accountID int64, passcode string) (bool, error)
	TouchLogin(ctx context.Context, accountID int64) error
	ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error
	SetPasscode(ctx context.Context, accountID int64, password, passcode string) error
}

// OTPBroker issues, stores and consumes one-time passcodes keyed by phone.
type OTPBroker interface {
	Issue(ctx context.Context, phoneKey string) error
	Verify(ctx context.Context, phoneKey, code string) (domain.OTPOutcome, error)
}

// KYCService drives the per-account verification lifecycle.
type KYCService interface {
	Submit(ctx context.Context, accountID int64, sub KYCSubmission) (*domain.KYCView, error)
	Decide(ctx context.Context, accountID int64, status domain.KYCStatus) (*domain.KYCView, error)
	Status(ctx context.Context, accountID int64) (*domain.KYCView, error)
	// ReplaceIDNumber overwrites the stored ID without changing status.
	ReplaceIDNumber(ctx context.Context, accountID int64, idNumber string) error
}

// KYCSubmission holds a user's identity documents.
type KYCSubmission struct {
	IDNumber string
	Address  *AddressInput
}

// LedgerService records monetary movements and derives balances.
type LedgerService interface {
	Record(ctx context.Context, req RecordRequest) (*domain.LedgerEntry, error)
	BalanceOf(ctx context.Context, accountID int64) (int64, error)
	HistoryOf(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
	Balances(ctx context.Context) (map[int64]int64, error)
}

// RecordRequest holds validated input for a ledger append.
type RecordRequest struct {
	AccountID      int64
	Type           domain.EntryType
	Amount         int64
	IdempotencyKey string // optional
}

// AccountService owns identity records and composes read models.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	GetProfile(ctx context.Context, accountID int64) (*domain.Profile, error)
	Dashboard(ctx context.Context, accountID int64) (*domain.Dashboard, error)
	BuildDashboard(ctx context.Context, account *domain.Account) (*domain.Dashboard, error)
	ListAccounts(ctx context.Context) ([]domain.AdminAccountView, error)
	Deactivate(ctx context.Context, accountID int64) error
	Delete(ctx context.Context, accountID int64) error
	AdminUpdate(ctx context.Context, accountID int64, req AdminUpdateRequest) error
}

// AddressInput is a postal address supplied by a client.
type AddressInput struct {
	DoorNumber string
	StreetName string
	District   string
	State      string
	Pincode    string
	Country    string
}

// RegisterRequest holds validated input for account registration.
type RegisterRequest struct {
	DisplayName string
	DateOfBirth string // DD-MM-YYYY
	Gender      string
	AccountType domain.AccountType
	Email       string
	CountryCode string
	PhoneNumber string
	Password    string
	Passcode    *string
	Address     AddressInput
}

// AdminUpdateRequest is a partial update; nil fields are left untouched.
type AdminUpdateRequest struct {
	AccountType *domain.AccountType
	IDNumber    *string
	Address     *AddressInput
}

// AuthService implements the login flows.
type AuthService interface {
	LoginWithEmail(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPhoneOTP(ctx context.Context, countryCode, phoneNumber string) error
	VerifyPhoneOTP(ctx context.Context, countryCode, phoneNumber, code string) (*LoginResult, error)
	LoginWithPasscode(ctx context.Context, accountID int64, passcode string) (*LoginResult, error)
	ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error
	SetPasscode(ctx context.Context, accountID int64, password, passcode string) error
}

// LoginResult is either a user session with its dashboard or an admin session.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Dashboard *domain.Dashboard
	Admin     *AdminSession
}

// AdminSession is returned when administrator credentials were used.
type AdminSession struct {
	Principal domain.AdminPrincipal
	Message   string
	LoginTime time.Time
	Accounts  []domain.AdminAccountView
}

// AdminAuthenticator resolves every administrator credential form to one principal.
type AdminAuthenticator interface {
	AuthenticatePassword(email, password string) (*domain.AdminPrincipal, bool)
	AuthenticatePhone(phoneKey string) (*domain.AdminPrincipal, bool)
	AuthenticateAPIKey(key string) (*domain.AdminPrincipal, bool)
	AuthenticateClaims(claims Claims) (*domain.AdminPrincipal, bool)
	Claims(principal domain.AdminPrincipal) Claims
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
