package ports

import (
	"context"
	"time"

	"mbanq-accounts/internal/core/domain"
)

// Repositories return (nil, nil) when a row does not exist and one of the
// sentinel errors in errors.go when a storage constraint rejects a write.
// Every method joins the unit of work carried by ctx, if any.

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create inserts the account and sets its ID.
	Create(ctx context.Context, account *domain.Account) error
	// GetByID returns the account even when soft-deleted.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	// GetByIDForUpdate locks the account row until the unit of work ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	// GetByEmail and GetByPhone ignore soft-deleted accounts.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByPhone(ctx context.Context, countryCode, phoneNumber string) (*domain.Account, error)
	// List returns non-deleted accounts ordered by id.
	List(ctx context.Context) ([]domain.Account, error)
	// Update writes the mutable columns: account type, active and deleted flags.
	Update(ctx context.Context, account *domain.Account) error
}

// CredentialRepository defines persistence for password and passcode hashes.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	GetByAccountID(ctx context.Context, accountID int64) (*domain.Credential, error)
	UpdatePassword(ctx context.Context, accountID int64, hash string, at time.Time) error
	UpdatePasscode(ctx context.Context, accountID int64, hash string) error
	TouchLogin(ctx context.Context, accountID int64, at time.Time) error
}

// AddressRepository defines persistence for postal addresses.
type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetActive(ctx context.Context, accountID int64) (*domain.Address, error)
	// UpsertActive overwrites the active address, creating one if none exists.
	UpsertActive(ctx context.Context, addr *domain.Address) error
}

// KYCRepository defines persistence for KYC records.
type KYCRepository interface {
	Create(ctx context.Context, rec *domain.KYCRecord) error
	GetByAccountID(ctx context.Context, accountID int64) (*domain.KYCRecord, error)
	// Save writes rec only if the stored status still equals expected,
	// returning ErrKYCStale otherwise.
	Save(ctx context.Context, rec *domain.KYCRecord, expected domain.KYCStatus) error
}

// LedgerRepository defines the append-only ledger store.
type LedgerRepository interface {
	// Append inserts the entry and sets its ID and CreatedAt.
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	GetByIdempotencyKey(ctx context.Context, accountID int64, key string) (*domain.LedgerEntry, error)
	Balance(ctx context.Context, accountID int64) (int64, error)
	// History returns entries newest first, ties broken by id descending.
	History(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
	// Balances returns the balance of every account that has entries.
	Balances(ctx context.Context) (map[int64]int64, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor runs fn inside one unit of work. The context passed to fn
// carries the transaction; repositories called with it join it. Any error
// returned by fn rolls everything back. Called with a ctx that already
// carries a unit of work, fn joins it instead of starting a new one.
type DBTransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OTPStore holds at most one live OTP record per phone key.
type OTPStore interface {
	// Put stores rec, replacing any record for the same phone key.
	Put(ctx context.Context, rec *domain.OTPRecord) error
	// Take atomically reads and deletes the record. Returns nil, nil when absent.
	Take(ctx context.Context, phoneKey string) (*domain.OTPRecord, error)
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	// Get returns the cached response JSON, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventPublisher emits domain events to out-of-band consumers.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close()
}
