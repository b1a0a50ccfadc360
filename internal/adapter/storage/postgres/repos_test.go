package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anyArgs matches n positional arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestCredentialRepo_CreateAndGet(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCredentialRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := &domain.Credential{AccountID: 1, PasswordHash: "h", PasswordUpdatedAt: now, CreatedAt: now}

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(int64(1), "h", c.PasscodeHash, now, c.LastLoginAt, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Create(context.Background(), c))

	passcode := "p"
	mock.ExpectQuery("SELECT .+ FROM credentials WHERE account_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "password_hash", "passcode_hash", "password_updated_at", "last_login_at", "created_at"}).
			AddRow(int64(1), "h", &passcode, now, (*time.Time)(nil), now))

	got, err := repo.GetByAccountID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.HasPasscode())
	assert.Nil(t, got.LastLoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCredentialRepo(mock)

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(anyArgs(6)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "credentials_pkey"})

	err := repo.Create(context.Background(), &domain.Credential{AccountID: 1})
	assert.ErrorIs(t, err, ports.ErrDuplicateCredential)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_Updates_MissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCredentialRepo(mock)
	at := time.Now()

	mock.ExpectExec("UPDATE credentials SET last_login_at").
		WithArgs(at, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.TouchLogin(context.Background(), 5, at), ports.ErrRowNotFound)

	mock.ExpectExec("UPDATE credentials SET password_hash").
		WithArgs("new", at, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdatePassword(context.Background(), 5, "new", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_UpsertActive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAddressRepo(mock)
	created := time.Now().UTC().Truncate(time.Microsecond)
	a := &domain.Address{AccountID: 2, DoorNumber: "1", StreetName: "S", District: "D", State: "K", Pincode: "560001", Country: "India"}

	mock.ExpectQuery("UPDATE addresses SET").
		WithArgs("1", "S", "D", "K", "560001", "India", int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), created))

	require.NoError(t, repo.UpsertActive(context.Background(), a))
	assert.Equal(t, int64(9), a.ID)
	assert.Equal(t, created, a.CreatedAt)
	assert.True(t, a.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_UpsertActive_InsertsWhenMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAddressRepo(mock)
	a := &domain.Address{AccountID: 2, Pincode: "560001", CreatedAt: time.Now().UTC()}

	mock.ExpectQuery("UPDATE addresses SET").
		WithArgs(anyArgs(7)...).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO addresses").
		WithArgs(int64(2), "", "", "", "", "560001", "", a.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, repo.UpsertActive(context.Background(), a))
	assert.Equal(t, int64(1), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_GetActive_None(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAddressRepo(mock)

	mock.ExpectQuery("FROM addresses WHERE account_id = \\$1 AND is_active").
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetActive(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestKYCRepo_Save(t *testing.T) {
	mock := newMockPool(t)
	repo := NewKYCRepo(mock)
	now := time.Now().UTC()
	k := domain.NewKYCRecord(1, now)
	require.NoError(t, k.Submit("enc", "digest", now))

	mock.ExpectExec("UPDATE kyc_records").
		WithArgs("PENDING", k.IDNumberEnc, k.IDNumberDigest, k.VerifiedAt, now, int64(1), "INCOMPLETE").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Save(context.Background(), k, domain.KYCStatusIncomplete))

	mock.ExpectExec("UPDATE kyc_records").
		WithArgs(anyArgs(7)...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Save(context.Background(), k, domain.KYCStatusIncomplete), ports.ErrKYCStale)

	mock.ExpectExec("UPDATE kyc_records").
		WithArgs(anyArgs(7)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "kyc_records_id_digest_key"})
	assert.ErrorIs(t, repo.Save(context.Background(), k, domain.KYCStatusIncomplete), ports.ErrIDNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKYCRepo_CreateAndGet(t *testing.T) {
	mock := newMockPool(t)
	repo := NewKYCRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	k := domain.NewKYCRecord(4, now)

	mock.ExpectExec("INSERT INTO kyc_records").
		WithArgs(int64(4), "INCOMPLETE", k.IDNumberEnc, k.IDNumberDigest, k.VerifiedAt, now, now).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "kyc_records_pkey"})
	assert.ErrorIs(t, repo.Create(context.Background(), k), ports.ErrDuplicateKYC)

	mock.ExpectQuery("FROM kyc_records WHERE account_id").
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "status", "id_number_enc", "id_number_digest", "verified_at", "created_at", "updated_at"}).
			AddRow(int64(4), domain.KYCStatusIncomplete, (*string)(nil), (*string)(nil), (*time.Time)(nil), now, now))

	got, err := repo.GetByAccountID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCStatusIncomplete, got.Status)
	assert.Nil(t, got.IDNumberEnc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Append(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLedgerRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	key := "k1"
	e := &domain.LedgerEntry{AccountID: 1, Type: domain.EntryTypeDeposit, Amount: 500, IdempotencyKey: &key}

	mock.ExpectQuery("INSERT INTO ledger_entries").
		WithArgs(int64(1), "DEPOSIT", int64(500), &key).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	require.NoError(t, repo.Append(context.Background(), e))
	assert.Equal(t, int64(11), e.ID)
	assert.Equal(t, now, e.CreatedAt)

	mock.ExpectQuery("INSERT INTO ledger_entries").
		WithArgs(anyArgs(4)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ledger_entries_idempotency_key"})
	assert.ErrorIs(t, repo.Append(context.Background(), e), ports.ErrDuplicateIdempotencyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_Balance(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLedgerRepo(mock)

	mock.ExpectQuery("SELECT COALESCE\\(SUM").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(300)))

	bal, err := repo.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(300), bal)
}

func TestLedgerRepo_HistoryAndBalances(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLedgerRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("ORDER BY created_at DESC, id DESC").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "transaction_type", "amount", "idempotency_key", "created_at"}).
			AddRow(int64(2), int64(1), domain.EntryTypeWithdraw, int64(200), (*string)(nil), now).
			AddRow(int64(1), int64(1), domain.EntryTypeDeposit, int64(500), (*string)(nil), now.Add(-time.Minute)))

	hist, err := repo.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, int64(2), hist[0].ID)
	assert.Equal(t, int64(300), domain.Balance(hist))

	mock.ExpectQuery("GROUP BY account_id").
		WillReturnRows(pgxmock.NewRows([]string{"account_id", "sum"}).
			AddRow(int64(1), int64(300)).
			AddRow(int64(2), int64(0)))

	balances, err := repo.Balances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 300, 2: 0}, balances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAuditRepo(mock)
	id := int64(3)
	l := &domain.AuditLog{
		ID: uuid.New(), AccountID: &id, Action: domain.AuditActionLogin,
		ResourceType: "session", IPAddress: "127.0.0.1", CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(l.ID, l.AccountID, "LOGIN", "session", "", "", "127.0.0.1", l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapConstraint(t *testing.T) {
	for name, want := range constraintErrors {
		t.Run(name, func(t *testing.T) {
			err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: name})
			assert.Same(t, want, mapConstraint(err))
		})
	}

	unknown := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "addresses_active_key"}
	assert.Same(t, error(unknown), mapConstraint(unknown))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "accounts_email_live_key"}
	assert.Same(t, error(fk), mapConstraint(fk))
}
