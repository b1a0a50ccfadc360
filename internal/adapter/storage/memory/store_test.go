package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(email, phone string) *domain.Account {
	return &domain.Account{
		FirstName:   "Ada",
		Email:       email,
		CountryCode: "+91",
		PhoneNumber: phone,
		AccountType: domain.AccountTypeSavings,
		IsActive:    true,
	}
}

func TestAccountRepo_UniqueAmongLiveAccounts(t *testing.T) {
	s := NewStore()
	repo := s.Accounts()
	ctx := context.Background()

	a := newAccount("a@x.com", "9000000001")
	require.NoError(t, repo.Create(ctx, a))
	assert.Equal(t, int64(1), a.ID)

	assert.ErrorIs(t, repo.Create(ctx, newAccount("a@x.com", "9000000002")), ports.ErrEmailTaken)
	assert.ErrorIs(t, repo.Create(ctx, newAccount("b@x.com", "9000000001")), ports.ErrPhoneTaken)

	a.IsDeleted = true
	a.IsActive = false
	require.NoError(t, repo.Update(ctx, a))

	b := newAccount("a@x.com", "9000000001")
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, int64(2), b.ID)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	deleted, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
}

func TestStore_WithinTransaction_RollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		a := newAccount("a@x.com", "9000000001")
		require.NoError(t, s.Accounts().Create(ctx, a))
		require.NoError(t, s.Credentials().Create(ctx, &domain.Credential{AccountID: a.ID, PasswordHash: "h"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Accounts().GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
	cred, err := s.Credentials().GetByAccountID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cred)

	a := newAccount("a@x.com", "9000000001")
	require.NoError(t, s.Accounts().Create(ctx, a))
	assert.Equal(t, int64(1), a.ID)
}

func TestStore_WithinTransaction_Nested(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.WithinTransaction(ctx, func(ctx context.Context) error {
			return s.Accounts().Create(ctx, newAccount("a@x.com", "1"))
		})
	})
	require.NoError(t, err)

	got, err := s.Accounts().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCredentialRepo(t *testing.T) {
	s := NewStore()
	repo := s.Credentials()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Credential{AccountID: 1, PasswordHash: "h"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Credential{AccountID: 1}), ports.ErrDuplicateCredential)

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.TouchLogin(ctx, 1, at))
	require.NoError(t, repo.UpdatePasscode(ctx, 1, "pc"))
	require.NoError(t, repo.UpdatePassword(ctx, 1, "h2", at))

	c, err := repo.GetByAccountID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "h2", c.PasswordHash)
	assert.Equal(t, at, *c.LastLoginAt)
	assert.True(t, c.HasPasscode())

	assert.ErrorIs(t, repo.TouchLogin(ctx, 2, at), ports.ErrRowNotFound)
}

func TestKYCRepo_ConditionalSaveAndDigest(t *testing.T) {
	s := NewStore()
	repo := s.KYC()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, domain.NewKYCRecord(1, now)))
	require.NoError(t, repo.Create(ctx, domain.NewKYCRecord(2, now)))
	assert.ErrorIs(t, repo.Create(ctx, domain.NewKYCRecord(1, now)), ports.ErrDuplicateKYC)

	k1, _ := repo.GetByAccountID(ctx, 1)
	require.NoError(t, k1.Submit("enc", "digest-a", now))
	require.NoError(t, repo.Save(ctx, k1, domain.KYCStatusIncomplete))

	// second writer with the same expectation loses
	stale := domain.NewKYCRecord(1, now)
	require.NoError(t, stale.Submit("enc", "digest-b", now))
	assert.ErrorIs(t, repo.Save(ctx, stale, domain.KYCStatusIncomplete), ports.ErrKYCStale)

	k2, _ := repo.GetByAccountID(ctx, 2)
	require.NoError(t, k2.Submit("enc", "digest-a", now))
	assert.ErrorIs(t, repo.Save(ctx, k2, domain.KYCStatusIncomplete), ports.ErrIDNumberTaken)
}

func TestAddressRepo_UpsertKeepsIdentity(t *testing.T) {
	s := NewStore()
	repo := s.Addresses()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Address{AccountID: 1, Pincode: "560001"}))
	require.NoError(t, repo.UpsertActive(ctx, &domain.Address{AccountID: 1, Pincode: "110001"}))
	require.NoError(t, repo.UpsertActive(ctx, &domain.Address{AccountID: 2, Pincode: "400001"}))

	a1, err := repo.GetActive(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a1.ID)
	assert.Equal(t, "110001", a1.Pincode)

	a2, err := repo.GetActive(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), a2.ID)

	none, err := repo.GetActive(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestLedgerRepo_BalanceHistoryAndKeys(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	repo := s.Ledger()
	ctx := context.Background()

	key := "k1"
	require.NoError(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 1, Type: domain.EntryTypeDeposit, Amount: 500, IdempotencyKey: &key}))
	now = now.Add(time.Second)
	require.NoError(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 1, Type: domain.EntryTypeWithdraw, Amount: 200}))
	require.NoError(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 2, Type: domain.EntryTypeDeposit, Amount: 7}))
	require.NoError(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 1, Type: domain.EntryTypeDeposit, Amount: 1}))

	assert.ErrorIs(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 1, Type: domain.EntryTypeDeposit, Amount: 1, IdempotencyKey: &key}), ports.ErrDuplicateIdempotencyKey)
	require.NoError(t, repo.Append(ctx, &domain.LedgerEntry{AccountID: 2, Type: domain.EntryTypeDeposit, Amount: 1, IdempotencyKey: &key}))

	bal, err := repo.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(301), bal)

	hist, err := repo.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, []int64{4, 2, 1}, []int64{hist[0].ID, hist[1].ID, hist[2].ID})

	prior, err := repo.GetByIdempotencyKey(ctx, 1, "k1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), prior.Amount)

	all, err := repo.Balances(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 301, 2: 8}, all)
}

func TestAuditRepo_SurvivesRollback(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_ = s.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Audit().Create(ctx, &domain.AuditLog{Action: domain.AuditActionRegister}))
		return errors.New("rollback")
	})
	assert.Len(t, s.Audit().Entries(), 1)
}

func TestOTPStore_TakeIsSingleUse(t *testing.T) {
	st := NewOTPStore()
	ctx := context.Background()
	rec := &domain.OTPRecord{PhoneKey: "+919000000001", Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, st.Put(ctx, rec))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := st.Take(ctx, rec.PhoneKey)
			if err == nil && got != nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Zero(t, st.Len())
}

func TestOTPStore_PutReplaces(t *testing.T) {
	st := NewOTPStore()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, &domain.OTPRecord{PhoneKey: "p", Code: "111111"}))
	require.NoError(t, st.Put(ctx, &domain.OTPRecord{PhoneKey: "p", Code: "222222"}))

	got, err := st.Take(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
	assert.Equal(t, 0, st.Len())
}

func TestOTPStore_Reap(t *testing.T) {
	st := NewOTPStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, st.Put(ctx, &domain.OTPRecord{PhoneKey: "old", ExpiresAt: now}))
	require.NoError(t, st.Put(ctx, &domain.OTPRecord{PhoneKey: "live", ExpiresAt: now.Add(time.Minute)}))

	assert.Equal(t, 1, st.Reap(now))
	assert.Equal(t, 1, st.Len())
}

func TestOTPStore_StartReaper(t *testing.T) {
	st := NewOTPStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, st.Put(ctx, &domain.OTPRecord{PhoneKey: "old", ExpiresAt: time.Now().Add(-time.Second)}))
	st.StartReaper(ctx, 10*time.Millisecond, zerolog.Nop())

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 10*time.Millisecond)
}
