package service

import (
	"testing"
	"time"

	"mbanq-accounts/internal/adapter/storage/memory"

	"github.com/stretchr/testify/require"
)

// testStack wires every service over the memory store.
type testStack struct {
	store    *memory.Store
	otpStore *memory.OTPStore
	sms      *capturePublisher
	creds    *CredentialService
	otp      *OTPService
	kyc      *KYCService
	ledger   *LedgerService
	accounts *AccountService
	tokens   *JWTTokenService
	admin    *AdminAuthenticator
	auth     *AuthService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	st := &testStack{
		store:    memory.NewStore(),
		otpStore: memory.NewOTPStore(),
		sms:      &capturePublisher{codes: map[string]string{}},
	}
	log := newTestLogger()
	hash := newTestHashService()
	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	st.creds = NewCredentialService(st.store.Credentials(), hash)
	st.otp = NewOTPService(st.otpStore, st.sms, time.Minute, log)
	st.kyc = NewKYCService(st.store.Accounts(), st.store.KYC(), st.store.Addresses(), st.store, enc, NewHMACSignatureService(), testIndexKey, st.sms, log)
	st.ledger = NewLedgerService(st.store.Ledger(), st.store.Accounts(), st.store, nil, st.sms, log)
	st.accounts = NewAccountService(st.store.Accounts(), st.store.Addresses(), st.store.KYC(), st.creds, st.kyc, st.ledger, st.store, st.sms, "WELCOME", log)
	st.tokens = NewJWTTokenService(testJWTSecret, 30*time.Minute, "test")

	st.admin, err = NewAdminAuthenticator(AdminCredentials{
		Name:     "ADMIN",
		Email:    "admin@mbanq.test",
		PhoneKey: "+919123456789",
		Password: "Adm1n@pass",
		APIKey:   "admin-secret",
	}, hash)
	require.NoError(t, err)

	st.auth = NewAuthService(st.store.Accounts(), st.creds, st.otp, st.tokens, st.admin, st.accounts, "WELCOME", log)
	return st
}
