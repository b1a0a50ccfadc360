package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerAndDeposit(t *testing.T, st *testStack, email, phone string, amount int64) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest(email, phone))
	require.NoError(t, err)
	if amount > 0 {
		_, err = st.ledger.Record(ctx, ports.RecordRequest{AccountID: id, Type: domain.EntryTypeDeposit, Amount: amount})
		require.NoError(t, err)
	}
	return id
}

func TestAuthService_LoginWithEmail_User(t *testing.T) {
	st := newTestStack(t)
	id := registerAndDeposit(t, st, "a@x.com", "9000000001", 500)

	res, err := st.auth.LoginWithEmail(context.Background(), " A@X.com", "Abc12345@")
	require.NoError(t, err)
	require.NotNil(t, res.Dashboard)
	assert.Nil(t, res.Admin)
	assert.Equal(t, id, res.Dashboard.AccountID)
	assert.Equal(t, int64(500), res.Dashboard.AvailableBalance)
	assert.Equal(t, domain.KYCStatusIncomplete, res.Dashboard.KYCStatus)
	assert.Len(t, res.Dashboard.Transactions, 1)

	claims, err := st.tokens.Verify(res.Token)
	require.NoError(t, err)
	got, ok := claims.AccountID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	cred, err := st.store.Credentials().GetByAccountID(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, cred.LastLoginAt)
}

func TestAuthService_LoginWithEmail_Failures(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id := registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	_, err := st.auth.LoginWithEmail(ctx, "nobody@x.com", "Abc12345@")
	assertCode(t, err, "ACC_006")

	_, err = st.auth.LoginWithEmail(ctx, "a@x.com", "wrong")
	assertCode(t, err, "AUTH_001")

	require.NoError(t, st.accounts.Deactivate(ctx, id))
	_, err = st.auth.LoginWithEmail(ctx, "a@x.com", "wrong")
	assertCode(t, err, "AUTH_001")
	_, err = st.auth.LoginWithEmail(ctx, "a@x.com", "Abc12345@")
	assertCode(t, err, "ACC_004")
}

func TestAuthService_LoginWithEmail_Admin(t *testing.T) {
	st := newTestStack(t)
	registerAndDeposit(t, st, "a@x.com", "9000000001", 250)
	registerAndDeposit(t, st, "b@x.com", "9000000002", 0)
	st.auth.now = func() time.Time { return fixedNow }

	res, err := st.auth.LoginWithEmail(context.Background(), "admin@mbanq.test", "Adm1n@pass")
	require.NoError(t, err)
	require.NotNil(t, res.Admin)
	assert.Nil(t, res.Dashboard)
	assert.Equal(t, "WELCOME ADMIN", res.Admin.Message)
	assert.Equal(t, domain.AdminMethodPassword, res.Admin.Principal.Method)
	assert.Equal(t, fixedNow, res.Admin.LoginTime)
	require.Len(t, res.Admin.Accounts, 2)
	assert.Equal(t, int64(250), res.Admin.Accounts[0].AvailableBalance)

	claims, err := st.tokens.Verify(res.Token)
	require.NoError(t, err)
	_, ok := st.admin.AuthenticateClaims(claims)
	assert.True(t, ok)
}

func TestAuthService_PhoneOTP_User(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id := registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	require.NoError(t, st.auth.RequestPhoneOTP(ctx, "+91", "9000000001"))
	code := st.sms.codes["+919000000001"]
	require.Len(t, code, 6)

	res, err := st.auth.VerifyPhoneOTP(ctx, "+91", "9000000001", code)
	require.NoError(t, err)
	assert.Equal(t, id, res.Dashboard.AccountID)

	// consumed
	_, err = st.auth.VerifyPhoneOTP(ctx, "+91", "9000000001", code)
	assertCode(t, err, "OTP_003")
}

func TestAuthService_PhoneOTP_WrongCodeConsumesRecord(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	require.NoError(t, st.auth.RequestPhoneOTP(ctx, "+91", "9000000001"))
	code := st.sms.codes["+919000000001"]
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	_, err := st.auth.VerifyPhoneOTP(ctx, "+91", "9000000001", wrong)
	assertCode(t, err, "OTP_002")
	_, err = st.auth.VerifyPhoneOTP(ctx, "+91", "9000000001", code)
	assertCode(t, err, "OTP_003")
}

func TestAuthService_PhoneOTP_Expired(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	clock := &otpClock{t: fixedNow}
	st.otp.now = clock.now
	require.NoError(t, st.auth.RequestPhoneOTP(ctx, "+91", "9000000001"))
	clock.t = clock.t.Add(time.Minute)

	_, err := st.auth.VerifyPhoneOTP(ctx, "+91", "9000000001", st.sms.codes["+919000000001"])
	assertCode(t, err, "OTP_001")
}

func TestAuthService_PhoneOTP_Unregistered(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	require.NoError(t, st.auth.RequestPhoneOTP(ctx, "+91", "9000000009"))
	_, err := st.auth.VerifyPhoneOTP(ctx, "+91", "9000000009", st.sms.codes["+919000000009"])
	assertCode(t, err, "ACC_006")
}

func TestAuthService_PhoneOTP_Admin(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	require.NoError(t, st.auth.RequestPhoneOTP(ctx, "+91", "9123456789"))
	res, err := st.auth.VerifyPhoneOTP(ctx, "+91", "9123456789", st.sms.codes["+919123456789"])
	require.NoError(t, err)
	require.NotNil(t, res.Admin)
	assert.Equal(t, domain.AdminMethodOTP, res.Admin.Principal.Method)
	assert.Empty(t, res.Admin.Accounts)
}

func TestAuthService_LoginWithPasscode(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id := registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	_, err := st.auth.LoginWithPasscode(ctx, id, "123456")
	assertCode(t, err, "AUTH_003")

	require.NoError(t, st.auth.SetPasscode(ctx, id, "Abc12345@", "123456"))

	res, err := st.auth.LoginWithPasscode(ctx, id, "123456")
	require.NoError(t, err)
	assert.Equal(t, id, res.Dashboard.AccountID)

	_, err = st.auth.LoginWithPasscode(ctx, id, "999999")
	assertCode(t, err, "AUTH_002")

	_, err = st.auth.LoginWithPasscode(ctx, 404, "123456")
	assertCode(t, err, "ACC_001")

	require.NoError(t, st.accounts.Delete(ctx, id))
	_, err = st.auth.LoginWithPasscode(ctx, id, "123456")
	assertCode(t, err, "ACC_001")
}

func TestAuthService_ChangePassword(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id := registerAndDeposit(t, st, "a@x.com", "9000000001", 0)

	assertCode(t, st.auth.ChangePassword(ctx, id, "wrong", "N3w@passw0rd"), "AUTH_001")
	require.NoError(t, st.auth.ChangePassword(ctx, id, "Abc12345@", "N3w@passw0rd"))

	_, err := st.auth.LoginWithEmail(ctx, "a@x.com", "Abc12345@")
	assertCode(t, err, "AUTH_001")
	_, err = st.auth.LoginWithEmail(ctx, "a@x.com", "N3w@passw0rd")
	require.NoError(t, err)

	assertCode(t, st.auth.ChangePassword(ctx, 77, "x", "y"), "ACC_001")
}

func TestAuthService_TokenIssueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	creds := mocks.NewMockCredentialStore(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	admin := mocks.NewMockAdminAuthenticator(ctrl)
	directory := mocks.NewMockAccountService(ctrl)
	svc := NewAuthService(accounts, creds, mocks.NewMockOTPBroker(ctrl), tokens, admin, directory, "WELCOME", newTestLogger())

	acc := activeAccount(5)
	admin.EXPECT().AuthenticatePassword("a@x.com", "pw").Return(nil, false)
	accounts.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(acc, nil)
	creds.EXPECT().VerifyPassword(gomock.Any(), int64(5), "pw").Return(true, nil)
	creds.EXPECT().TouchLogin(gomock.Any(), int64(5)).Return(nil)
	tokens.EXPECT().Issue(gomock.Any(), time.Duration(0)).Return("", time.Time{}, errors.New("boom"))

	_, err := svc.LoginWithEmail(context.Background(), "a@x.com", "pw")
	assertCode(t, err, "SYS_001")
}

func TestAuthService_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	admin := mocks.NewMockAdminAuthenticator(ctrl)
	svc := NewAuthService(accounts, mocks.NewMockCredentialStore(ctrl), mocks.NewMockOTPBroker(ctrl),
		mocks.NewMockTokenService(ctrl), admin, mocks.NewMockAccountService(ctrl), "WELCOME", newTestLogger())

	admin.EXPECT().AuthenticatePassword(gomock.Any(), gomock.Any()).Return(nil, false)
	accounts.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

	_, err := svc.LoginWithEmail(context.Background(), "a@x.com", "pw")
	assertCode(t, err, "SYS_001")
}
