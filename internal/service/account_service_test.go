package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/internal/core/ports/mocks"
	"mbanq-accounts/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerRequest(email, phone string) ports.RegisterRequest {
	return ports.RegisterRequest{
		DisplayName: "Ada King Lovelace",
		DateOfBirth: "10-12-1990",
		Gender:      "F",
		AccountType: domain.AccountTypeSavings,
		Email:       email,
		CountryCode: "+91",
		PhoneNumber: phone,
		Password:    "Abc12345@",
		Address: ports.AddressInput{
			DoorNumber: "12", StreetName: "MG Road", District: "Bengaluru",
			State: "Karnataka", Pincode: "560001", Country: "India",
		},
	}
}

func TestAccountService_Register(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	id, err := st.accounts.Register(ctx, registerRequest("A@X.com ", "9000000001"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	acc, err := st.store.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", acc.FirstName)
	assert.Equal(t, "King Lovelace", acc.LastName)
	assert.Equal(t, "a@x.com", acc.Email)
	assert.Equal(t, 1990, acc.DateOfBirth.Year())
	assert.True(t, acc.IsActive)

	ok, err := st.creds.VerifyPassword(ctx, id, "Abc12345@")
	require.NoError(t, err)
	assert.True(t, ok)

	addr, err := st.store.Addresses().GetActive(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "560001", addr.Pincode)

	rec, err := st.store.KYC().GetByAccountID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCStatusIncomplete, rec.Status)
}

func TestAccountService_Register_Duplicates(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	_, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)

	_, err = st.accounts.Register(ctx, registerRequest("a@x.com", "9000000002"))
	assertCode(t, err, "ACC_002")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	_, err = st.accounts.Register(ctx, registerRequest("b@x.com", "9000000001"))
	assertCode(t, err, "ACC_003")

	list, err := st.store.Accounts().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAccountService_Register_ConcurrentSameEmail(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = st.accounts.Register(ctx, registerRequest("race@x.com", "90000000"+string(rune('0'+i))+"0"))
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	}
	assert.Equal(t, 1, succeeded)
}

func TestAccountService_Register_InvalidDOB(t *testing.T) {
	st := newTestStack(t)
	req := registerRequest("a@x.com", "9000000001")
	req.DateOfBirth = "1990-12-10"

	_, err := st.accounts.Register(context.Background(), req)
	assertCode(t, err, "ACC_007")
}

func TestAccountService_Register_RollsBackOnCredentialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := newTestStack(t)
	creds := mocks.NewMockCredentialStore(ctrl)
	svc := NewAccountService(st.store.Accounts(), st.store.Addresses(), st.store.KYC(), creds, st.kyc, st.ledger, st.store, st.sms, "W", newTestLogger())

	creds.EXPECT().SetCredential(gomock.Any(), int64(1), "Abc12345@", nil).Return(apperror.InternalError(errors.New("hash failed")))

	_, err := svc.Register(context.Background(), registerRequest("a@x.com", "9000000001"))
	require.Error(t, err)

	got, err := st.store.Accounts().GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, got, "account must not survive a failed registration")
}

func TestAccountService_GetProfile(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)

	p, err := st.accounts.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada King Lovelace", p.FullName)
	assert.Equal(t, "+919000000001", p.Phone)
	assert.Equal(t, domain.KYCStatusIncomplete, p.KYCStatus)
	assert.Equal(t, domain.AccountStatusKYCIncomplete, p.Status)

	_, err = st.accounts.GetProfile(ctx, 99)
	assertCode(t, err, "ACC_001")

	require.NoError(t, st.accounts.Delete(ctx, id))
	_, err = st.accounts.GetProfile(ctx, id)
	assertCode(t, err, "ACC_001")
}

func TestAccountService_DeleteFreesContacts(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)

	require.NoError(t, st.accounts.Delete(ctx, id))
	assertCode(t, st.accounts.Delete(ctx, id), "ACC_001")

	id2, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestAccountService_Deactivate(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)

	require.NoError(t, st.accounts.Deactivate(ctx, id))
	require.NoError(t, st.accounts.Deactivate(ctx, id))

	acc, err := st.store.Accounts().GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, acc.IsActive)

	ok, err := st.creds.VerifyPassword(ctx, id, "Abc12345@")
	require.NoError(t, err)
	assert.True(t, ok, "deactivation leaves credentials alone")

	assertCode(t, st.accounts.Deactivate(ctx, 42), "ACC_001")
}

func TestAccountService_AdminUpdate(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)
	_, err = st.kyc.Submit(ctx, id, ports.KYCSubmission{IDNumber: "123412341234"})
	require.NoError(t, err)

	corp := domain.AccountTypeCorporate
	newID := "999988887777"
	err = st.accounts.AdminUpdate(ctx, id, ports.AdminUpdateRequest{
		AccountType: &corp,
		IDNumber:    &newID,
		Address:     &ports.AddressInput{DoorNumber: "1", StreetName: "Park St", District: "Kolkata", State: "WB", Pincode: "700016", Country: "India"},
	})
	require.NoError(t, err)

	acc, _ := st.store.Accounts().GetByID(ctx, id)
	assert.Equal(t, domain.AccountTypeCorporate, acc.AccountType)

	view, err := st.kyc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "XXXXXXXX7777", view.IDNumber)
	assert.Equal(t, domain.KYCStatusPending, view.Status)

	addr, _ := st.store.Addresses().GetActive(ctx, id)
	assert.Equal(t, "700016", addr.Pincode)
}

func TestAccountService_AdminUpdate_Validation(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)

	bad := "12345"
	assertCode(t, st.accounts.AdminUpdate(ctx, id, ports.AdminUpdateRequest{IDNumber: &bad}), "KYC_006")

	weird := domain.AccountType("Checking")
	assertCode(t, st.accounts.AdminUpdate(ctx, id, ports.AdminUpdateRequest{AccountType: &weird}), "VAL_001")

	corp := domain.AccountTypeCorporate
	assertCode(t, st.accounts.AdminUpdate(ctx, 77, ports.AdminUpdateRequest{AccountType: &corp}), "ACC_001")

	require.NoError(t, st.accounts.AdminUpdate(ctx, id, ports.AdminUpdateRequest{}))
}

func TestAccountService_AdminUpdate_RollsBackAllFields(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)
	other, err := st.accounts.Register(ctx, registerRequest("b@x.com", "9000000002"))
	require.NoError(t, err)
	_, err = st.kyc.Submit(ctx, other, ports.KYCSubmission{IDNumber: "123412341234"})
	require.NoError(t, err)

	corp := domain.AccountTypeCorporate
	taken := "123412341234"
	err = st.accounts.AdminUpdate(ctx, id, ports.AdminUpdateRequest{AccountType: &corp, IDNumber: &taken})
	assertCode(t, err, "KYC_005")

	acc, _ := st.store.Accounts().GetByID(ctx, id)
	assert.Equal(t, domain.AccountTypeSavings, acc.AccountType)
}

func TestAccountService_DashboardAndList(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	id, err := st.accounts.Register(ctx, registerRequest("a@x.com", "9000000001"))
	require.NoError(t, err)
	_, err = st.accounts.Register(ctx, registerRequest("b@x.com", "9000000002"))
	require.NoError(t, err)

	_, err = st.ledger.Record(ctx, ports.RecordRequest{AccountID: id, Type: domain.EntryTypeDeposit, Amount: 500})
	require.NoError(t, err)

	d, err := st.accounts.Dashboard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME", d.Message)
	assert.Equal(t, "Ada King Lovelace", d.AccountHolder)
	assert.Equal(t, int64(500), d.AvailableBalance)
	assert.Equal(t, domain.KYCStatusIncomplete, d.KYCStatus)
	assert.Equal(t, domain.AccountStatusKYCIncomplete, d.Status)
	assert.Len(t, d.Transactions, 1)

	list, err := st.accounts.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(500), list[0].AvailableBalance)
	assert.Equal(t, int64(0), list[1].AvailableBalance)
}

// Walks the end-to-end scenario: register, duplicate, KYC submit and
// decide, deposit then withdraw.
func TestAccountService_RegistrationToLedgerScenario(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	req := registerRequest("a@x.com", "9000000001")
	req.Password = "Abc12345@"
	id, err := st.accounts.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = st.accounts.Register(ctx, registerRequest("a@x.com", "9111111111"))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	view, err := st.kyc.Submit(ctx, id, ports.KYCSubmission{IDNumber: "123412341234"})
	require.NoError(t, err)
	assert.Equal(t, domain.KYCStatusPending, view.Status)

	view, err = st.kyc.Decide(ctx, id, domain.KYCStatusVerified)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCStatusVerified, view.Status)
	assert.NotNil(t, view.VerifiedAt)

	_, err = st.kyc.Submit(ctx, id, ports.KYCSubmission{IDNumber: "123412341234"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	profile, err := st.accounts.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, profile.Status)
	dash, err := st.accounts.Dashboard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, dash.Status)

	_, err = st.ledger.Record(ctx, ports.RecordRequest{AccountID: id, Type: domain.EntryTypeDeposit, Amount: 500})
	require.NoError(t, err)
	_, err = st.ledger.Record(ctx, ports.RecordRequest{AccountID: id, Type: domain.EntryTypeWithdraw, Amount: 200})
	require.NoError(t, err)

	bal, err := st.ledger.BalanceOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(300), bal)
}
