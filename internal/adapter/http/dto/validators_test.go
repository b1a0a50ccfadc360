package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username:    "Ada Lovelace",
		DateOfBirth: "10-12-1990",
		Gender:      "F",
		AccountType: "Savings",
		Email:       "a@x.com",
		CountryCode: "+91",
		PhoneNumber: "9000000001",
		Password:    "Abc12345@",
		Address: AddressRequest{
			DoorNumber: "12", StreetName: "MG Road", District: "Bengaluru",
			State: "Karnataka", Pincode: "560001", Country: "India",
		},
	}
}

func TestRegisterRequest_Valid(t *testing.T) {
	req := validRegister()
	assert.NoError(t, newValidator().Struct(req))
}

func TestRegisterRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		tag    string
	}{
		{"bad pincode", func(r *RegisterRequest) { r.Address.Pincode = "5600" }, "pincode"},
		{"bad dob", func(r *RegisterRequest) { r.DateOfBirth = "1990-12-10" }, "dob"},
		{"bad account type", func(r *RegisterRequest) { r.AccountType = "Checking" }, "account_type"},
		{"weak password", func(r *RegisterRequest) { r.Password = "abcdefgh" }, "strong_password"},
		{"short password", func(r *RegisterRequest) { r.Password = "Ab1@" }, "strong_password"},
		{"bad passcode", func(r *RegisterRequest) { p := "12ab56"; r.Passcode = &p }, "passcode"},
		{"bad country code", func(r *RegisterRequest) { r.CountryCode = "91" }, "dial_code"},
		{"country code too long", func(r *RegisterRequest) { r.CountryCode = "+12345" }, "dial_code"},
		{"bad phone", func(r *RegisterRequest) { r.PhoneNumber = "90-000" }, "phone_number"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := newValidator().Struct(req)
			require.Error(t, err)
			verrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			assert.Equal(t, tt.tag, verrs[0].Tag())
		})
	}
}

func TestKYCSubmitRequest_NationalID(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(KYCSubmitRequest{AadharNumber: "123412341234"}))
	assert.Error(t, v.Struct(KYCSubmitRequest{AadharNumber: "12341234123"}))
	assert.Error(t, v.Struct(KYCSubmitRequest{AadharNumber: "12341234123x"}))
	assert.Error(t, v.Struct(KYCSubmitRequest{
		AadharNumber: "123412341234",
		Address:      &AddressRequest{DoorNumber: "1", StreetName: "s", District: "d", State: "s", Pincode: "1", Country: "c"},
	}))
}

func TestAdminUpdateRequest_Optional(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(AdminUpdateRequest{}))

	bad := "123"
	assert.Error(t, v.Struct(AdminUpdateRequest{AadharNumber: &bad}))

	typ := "Student"
	req := AdminUpdateRequest{AccountType: &typ}
	require.NoError(t, v.Struct(req))
	port := req.ToPort()
	require.NotNil(t, port.AccountType)
	assert.Equal(t, "Student", string(*port.AccountType))
	assert.Nil(t, port.Address)
	assert.Nil(t, port.IDNumber)
}

func TestValidationMessage(t *testing.T) {
	req := validRegister()
	req.Address.Pincode = "12"
	req.Password = ""

	msg := ValidationMessage(newValidator().Struct(req))
	assert.Contains(t, msg, "Password is required")
	assert.Contains(t, msg, "Pincode must be 6 digits")

	assert.Equal(t, "malformed request body", ValidationMessage(assert.AnError))
}

func TestRegister_DialCodes(t *testing.T) {
	v := newValidator()
	for _, cc := range []string{"+1", "+91", "+971", "+1264"} {
		assert.NoError(t, v.Var(cc, "dial_code"), cc)
	}
	for _, cc := range []string{"91", "+", "IN", "+91a", ""} {
		assert.Error(t, v.Var(cc, "dial_code"), cc)
	}
}

func TestRegister_PhoneRequestsAcceptDialCode(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(LoginPhoneRequest{CountryCode: "+91", PhoneNumber: "9000000001"}))
	assert.NoError(t, v.Struct(VerifyOTPRequest{CountryCode: "+91", PhoneNumber: "9000000001", OTP: "012345"}))
}

func TestRegister_TwiceIsAccepted(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))
	require.NoError(t, Register(v))
}

func TestTrimStrings_KeepsTextVerbatim(t *testing.T) {
	req := validRegister()
	req.Username = "  Shaquille O'Neal & Co "
	req.Email = "o'neal@x.com"
	req.Address.StreetName = " <MG> Road "
	TrimStrings(&req)

	assert.Equal(t, "Shaquille O'Neal & Co", req.Username)
	assert.Equal(t, "o'neal@x.com", req.Email)
	assert.Equal(t, "<MG> Road", req.Address.StreetName)
}

func TestTrimStrings_LeavesSecretsAlone(t *testing.T) {
	passcode := " 123456"
	req := validRegister()
	req.Password = " P&ss<w0rd> "
	req.Passcode = &passcode
	TrimStrings(&req)

	assert.Equal(t, " P&ss<w0rd> ", req.Password)
	assert.Equal(t, " 123456", *req.Passcode)
}

func TestTrimStrings_PointerStructAndNonPointer(t *testing.T) {
	id := " 123412341234 "
	req := AdminUpdateRequest{
		AadharNumber: &id,
		Address:      &AddressRequest{Country: " India "},
	}
	TrimStrings(&req)
	assert.Equal(t, "123412341234", *req.AadharNumber)
	assert.Equal(t, "India", req.Address.Country)

	notPtr := validRegister()
	TrimStrings(notPtr)
}
