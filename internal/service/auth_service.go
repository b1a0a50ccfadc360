package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthService implements ports.AuthService: the three login modes, the
// admin variants of email and phone login, and credential maintenance.
type AuthService struct {
	accounts  ports.AccountRepository
	creds     ports.CredentialStore
	otp       ports.OTPBroker
	tokens    ports.TokenService
	admin     ports.AdminAuthenticator
	directory ports.AccountService
	welcome   string
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	accounts ports.AccountRepository,
	creds ports.CredentialStore,
	otp ports.OTPBroker,
	tokens ports.TokenService,
	admin ports.AdminAuthenticator,
	directory ports.AccountService,
	welcome string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts:  accounts,
		creds:     creds,
		otp:       otp,
		tokens:    tokens,
		admin:     admin,
		directory: directory,
		welcome:   welcome,
		log:       log,
		now:       time.Now,
	}
}

// LoginWithEmail tries the admin credential pair first, then the account.
func (s *AuthService) LoginWithEmail(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if p, ok := s.admin.AuthenticatePassword(email, password); ok {
		return s.adminSession(ctx, *p)
	}

	acc, err := s.accounts.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find account: %w", err))
	}
	if acc == nil {
		return nil, apperror.ErrNotRegistered()
	}

	ok, err := s.creds.VerifyPassword(ctx, acc.ID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info().Int64("account_id", acc.ID).Msg("password login rejected")
		return nil, apperror.ErrInvalidCredentials()
	}
	return s.userSession(ctx, acc)
}

// RequestPhoneOTP issues a code for any phone, registered or not, so the
// response never reveals which numbers have accounts.
func (s *AuthService) RequestPhoneOTP(ctx context.Context, countryCode, phoneNumber string) error {
	return s.otp.Issue(ctx, domain.PhoneKey(countryCode, phoneNumber))
}

func (s *AuthService) VerifyPhoneOTP(ctx context.Context, countryCode, phoneNumber, code string) (*ports.LoginResult, error) {
	key := domain.PhoneKey(countryCode, phoneNumber)

	outcome, err := s.otp.Verify(ctx, key, code)
	if err != nil {
		return nil, err
	}
	switch outcome {
	case domain.OTPVerified:
	case domain.OTPExpired:
		return nil, apperror.ErrOTPExpired()
	case domain.OTPNotFound:
		return nil, apperror.ErrOTPNotFound()
	default:
		return nil, apperror.ErrOTPInvalid()
	}

	if p, ok := s.admin.AuthenticatePhone(key); ok {
		return s.adminSession(ctx, *p)
	}

	acc, err := s.accounts.GetByPhone(ctx, strings.TrimSpace(countryCode), strings.TrimSpace(phoneNumber))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find account: %w", err))
	}
	if acc == nil {
		return nil, apperror.ErrNotRegistered()
	}
	return s.userSession(ctx, acc)
}

func (s *AuthService) LoginWithPasscode(ctx context.Context, accountID int64, passcode string) (*ports.LoginResult, error) {
	acc, err := s.liveAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ok, err := s.creds.VerifyPasscode(ctx, accountID, passcode)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info().Int64("account_id", accountID).Msg("passcode login rejected")
		return nil, apperror.ErrInvalidPasscode()
	}
	return s.userSession(ctx, acc)
}

func (s *AuthService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	if _, err := s.liveAccount(ctx, accountID); err != nil {
		return err
	}
	return s.creds.ChangePassword(ctx, accountID, oldPassword, newPassword)
}

func (s *AuthService) SetPasscode(ctx context.Context, accountID int64, password, passcode string) error {
	if _, err := s.liveAccount(ctx, accountID); err != nil {
		return err
	}
	return s.creds.SetPasscode(ctx, accountID, password, passcode)
}

// userSession runs after the credential checked out. Inactive accounts are
// refused only now, so their state is not revealed without a credential.
func (s *AuthService) userSession(ctx context.Context, acc *domain.Account) (*ports.LoginResult, error) {
	if !acc.CanLogin() {
		return nil, apperror.ErrAccountInactive()
	}
	if err := s.creds.TouchLogin(ctx, acc.ID); err != nil {
		return nil, err
	}

	token, exp, err := s.tokens.Issue(ports.Claims{ports.ClaimAccountID: acc.ID}, 0)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("issue token: %w", err))
	}
	dash, err := s.directory.BuildDashboard(ctx, acc)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("account_id", acc.ID).Msg("user logged in")
	return &ports.LoginResult{Token: token, ExpiresAt: exp, Dashboard: dash}, nil
}

func (s *AuthService) adminSession(ctx context.Context, p domain.AdminPrincipal) (*ports.LoginResult, error) {
	token, exp, err := s.tokens.Issue(s.admin.Claims(p), 0)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("issue token: %w", err))
	}
	list, err := s.directory.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("method", string(p.Method)).Msg("admin logged in")
	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: exp,
		Admin: &ports.AdminSession{
			Principal: p,
			Message:   s.welcome + " " + p.Name,
			LoginTime: s.now().UTC(),
			Accounts:  list,
		},
	}, nil
}

func (s *AuthService) liveAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if acc == nil || acc.IsDeleted {
		return nil, apperror.ErrAccountNotFound()
	}
	return acc, nil
}
