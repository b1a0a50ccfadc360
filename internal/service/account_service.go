package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountService implements ports.AccountService.
type AccountService struct {
	accounts  ports.AccountRepository
	addresses ports.AddressRepository
	records   ports.KYCRepository
	creds     ports.CredentialStore
	kyc       ports.KYCService
	ledger    ports.LedgerService
	tx        ports.DBTransactor
	publisher ports.EventPublisher
	welcome   string
	log       zerolog.Logger
	now       func() time.Time
}

func NewAccountService(
	accounts ports.AccountRepository,
	addresses ports.AddressRepository,
	records ports.KYCRepository,
	creds ports.CredentialStore,
	kyc ports.KYCService,
	ledger ports.LedgerService,
	tx ports.DBTransactor,
	publisher ports.EventPublisher,
	welcome string,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		addresses: addresses,
		records:   records,
		creds:     creds,
		kyc:       kyc,
		ledger:    ledger,
		tx:        tx,
		publisher: publisher,
		welcome:   welcome,
		log:       log,
		now:       time.Now,
	}
}

// Register creates Account, Credential, Address and an INCOMPLETE KYC
// record in one unit of work. The pre-checks only produce friendlier
// errors; the store's unique constraints decide.
func (s *AccountService) Register(ctx context.Context, req ports.RegisterRequest) (int64, error) {
	email := domain.NormalizeEmail(req.Email)

	if existing, err := s.accounts.GetByEmail(ctx, email); err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("check email: %w", err))
	} else if existing != nil {
		return 0, apperror.ErrEmailTaken()
	}
	if existing, err := s.accounts.GetByPhone(ctx, req.CountryCode, req.PhoneNumber); err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("check phone: %w", err))
	} else if existing != nil {
		return 0, apperror.ErrPhoneTaken()
	}

	dob, err := domain.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return 0, apperror.ErrInvalidDateOfBirth()
	}
	if !req.AccountType.Valid() {
		return 0, apperror.Validation("account_type must be Student, Savings or Corporate")
	}

	first, last := domain.SplitDisplayName(req.DisplayName)
	acc := &domain.Account{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: dob,
		Gender:      req.Gender,
		AccountType: req.AccountType,
		Email:       email,
		CountryCode: req.CountryCode,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.accounts.Create(ctx, acc); err != nil {
			switch {
			case errors.Is(err, ports.ErrEmailTaken):
				return apperror.ErrEmailTaken()
			case errors.Is(err, ports.ErrPhoneTaken):
				return apperror.ErrPhoneTaken()
			}
			return apperror.ErrDatabaseError(fmt.Errorf("create account: %w", err))
		}

		if err := s.creds.SetCredential(ctx, acc.ID, req.Password, req.Passcode); err != nil {
			return err
		}

		now := s.now().UTC()
		if err := s.addresses.Create(ctx, newAddress(acc.ID, req.Address, now)); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create address: %w", err))
		}
		if err := s.records.Create(ctx, domain.NewKYCRecord(acc.ID, now)); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create kyc: %w", err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().Int64("account_id", acc.ID).Msg("account registered")
	s.emit(ctx, domain.EventAccountRegistered, domain.AccountEvent{AccountID: acc.ID, Email: acc.Email, OccurredAt: acc.CreatedAt})
	return acc.ID, nil
}

// GetProfile hides soft-deleted accounts.
func (s *AccountService) GetProfile(ctx context.Context, accountID int64) (*domain.Profile, error) {
	acc, err := s.live(ctx, accountID)
	if err != nil {
		return nil, err
	}
	status, err := s.kycStatus(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{
		ID:          acc.ID,
		FullName:    acc.FullName(),
		Email:       acc.Email,
		Phone:       acc.PhoneKey(),
		AccountType: acc.AccountType,
		IsActive:    acc.IsActive,
		Status:      acc.Status(status),
		KYCStatus:   status,
	}, nil
}

func (s *AccountService) Dashboard(ctx context.Context, accountID int64) (*domain.Dashboard, error) {
	acc, err := s.live(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.BuildDashboard(ctx, acc)
}

// BuildDashboard is the payload shared by every successful user login.
func (s *AccountService) BuildDashboard(ctx context.Context, acc *domain.Account) (*domain.Dashboard, error) {
	status, err := s.kycStatus(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.BalanceOf(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	history, err := s.ledger.HistoryOf(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{
		Message:          s.welcome,
		AccountID:        acc.ID,
		AccountHolder:    acc.FullName(),
		LoginTime:        s.now().UTC(),
		Status:           acc.Status(status),
		KYCStatus:        status,
		AvailableBalance: balance,
		Transactions:     history,
	}, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.AdminAccountView, error) {
	accs, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list accounts: %w", err))
	}
	balances, err := s.ledger.Balances(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AdminAccountView, 0, len(accs))
	for i := range accs {
		a := &accs[i]
		status, err := s.kycStatus(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.AdminAccountView{
			ID:               a.ID,
			FullName:         a.FullName(),
			Email:            a.Email,
			CountryCode:      a.CountryCode,
			PhoneNumber:      a.PhoneNumber,
			AccountType:      a.AccountType,
			IsActive:         a.IsActive,
			Status:           a.Status(status),
			KYCStatus:        status,
			AvailableBalance: balances[a.ID],
		})
	}
	return out, nil
}

// Deactivate flips is_active; credentials and ledger are untouched.
// Deactivating an inactive account succeeds.
func (s *AccountService) Deactivate(ctx context.Context, accountID int64) error {
	err := s.mutate(ctx, accountID, func(a *domain.Account) { a.IsActive = false })
	if err != nil {
		return err
	}
	s.log.Info().Int64("account_id", accountID).Msg("account deactivated")
	s.emit(ctx, domain.EventAccountDeactivated, domain.AccountEvent{AccountID: accountID, OccurredAt: s.now().UTC()})
	return nil
}

// Delete soft-deletes the account, releasing its email and phone.
func (s *AccountService) Delete(ctx context.Context, accountID int64) error {
	err := s.mutate(ctx, accountID, func(a *domain.Account) {
		a.IsActive = false
		a.IsDeleted = true
	})
	if err != nil {
		return err
	}
	s.log.Info().Int64("account_id", accountID).Msg("account deleted")
	s.emit(ctx, domain.EventAccountDeleted, domain.AccountEvent{AccountID: accountID, OccurredAt: s.now().UTC()})
	return nil
}

// AdminUpdate applies only the fields present in req, all in one unit of work.
func (s *AccountService) AdminUpdate(ctx context.Context, accountID int64, req ports.AdminUpdateRequest) error {
	if req.AccountType != nil && !req.AccountType.Valid() {
		return apperror.Validation("account_type must be Student, Savings or Corporate")
	}
	if req.IDNumber != nil {
		if err := domain.ValidateIDNumber(*req.IDNumber); err != nil {
			return apperror.ErrInvalidIDNumber()
		}
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		acc, err := s.accounts.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock account: %w", err))
		}
		if acc == nil || acc.IsDeleted {
			return apperror.ErrAccountNotFound()
		}

		if req.AccountType != nil {
			acc.AccountType = *req.AccountType
			if err := s.accounts.Update(ctx, acc); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("update account: %w", err))
			}
		}
		if req.IDNumber != nil {
			if err := s.kyc.ReplaceIDNumber(ctx, accountID, *req.IDNumber); err != nil {
				return err
			}
		}
		if req.Address != nil {
			if err := s.addresses.UpsertActive(ctx, newAddress(accountID, *req.Address, s.now().UTC())); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("upsert address: %w", err))
			}
		}
		return nil
	})
}

func (s *AccountService) mutate(ctx context.Context, accountID int64, fn func(*domain.Account)) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		acc, err := s.accounts.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock account: %w", err))
		}
		if acc == nil || acc.IsDeleted {
			return apperror.ErrAccountNotFound()
		}
		fn(acc)
		if err := s.accounts.Update(ctx, acc); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update account: %w", err))
		}
		return nil
	})
}

func (s *AccountService) live(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if acc == nil || acc.IsDeleted {
		return nil, apperror.ErrAccountNotFound()
	}
	return acc, nil
}

func (s *AccountService) kycStatus(ctx context.Context, accountID int64) (domain.KYCStatus, error) {
	rec, err := s.records.GetByAccountID(ctx, accountID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("get kyc: %w", err))
	}
	if rec == nil {
		return domain.KYCStatusIncomplete, nil
	}
	return rec.Status, nil
}

func (s *AccountService) emit(ctx context.Context, key string, ev domain.AccountEvent) {
	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		s.log.Warn().Err(err).Str("event", key).Int64("account_id", ev.AccountID).Msg("publish failed")
	}
}
