package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"
)

// CredentialService implements ports.CredentialStore. There is no lockout:
// every failed verification is a plain false.
type CredentialService struct {
	repo ports.CredentialRepository
	hash ports.HashService
	now  func() time.Time
}

func NewCredentialService(repo ports.CredentialRepository, hash ports.HashService) *CredentialService {
	return &CredentialService{repo: repo, hash: hash, now: time.Now}
}

// SetCredential hashes and stores the password and optional passcode.
// The repository's primary key on account id is the duplicate guard.
func (s *CredentialService) SetCredential(ctx context.Context, accountID int64, password string, passcode *string) error {
	pwHash, err := s.hash.Hash(password)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := s.now().UTC()
	cred := &domain.Credential{
		AccountID:         accountID,
		PasswordHash:      pwHash,
		PasswordUpdatedAt: now,
		CreatedAt:         now,
	}
	if passcode != nil && *passcode != "" {
		pcHash, err := s.hash.Hash(*passcode)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("hash passcode: %w", err))
		}
		cred.PasscodeHash = &pcHash
	}

	if err := s.repo.Create(ctx, cred); err != nil {
		if errors.Is(err, ports.ErrDuplicateCredential) {
			return apperror.ErrDuplicateCredential()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("create credential: %w", err))
	}
	return nil
}

func (s *CredentialService) VerifyPassword(ctx context.Context, accountID int64, password string) (bool, error) {
	cred, err := s.load(ctx, accountID)
	if err != nil {
		return false, err
	}
	return s.verify(password, cred.PasswordHash)
}

// VerifyPasscode fails with PasscodeNotSet when no passcode was ever stored,
// so clients can tell "set one up" apart from "wrong passcode".
func (s *CredentialService) VerifyPasscode(ctx context.Context, accountID int64, passcode string) (bool, error) {
	cred, err := s.load(ctx, accountID)
	if err != nil {
		return false, err
	}
	if !cred.HasPasscode() {
		return false, apperror.ErrPasscodeNotSet()
	}
	return s.verify(passcode, *cred.PasscodeHash)
}

func (s *CredentialService) TouchLogin(ctx context.Context, accountID int64) error {
	if err := s.repo.TouchLogin(ctx, accountID, s.now().UTC()); err != nil {
		if errors.Is(err, ports.ErrRowNotFound) {
			return apperror.ErrCredentialNotFound()
		}
		return apperror.ErrDatabaseError(fmt.Errorf("touch login: %w", err))
	}
	return nil
}

// ChangePassword re-verifies the current password before writing the new hash.
func (s *CredentialService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	ok, err := s.VerifyPassword(ctx, accountID, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrInvalidCredentials()
	}

	h, err := s.hash.Hash(newPassword)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}
	if err := s.repo.UpdatePassword(ctx, accountID, h, s.now().UTC()); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update password: %w", err))
	}
	return nil
}

// SetPasscode sets or replaces the passcode; the password proves ownership.
func (s *CredentialService) SetPasscode(ctx context.Context, accountID int64, password, passcode string) error {
	ok, err := s.VerifyPassword(ctx, accountID, password)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrInvalidCredentials()
	}

	h, err := s.hash.Hash(passcode)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash passcode: %w", err))
	}
	if err := s.repo.UpdatePasscode(ctx, accountID, h); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update passcode: %w", err))
	}
	return nil
}

func (s *CredentialService) load(ctx context.Context, accountID int64) (*domain.Credential, error) {
	cred, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get credential: %w", err))
	}
	if cred == nil {
		return nil, apperror.ErrCredentialNotFound()
	}
	return cred, nil
}

func (s *CredentialService) verify(plain, hash string) (bool, error) {
	ok, err := s.hash.Verify(plain, hash)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("verify hash: %w", err))
	}
	return ok, nil
}
