package memory

import (
	"context"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// CredentialRepo implements ports.CredentialRepository.
type CredentialRepo struct{ s *Store }

func (s *Store) Credentials() *CredentialRepo { return &CredentialRepo{s: s} }

func (r *CredentialRepo) Create(ctx context.Context, c *domain.Credential) error {
	defer r.s.write(ctx)()
	if _, ok := r.s.credentials[c.AccountID]; ok {
		return ports.ErrDuplicateCredential
	}
	r.s.credentials[c.AccountID] = *c
	return nil
}

func (r *CredentialRepo) GetByAccountID(_ context.Context, accountID int64) (*domain.Credential, error) {
	defer r.s.lock()()
	c, ok := r.s.credentials[accountID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CredentialRepo) UpdatePassword(ctx context.Context, accountID int64, hash string, at time.Time) error {
	return r.update(ctx, accountID, func(c *domain.Credential) {
		c.PasswordHash = hash
		c.PasswordUpdatedAt = at
	})
}

func (r *CredentialRepo) UpdatePasscode(ctx context.Context, accountID int64, hash string) error {
	return r.update(ctx, accountID, func(c *domain.Credential) {
		c.PasscodeHash = &hash
	})
}

func (r *CredentialRepo) TouchLogin(ctx context.Context, accountID int64, at time.Time) error {
	return r.update(ctx, accountID, func(c *domain.Credential) {
		c.LastLoginAt = &at
	})
}

func (r *CredentialRepo) update(ctx context.Context, accountID int64, fn func(*domain.Credential)) error {
	defer r.s.write(ctx)()
	c, ok := r.s.credentials[accountID]
	if !ok {
		return ports.ErrRowNotFound
	}
	fn(&c)
	r.s.credentials[accountID] = c
	return nil
}
