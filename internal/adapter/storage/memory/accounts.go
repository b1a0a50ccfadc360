package memory

import (
	"context"
	"fmt"
	"sort"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct{ s *Store }

func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s: s} }

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	defer r.s.write(ctx)()
	if err := r.s.checkContactsFree(0, a.Email, a.CountryCode, a.PhoneNumber); err != nil {
		return err
	}
	r.s.nextAccountID++
	a.ID = r.s.nextAccountID
	now := r.s.now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.accounts[a.ID] = *a
	return nil
}

func (r *AccountRepo) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	defer r.s.lock()()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetByIDForUpdate needs no extra locking: units of work are serial.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	defer r.s.lock()()
	for _, a := range r.s.accounts {
		if !a.IsDeleted && a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) GetByPhone(_ context.Context, countryCode, phoneNumber string) (*domain.Account, error) {
	defer r.s.lock()()
	for _, a := range r.s.accounts {
		if !a.IsDeleted && a.CountryCode == countryCode && a.PhoneNumber == phoneNumber {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) List(_ context.Context) ([]domain.Account, error) {
	defer r.s.lock()()
	out := make([]domain.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		if !a.IsDeleted {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepo) Update(ctx context.Context, a *domain.Account) error {
	defer r.s.write(ctx)()
	cur, ok := r.s.accounts[a.ID]
	if !ok {
		return fmt.Errorf("update account %d: %w", a.ID, ports.ErrRowNotFound)
	}
	cur.AccountType = a.AccountType
	cur.IsActive = a.IsActive
	cur.IsDeleted = a.IsDeleted
	cur.UpdatedAt = r.s.now().UTC()
	r.s.accounts[a.ID] = cur
	a.UpdatedAt = cur.UpdatedAt
	return nil
}

// checkContactsFree mirrors the partial unique indexes on live accounts.
func (s *Store) checkContactsFree(self int64, email, countryCode, phone string) error {
	for id, a := range s.accounts {
		if id == self || a.IsDeleted {
			continue
		}
		if a.Email == email {
			return ports.ErrEmailTaken
		}
		if a.CountryCode == countryCode && a.PhoneNumber == phone {
			return ports.ErrPhoneTaken
		}
	}
	return nil
}
