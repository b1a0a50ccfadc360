package memory

import (
	"context"

	"mbanq-accounts/internal/core/domain"
)

// AddressRepo implements ports.AddressRepository. Only the active address
// of each account is kept.
type AddressRepo struct{ s *Store }

func (s *Store) Addresses() *AddressRepo { return &AddressRepo{s: s} }

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	defer r.s.write(ctx)()
	r.s.nextAddressID++
	a.ID = r.s.nextAddressID
	a.IsActive = true
	r.s.addresses[a.AccountID] = *a
	return nil
}

func (r *AddressRepo) GetActive(_ context.Context, accountID int64) (*domain.Address, error) {
	defer r.s.lock()()
	a, ok := r.s.addresses[accountID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AddressRepo) UpsertActive(ctx context.Context, a *domain.Address) error {
	defer r.s.write(ctx)()
	if cur, ok := r.s.addresses[a.AccountID]; ok {
		a.ID = cur.ID
		a.CreatedAt = cur.CreatedAt
	} else {
		r.s.nextAddressID++
		a.ID = r.s.nextAddressID
	}
	a.IsActive = true
	r.s.addresses[a.AccountID] = *a
	return nil
}
