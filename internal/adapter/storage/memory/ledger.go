package memory

import (
	"context"
	"sort"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// LedgerRepo implements ports.LedgerRepository over an append-only slice.
type LedgerRepo struct{ s *Store }

func (s *Store) Ledger() *LedgerRepo { return &LedgerRepo{s: s} }

func (r *LedgerRepo) Append(ctx context.Context, e *domain.LedgerEntry) error {
	defer r.s.write(ctx)()
	if e.IdempotencyKey != nil {
		for _, cur := range r.s.entries {
			if cur.AccountID == e.AccountID && cur.IdempotencyKey != nil && *cur.IdempotencyKey == *e.IdempotencyKey {
				return ports.ErrDuplicateIdempotencyKey
			}
		}
	}
	r.s.nextEntryID++
	e.ID = r.s.nextEntryID
	e.CreatedAt = r.s.now().UTC()
	r.s.entries = append(r.s.entries, *e)
	return nil
}

func (r *LedgerRepo) GetByIdempotencyKey(_ context.Context, accountID int64, key string) (*domain.LedgerEntry, error) {
	defer r.s.lock()()
	for _, e := range r.s.entries {
		if e.AccountID == accountID && e.IdempotencyKey != nil && *e.IdempotencyKey == key {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *LedgerRepo) Balance(_ context.Context, accountID int64) (int64, error) {
	defer r.s.lock()()
	var total int64
	for i := range r.s.entries {
		if r.s.entries[i].AccountID == accountID {
			total += r.s.entries[i].Signed()
		}
	}
	return total, nil
}

func (r *LedgerRepo) History(_ context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	defer r.s.lock()()
	var out []domain.LedgerEntry
	for _, e := range r.s.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *LedgerRepo) Balances(_ context.Context) (map[int64]int64, error) {
	defer r.s.lock()()
	out := make(map[int64]int64)
	for i := range r.s.entries {
		out[r.s.entries[i].AccountID] += r.s.entries[i].Signed()
	}
	return out, nil
}
