package memory

import (
	"context"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
)

// KYCRepo implements ports.KYCRepository.
type KYCRepo struct{ s *Store }

func (s *Store) KYC() *KYCRepo { return &KYCRepo{s: s} }

func (r *KYCRepo) Create(ctx context.Context, k *domain.KYCRecord) error {
	defer r.s.write(ctx)()
	if _, ok := r.s.kyc[k.AccountID]; ok {
		return ports.ErrDuplicateKYC
	}
	if r.s.digestTaken(k.AccountID, k.IDNumberDigest) {
		return ports.ErrIDNumberTaken
	}
	r.s.kyc[k.AccountID] = *k
	return nil
}

func (r *KYCRepo) GetByAccountID(_ context.Context, accountID int64) (*domain.KYCRecord, error) {
	defer r.s.lock()()
	k, ok := r.s.kyc[accountID]
	if !ok {
		return nil, nil
	}
	return &k, nil
}

func (r *KYCRepo) Save(ctx context.Context, k *domain.KYCRecord, expected domain.KYCStatus) error {
	defer r.s.write(ctx)()
	cur, ok := r.s.kyc[k.AccountID]
	if !ok || cur.Status != expected {
		return ports.ErrKYCStale
	}
	if r.s.digestTaken(k.AccountID, k.IDNumberDigest) {
		return ports.ErrIDNumberTaken
	}
	r.s.kyc[k.AccountID] = *k
	return nil
}

func (s *Store) digestTaken(self int64, digest *string) bool {
	if digest == nil {
		return false
	}
	for id, k := range s.kyc {
		if id != self && k.IDNumberDigest != nil && *k.IDNumberDigest == *digest {
			return true
		}
	}
	return false
}
