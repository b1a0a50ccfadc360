package memory

import (
	"context"
	"sync"
	"time"

	"mbanq-accounts/internal/core/domain"

	"github.com/rs/zerolog"
)

// OTPStore implements ports.OTPStore with a mutex-guarded map. Take reads
// and deletes under one lock, so concurrent verifies of one code cannot
// both observe it.
type OTPStore struct {
	mu      sync.Mutex
	records map[string]domain.OTPRecord
}

func NewOTPStore() *OTPStore {
	return &OTPStore{records: make(map[string]domain.OTPRecord)}
}

func (s *OTPStore) Put(_ context.Context, rec *domain.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.PhoneKey] = *rec
	return nil
}

func (s *OTPStore) Take(_ context.Context, phoneKey string) (*domain.OTPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[phoneKey]
	if !ok {
		return nil, nil
	}
	delete(s.records, phoneKey)
	return &rec, nil
}

// Len returns the number of stored records, live or expired.
func (s *OTPStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Reap drops records expired at now and returns how many were removed.
func (s *OTPStore) Reap(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, rec := range s.records {
		if !now.Before(rec.ExpiresAt) {
			delete(s.records, k)
			n++
		}
	}
	return n
}

// StartReaper removes abandoned records every interval until ctx is done.
// Verification never depends on it; it only bounds memory.
func (s *OTPStore) StartReaper(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.Reap(now); n > 0 {
					log.Debug().Int("reaped", n).Msg("expired otp records removed")
				}
			}
		}
	}()
}
