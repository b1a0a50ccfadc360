package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// expiryGrace keeps an expired record readable for a while so a late
// verify reports EXPIRED instead of NOT_FOUND.
const expiryGrace = time.Minute

// OTPStore implements ports.OTPStore. Take uses GETDEL, so of two
// concurrent verifies only one sees the record.
type OTPStore struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewOTPStore(client goredis.UniversalClient) *OTPStore {
	return &OTPStore{client: client, prefix: "otp:", now: time.Now}
}

func (s *OTPStore) Put(ctx context.Context, rec *domain.OTPRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode otp record: %w", err)
	}

	ttl := rec.ExpiresAt.Sub(s.now()) + expiryGrace
	if ttl < expiryGrace {
		ttl = expiryGrace
	}
	if err := s.client.Set(ctx, s.prefix+rec.PhoneKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("store otp record: %w", err)
	}
	return nil
}

func (s *OTPStore) Take(ctx context.Context, phoneKey string) (*domain.OTPRecord, error) {
	raw, err := s.client.GetDel(ctx, s.prefix+phoneKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("take otp record: %w", err)
	}

	var rec domain.OTPRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode otp record: %w", err)
	}
	return &rec, nil
}
