package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultOTPTTL is the lifetime of an issued code.
const DefaultOTPTTL = 3 * time.Minute

var otpSpace = big.NewInt(1_000_000)

// OTPService implements ports.OTPBroker. Codes are delivered by publishing
// an otp.issued event; the store holds at most one live code per phone key.
type OTPService struct {
	store     ports.OTPStore
	publisher ports.EventPublisher
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time
	random    io.Reader
}

func NewOTPService(store ports.OTPStore, publisher ports.EventPublisher, ttl time.Duration, log zerolog.Logger) *OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPService{
		store:     store,
		publisher: publisher,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
		random:    rand.Reader,
	}
}

// Issue replaces any live code for phoneKey with a fresh one.
func (s *OTPService) Issue(ctx context.Context, phoneKey string) error {
	code, err := s.generate()
	if err != nil {
		return apperror.InternalError(fmt.Errorf("generate otp: %w", err))
	}

	now := s.now().UTC()
	rec := &domain.OTPRecord{
		PhoneKey:  phoneKey,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return apperror.InternalError(fmt.Errorf("store otp: %w", err))
	}

	ev := domain.OTPIssuedEvent{PhoneKey: phoneKey, Code: code, ExpiresAt: rec.ExpiresAt}
	if err := s.publisher.Publish(ctx, domain.EventOTPIssued, ev); err != nil {
		s.withdraw(context.WithoutCancel(ctx), rec)
		return apperror.InternalError(fmt.Errorf("dispatch otp: %w", err))
	}

	s.log.Info().Str("phone_key", phoneKey).Time("expires_at", rec.ExpiresAt).Msg("otp issued")
	return nil
}

// Verify consumes the live record whatever the outcome, so every code is
// single-use and a failed attempt forces a new Issue.
func (s *OTPService) Verify(ctx context.Context, phoneKey, code string) (domain.OTPOutcome, error) {
	rec, err := s.store.Take(ctx, phoneKey)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("take otp: %w", err))
	}
	if rec == nil {
		return domain.OTPNotFound, nil
	}

	outcome := rec.Check(code, s.now())
	s.log.Info().Str("phone_key", phoneKey).Str("outcome", string(outcome)).Msg("otp verified")
	return outcome, nil
}

// withdraw removes an undelivered code. A newer record issued in the
// meantime is put back.
func (s *OTPService) withdraw(ctx context.Context, rec *domain.OTPRecord) {
	taken, err := s.store.Take(ctx, rec.PhoneKey)
	if err == nil && taken != nil && taken.Code != rec.Code {
		err = s.store.Put(ctx, taken)
	}
	if err != nil {
		s.log.Error().Err(err).Str("phone_key", rec.PhoneKey).Msg("failed to withdraw undelivered otp")
	}
}

// generate draws uniformly from 000000-999999.
func (s *OTPService) generate() (string, error) {
	n, err := rand.Int(s.random, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
