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

// KYCService implements ports.KYCService. The national ID is stored
// AES-GCM encrypted next to an HMAC digest; the digest's unique index is
// what rejects an ID already used by another account.
type KYCService struct {
	accounts  ports.AccountRepository
	records   ports.KYCRepository
	addresses ports.AddressRepository
	tx        ports.DBTransactor
	enc       ports.EncryptionService
	sig       ports.SignatureService
	indexKey  string
	publisher ports.EventPublisher
	log       zerolog.Logger
	now       func() time.Time
}

func NewKYCService(
	accounts ports.AccountRepository,
	records ports.KYCRepository,
	addresses ports.AddressRepository,
	tx ports.DBTransactor,
	enc ports.EncryptionService,
	sig ports.SignatureService,
	indexKey string,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *KYCService {
	return &KYCService{
		accounts:  accounts,
		records:   records,
		addresses: addresses,
		tx:        tx,
		enc:       enc,
		sig:       sig,
		indexKey:  indexKey,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Submit moves the account's KYC from INCOMPLETE (or absent) to PENDING.
func (s *KYCService) Submit(ctx context.Context, accountID int64, sub ports.KYCSubmission) (*domain.KYCView, error) {
	if err := domain.ValidateIDNumber(sub.IDNumber); err != nil {
		return nil, apperror.ErrInvalidIDNumber()
	}
	enc, digest, err := s.sealID(sub.IDNumber)
	if err != nil {
		return nil, err
	}

	var rec *domain.KYCRecord
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireAccount(ctx, accountID); err != nil {
			return err
		}

		now := s.now().UTC()
		existing, err := s.records.GetByAccountID(ctx, accountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get kyc: %w", err))
		}

		if existing == nil {
			rec = domain.NewKYCRecord(accountID, now)
			if err := rec.Submit(enc, digest, now); err != nil {
				return apperror.ErrKYCAlreadySubmitted()
			}
			if err := s.records.Create(ctx, rec); err != nil {
				return mapKYCWriteError(err, apperror.ErrKYCAlreadySubmitted)
			}
		} else {
			rec = existing
			expected := rec.Status
			if err := rec.Submit(enc, digest, now); err != nil {
				return apperror.ErrKYCAlreadySubmitted()
			}
			if err := s.records.Save(ctx, rec, expected); err != nil {
				return mapKYCWriteError(err, apperror.ErrKYCAlreadySubmitted)
			}
		}

		if sub.Address != nil {
			addr := newAddress(accountID, *sub.Address, now)
			if err := s.addresses.UpsertActive(ctx, addr); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("upsert address: %w", err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("account_id", accountID).Msg("kyc submitted")
	s.emit(ctx, domain.EventKYCSubmitted, rec)
	return s.view(rec)
}

// Decide moves PENDING to VERIFIED or REJECTED. An invalid target is
// rejected before anything is read, so it never changes state.
func (s *KYCService) Decide(ctx context.Context, accountID int64, status domain.KYCStatus) (*domain.KYCView, error) {
	if !status.IsDecision() {
		return nil, apperror.ErrKYCInvalidStatus()
	}

	var rec *domain.KYCRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.records.GetByAccountID(ctx, accountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get kyc: %w", err))
		}
		if rec == nil {
			return apperror.ErrKYCNotFound()
		}

		expected := rec.Status
		if err := rec.Decide(status, s.now().UTC()); err != nil {
			if errors.Is(err, domain.ErrKYCInvalidDecision) {
				return apperror.ErrKYCInvalidStatus()
			}
			return apperror.ErrKYCNotPending()
		}
		if err := s.records.Save(ctx, rec, expected); err != nil {
			return mapKYCWriteError(err, apperror.ErrKYCNotPending)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("account_id", accountID).Str("status", string(status)).Msg("kyc decided")
	s.emit(ctx, domain.EventKYCDecided, rec)
	return s.view(rec)
}

// Status reports INCOMPLETE for an existing account without a record.
func (s *KYCService) Status(ctx context.Context, accountID int64) (*domain.KYCView, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	rec, err := s.records.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get kyc: %w", err))
	}
	if rec == nil {
		return &domain.KYCView{AccountID: accountID, Status: domain.KYCStatusIncomplete}, nil
	}
	return s.view(rec)
}

// ReplaceIDNumber is the administrative ID correction. The 12-digit rule
// applies here exactly as on submission.
func (s *KYCService) ReplaceIDNumber(ctx context.Context, accountID int64, idNumber string) error {
	if err := domain.ValidateIDNumber(idNumber); err != nil {
		return apperror.ErrInvalidIDNumber()
	}
	enc, digest, err := s.sealID(idNumber)
	if err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.records.GetByAccountID(ctx, accountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get kyc: %w", err))
		}
		if rec == nil {
			return apperror.ErrKYCNotFound()
		}
		expected := rec.Status
		rec.ReplaceIDNumber(enc, digest, s.now().UTC())
		if err := s.records.Save(ctx, rec, expected); err != nil {
			return mapKYCWriteError(err, apperror.ErrKYCNotPending)
		}
		return nil
	})
}

func (s *KYCService) requireAccount(ctx context.Context, accountID int64) error {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if acc == nil || acc.IsDeleted {
		return apperror.ErrAccountNotFound()
	}
	return nil
}

func (s *KYCService) sealID(id string) (enc, digest string, err error) {
	enc, err = s.enc.Encrypt(id)
	if err != nil {
		return "", "", apperror.ErrEncryptionFailure(fmt.Errorf("encrypt id number: %w", err))
	}
	return enc, s.sig.Sign(s.indexKey, id), nil
}

func (s *KYCService) view(rec *domain.KYCRecord) (*domain.KYCView, error) {
	v := &domain.KYCView{AccountID: rec.AccountID, Status: rec.Status, VerifiedAt: rec.VerifiedAt}
	if rec.IDNumberEnc != nil {
		id, err := s.enc.Decrypt(*rec.IDNumberEnc)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt id number: %w", err))
		}
		v.IDNumber = domain.MaskIDNumber(id)
	}
	return v, nil
}

func (s *KYCService) emit(ctx context.Context, key string, rec *domain.KYCRecord) {
	ev := domain.KYCEvent{AccountID: rec.AccountID, Status: rec.Status, OccurredAt: rec.UpdatedAt}
	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		s.log.Warn().Err(err).Str("event", key).Int64("account_id", rec.AccountID).Msg("publish failed")
	}
}

// mapKYCWriteError translates storage conflicts; stale maps to the caller's
// state error because another request won the race.
func mapKYCWriteError(err error, stale func() *apperror.AppError) error {
	switch {
	case errors.Is(err, ports.ErrKYCStale), errors.Is(err, ports.ErrDuplicateKYC):
		return stale()
	case errors.Is(err, ports.ErrIDNumberTaken):
		return apperror.ErrIDNumberTaken()
	default:
		return apperror.ErrDatabaseError(fmt.Errorf("write kyc: %w", err))
	}
}

func newAddress(accountID int64, in ports.AddressInput, now time.Time) *domain.Address {
	return &domain.Address{
		AccountID:  accountID,
		DoorNumber: in.DoorNumber,
		StreetName: in.StreetName,
		District:   in.District,
		State:      in.State,
		Pincode:    in.Pincode,
		Country:    in.Country,
		IsActive:   true,
		CreatedAt:  now,
	}
}
