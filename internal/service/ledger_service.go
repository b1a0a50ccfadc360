package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/pkg/apperror"

	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// LedgerService implements ports.LedgerService. Balances are always derived
// from entries. Withdrawals that would overdraw are rejected; the account
// row lock taken inside the unit of work serialises them per account.
type LedgerService struct {
	entries   ports.LedgerRepository
	accounts  ports.AccountRepository
	tx        ports.DBTransactor
	cache     ports.IdempotencyCache // optional
	publisher ports.EventPublisher
	log       zerolog.Logger
}

func NewLedgerService(
	entries ports.LedgerRepository,
	accounts ports.AccountRepository,
	tx ports.DBTransactor,
	cache ports.IdempotencyCache,
	publisher ports.EventPublisher,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		entries:   entries,
		accounts:  accounts,
		tx:        tx,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// Record appends one entry. With an idempotency key, a repeated request
// returns the entry recorded by the first one.
func (s *LedgerService) Record(ctx context.Context, req ports.RecordRequest) (*domain.LedgerEntry, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Type.Valid() {
		return nil, apperror.ErrInvalidEntryType()
	}

	cacheKey := ""
	if req.IdempotencyKey != "" {
		cacheKey = fmt.Sprintf("ledger:%d:%s", req.AccountID, req.IdempotencyKey)
		if entry := s.cached(ctx, cacheKey); entry != nil {
			return entry, nil
		}
	}

	var (
		entry    *domain.LedgerEntry
		replayed bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		acc, err := s.accounts.GetByIDForUpdate(ctx, req.AccountID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock account: %w", err))
		}
		if acc == nil || acc.IsDeleted {
			return apperror.ErrAccountNotFound()
		}

		if req.IdempotencyKey != "" {
			prior, err := s.entries.GetByIdempotencyKey(ctx, req.AccountID, req.IdempotencyKey)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("idempotency lookup: %w", err))
			}
			if prior != nil {
				entry, replayed = prior, true
				return nil
			}
		}

		if req.Type == domain.EntryTypeWithdraw {
			balance, err := s.entries.Balance(ctx, req.AccountID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("balance: %w", err))
			}
			if balance < req.Amount {
				return apperror.ErrInsufficientFunds()
			}
		}

		entry = &domain.LedgerEntry{AccountID: req.AccountID, Type: req.Type, Amount: req.Amount}
		if req.IdempotencyKey != "" {
			key := req.IdempotencyKey
			entry.IdempotencyKey = &key
		}
		if err := s.entries.Append(ctx, entry); err != nil {
			if errors.Is(err, ports.ErrDuplicateIdempotencyKey) {
				return err
			}
			return apperror.ErrDatabaseError(fmt.Errorf("append entry: %w", err))
		}
		return nil
	})
	if errors.Is(err, ports.ErrDuplicateIdempotencyKey) {
		// A concurrent request with the same key committed first.
		entry, err = s.entries.GetByIdempotencyKey(ctx, req.AccountID, req.IdempotencyKey)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("idempotency lookup: %w", err))
		}
		if entry == nil {
			return nil, apperror.InternalError(errors.New("idempotency key conflict without entry"))
		}
		replayed = true
	} else if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		s.remember(ctx, cacheKey, entry)
	}
	if !replayed {
		s.log.Info().
			Int64("account_id", entry.AccountID).
			Int64("entry_id", entry.ID).
			Str("type", string(entry.Type)).
			Int64("amount", entry.Amount).
			Msg("ledger entry recorded")
		if err := s.publisher.Publish(ctx, domain.EventLedgerRecorded, entry); err != nil {
			s.log.Warn().Err(err).Int64("entry_id", entry.ID).Msg("publish failed")
		}
	}
	return entry, nil
}

func (s *LedgerService) BalanceOf(ctx context.Context, accountID int64) (int64, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return 0, err
	}
	balance, err := s.entries.Balance(ctx, accountID)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("balance: %w", err))
	}
	return balance, nil
}

// HistoryOf returns entries newest first.
func (s *LedgerService) HistoryOf(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	entries, err := s.entries.History(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("history: %w", err))
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}

func (s *LedgerService) Balances(ctx context.Context) (map[int64]int64, error) {
	balances, err := s.entries.Balances(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("balances: %w", err))
	}
	return balances, nil
}

func (s *LedgerService) requireAccount(ctx context.Context, accountID int64) error {
	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get account: %w", err))
	}
	if acc == nil || acc.IsDeleted {
		return apperror.ErrAccountNotFound()
	}
	return nil
}

// cached is the fast path; any cache failure falls through to the database.
func (s *LedgerService) cached(ctx context.Context, key string) *domain.LedgerEntry {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency cache read failed, falling through to DB")
		return nil
	}
	if raw == nil {
		return nil
	}
	var entry domain.LedgerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency cache entry unreadable")
		return nil
	}
	return &entry
}

func (s *LedgerService) remember(ctx context.Context, key string, entry *domain.LedgerEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("idempotency cache write failed")
	}
}
