// Package memory is an in-process implementation of the storage ports.
// It backs the "memory" storage driver and the end-to-end tests.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"mbanq-accounts/internal/core/domain"
)

type txKey struct{}

// Store keeps every table behind one mutex. Units of work are serialised by
// txMu and rolled back by restoring a snapshot taken when they began. Writes
// outside a unit of work also take txMu so a rollback cannot erase them.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	now  func() time.Time

	accounts      map[int64]domain.Account
	nextAccountID int64
	credentials   map[int64]domain.Credential
	addresses     map[int64]domain.Address // active address per account
	nextAddressID int64
	kyc           map[int64]domain.KYCRecord
	entries       []domain.LedgerEntry
	nextEntryID   int64
	audit         []domain.AuditLog
}

func NewStore() *Store {
	return &Store{
		now:         time.Now,
		accounts:    make(map[int64]domain.Account),
		credentials: make(map[int64]domain.Credential),
		addresses:   make(map[int64]domain.Address),
		kyc:         make(map[int64]domain.KYCRecord),
	}
}

type snapshot struct {
	accounts      map[int64]domain.Account
	nextAccountID int64
	credentials   map[int64]domain.Credential
	addresses     map[int64]domain.Address
	nextAddressID int64
	kyc           map[int64]domain.KYCRecord
	entries       []domain.LedgerEntry
	nextEntryID   int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		accounts:      maps.Clone(s.accounts),
		nextAccountID: s.nextAccountID,
		credentials:   maps.Clone(s.credentials),
		addresses:     maps.Clone(s.addresses),
		nextAddressID: s.nextAddressID,
		kyc:           maps.Clone(s.kyc),
		entries:       append([]domain.LedgerEntry(nil), s.entries...),
		nextEntryID:   s.nextEntryID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = snap.accounts
	s.nextAccountID = snap.nextAccountID
	s.credentials = snap.credentials
	s.addresses = snap.addresses
	s.nextAddressID = snap.nextAddressID
	s.kyc = snap.kyc
	s.entries = snap.entries
	s.nextEntryID = snap.nextEntryID
}

// WithinTransaction implements ports.DBTransactor. Audit rows are kept
// across rollbacks.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// write locks for a mutation. Inside a unit of work txMu is already held.
func (s *Store) write(ctx context.Context) func() {
	if inTx(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}
