package memory

import (
	"context"

	"mbanq-accounts/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

func (s *Store) Audit() *AuditRepo { return &AuditRepo{s: s} }

func (r *AuditRepo) Create(_ context.Context, l *domain.AuditLog) error {
	defer r.s.lock()()
	r.s.audit = append(r.s.audit, *l)
	return nil
}

// Entries returns a copy of the audit trail.
func (r *AuditRepo) Entries() []domain.AuditLog {
	defer r.s.lock()()
	return append([]domain.AuditLog(nil), r.s.audit...)
}
