package postgres

import (
	"context"
	"fmt"

	"mbanq-accounts/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository. It always writes through the
// pool so an entry survives the rollback of the request's unit of work.
type AuditRepo struct {
	pool Pool
}

func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Create(ctx context.Context, l *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, account_id, action, resource_type, resource_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.AccountID, string(l.Action), l.ResourceType, l.ResourceID, l.Details, l.IPAddress, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}
