package postgres

import (
	"context"
	"errors"
	"fmt"
)

const healthQuery = `SELECT to_regclass('public.accounts') IS NOT NULL`

// HealthCheck reports the database reachable only once the account schema
// exists, so a pod that skipped migration shows as degraded.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := h.pool.QueryRow(ctx, healthQuery).Scan(&migrated); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if !migrated {
		return errors.New("postgres schema not applied")
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
