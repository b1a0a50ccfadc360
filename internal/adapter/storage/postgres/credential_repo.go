package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements ports.CredentialRepository.
type CredentialRepo struct {
	pool Pool
}

func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

func (r *CredentialRepo) Create(ctx context.Context, c *domain.Credential) error {
	query := `INSERT INTO credentials (account_id, password_hash, passcode_hash, password_updated_at, last_login_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		c.AccountID, c.PasswordHash, c.PasscodeHash, c.PasswordUpdatedAt, c.LastLoginAt, c.CreatedAt,
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *CredentialRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.Credential, error) {
	query := `SELECT account_id, password_hash, passcode_hash, password_updated_at, last_login_at, created_at
		FROM credentials WHERE account_id = $1`

	c := &domain.Credential{}
	err := conn(ctx, r.pool).QueryRow(ctx, query, accountID).Scan(
		&c.AccountID, &c.PasswordHash, &c.PasscodeHash, &c.PasswordUpdatedAt, &c.LastLoginAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return c, nil
}

func (r *CredentialRepo) UpdatePassword(ctx context.Context, accountID int64, hash string, at time.Time) error {
	return r.exec(ctx, "update password",
		`UPDATE credentials SET password_hash = $1, password_updated_at = $2 WHERE account_id = $3`,
		hash, at, accountID)
}

func (r *CredentialRepo) UpdatePasscode(ctx context.Context, accountID int64, hash string) error {
	return r.exec(ctx, "update passcode",
		`UPDATE credentials SET passcode_hash = $1 WHERE account_id = $2`,
		hash, accountID)
}

func (r *CredentialRepo) TouchLogin(ctx context.Context, accountID int64, at time.Time) error {
	return r.exec(ctx, "touch login",
		`UPDATE credentials SET last_login_at = $1 WHERE account_id = $2`,
		at, accountID)
}

func (r *CredentialRepo) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrRowNotFound
	}
	return nil
}
