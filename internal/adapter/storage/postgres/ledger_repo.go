package postgres

import (
	"context"
	"errors"
	"fmt"

	"mbanq-accounts/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const entryColumns = `id, account_id, transaction_type, amount, idempotency_key, created_at`

// LedgerRepo implements ports.LedgerRepository. Rows are never updated.
type LedgerRepo struct {
	pool Pool
}

func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

func (r *LedgerRepo) Append(ctx context.Context, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (account_id, transaction_type, amount, idempotency_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := conn(ctx, r.pool).QueryRow(ctx, query,
		e.AccountID, string(e.Type), e.Amount, e.IdempotencyKey,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

func (r *LedgerRepo) GetByIdempotencyKey(ctx context.Context, accountID int64, key string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE account_id = $1 AND idempotency_key = $2`

	e := &domain.LedgerEntry{}
	err := conn(ctx, r.pool).QueryRow(ctx, query, accountID, key).Scan(entryFields(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry by idempotency key: %w", err)
	}
	return e, nil
}

func (r *LedgerRepo) Balance(ctx context.Context, accountID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN transaction_type = 'WITHDRAW' THEN -amount ELSE amount END), 0)::BIGINT
		FROM ledger_entries WHERE account_id = $1`

	var balance int64
	if err := conn(ctx, r.pool).QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("sum ledger: %w", err)
	}
	return balance, nil
}

func (r *LedgerRepo) History(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries
		WHERE account_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := conn(ctx, r.pool).Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("query ledger history: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(entryFields(&e)...); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *LedgerRepo) Balances(ctx context.Context) (map[int64]int64, error) {
	query := `SELECT account_id,
		SUM(CASE WHEN transaction_type = 'WITHDRAW' THEN -amount ELSE amount END)::BIGINT
		FROM ledger_entries GROUP BY account_id`

	rows, err := conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query balances: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]int64)
	for rows.Next() {
		var id, balance int64
		if err := rows.Scan(&id, &balance); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		out[id] = balance
	}
	return out, rows.Err()
}

func entryFields(e *domain.LedgerEntry) []any {
	return []any{&e.ID, &e.AccountID, &e.Type, &e.Amount, &e.IdempotencyKey, &e.CreatedAt}
}
