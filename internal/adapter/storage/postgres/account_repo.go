package postgres

import (
	"context"
	"errors"
	"fmt"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, first_name, last_name, date_of_birth, gender, account_type, email,
	country_code, phone_number, is_active, is_deleted, created_at, updated_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (first_name, last_name, date_of_birth, gender, account_type, email,
		country_code, phone_number, is_active, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := conn(ctx, r.pool).QueryRow(ctx, query,
		a.FirstName, a.LastName, a.DateOfBirth, a.Gender, string(a.AccountType), a.Email,
		a.CountryCode, a.PhoneNumber, a.IsActive, a.IsDeleted,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(conn(ctx, r.pool).QueryRow(ctx, query, id), "get account by id")
}

// GetByIDForUpdate must run inside a unit of work; the lock lasts until it ends.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(conn(ctx, r.pool).QueryRow(ctx, query, id), "get account for update")
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 AND NOT is_deleted`
	return scanAccount(conn(ctx, r.pool).QueryRow(ctx, query, email), "get account by email")
}

func (r *AccountRepo) GetByPhone(ctx context.Context, countryCode, phoneNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE country_code = $1 AND phone_number = $2 AND NOT is_deleted`
	return scanAccount(conn(ctx, r.pool).QueryRow(ctx, query, countryCode, phoneNumber), "get account by phone")
}

func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE NOT is_deleted ORDER BY id`

	rows, err := conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Account, 0)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(accountFields(&a)...); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AccountRepo) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET account_type = $1, is_active = $2, is_deleted = $3, updated_at = NOW()
		WHERE id = $4 RETURNING updated_at`

	err := conn(ctx, r.pool).QueryRow(ctx, query, string(a.AccountType), a.IsActive, a.IsDeleted, a.ID).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update account %d: %w", a.ID, ports.ErrRowNotFound)
		}
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func accountFields(a *domain.Account) []any {
	return []any{
		&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.Gender, &a.AccountType, &a.Email,
		&a.CountryCode, &a.PhoneNumber, &a.IsActive, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt,
	}
}

func scanAccount(row pgx.Row, op string) (*domain.Account, error) {
	a := &domain.Account{}
	if err := row.Scan(accountFields(a)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
