package postgres

import (
	"context"
	"errors"
	"fmt"

	"mbanq-accounts/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AddressRepo implements ports.AddressRepository.
type AddressRepo struct {
	pool Pool
}

func NewAddressRepo(pool Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (account_id, door_number, street_name, district, state, pincode, country, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)
		RETURNING id`

	err := conn(ctx, r.pool).QueryRow(ctx, query,
		a.AccountID, a.DoorNumber, a.StreetName, a.District, a.State, a.Pincode, a.Country, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	a.IsActive = true
	return nil
}

func (r *AddressRepo) GetActive(ctx context.Context, accountID int64) (*domain.Address, error) {
	query := `SELECT id, account_id, door_number, street_name, district, state, pincode, country, is_active, created_at
		FROM addresses WHERE account_id = $1 AND is_active`

	a := &domain.Address{}
	err := conn(ctx, r.pool).QueryRow(ctx, query, accountID).Scan(
		&a.ID, &a.AccountID, &a.DoorNumber, &a.StreetName, &a.District, &a.State, &a.Pincode, &a.Country,
		&a.IsActive, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active address: %w", err)
	}
	return a, nil
}

// UpsertActive overwrites the active row in place and falls back to an insert.
func (r *AddressRepo) UpsertActive(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET door_number = $1, street_name = $2, district = $3, state = $4, pincode = $5, country = $6
		WHERE account_id = $7 AND is_active
		RETURNING id, created_at`

	err := conn(ctx, r.pool).QueryRow(ctx, query,
		a.DoorNumber, a.StreetName, a.District, a.State, a.Pincode, a.Country, a.AccountID,
	).Scan(&a.ID, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.Create(ctx, a)
	}
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	a.IsActive = true
	return nil
}
