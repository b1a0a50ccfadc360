package postgres

import (
	"context"
	"errors"
	"fmt"

	"mbanq-accounts/internal/core/domain"
	"mbanq-accounts/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// KYCRepo implements ports.KYCRepository.
type KYCRepo struct {
	pool Pool
}

func NewKYCRepo(pool Pool) *KYCRepo {
	return &KYCRepo{pool: pool}
}

func (r *KYCRepo) Create(ctx context.Context, k *domain.KYCRecord) error {
	query := `INSERT INTO kyc_records (account_id, status, id_number_enc, id_number_digest, verified_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		k.AccountID, string(k.Status), k.IDNumberEnc, k.IDNumberDigest, k.VerifiedAt, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert kyc record: %w", err)
	}
	return nil
}

func (r *KYCRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.KYCRecord, error) {
	query := `SELECT account_id, status, id_number_enc, id_number_digest, verified_at, created_at, updated_at
		FROM kyc_records WHERE account_id = $1`

	k := &domain.KYCRecord{}
	err := conn(ctx, r.pool).QueryRow(ctx, query, accountID).Scan(
		&k.AccountID, &k.Status, &k.IDNumberEnc, &k.IDNumberDigest, &k.VerifiedAt, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kyc record: %w", err)
	}
	return k, nil
}

// Save is a compare-and-set on status: zero rows updated means another
// writer moved the record first.
func (r *KYCRepo) Save(ctx context.Context, k *domain.KYCRecord, expected domain.KYCStatus) error {
	query := `UPDATE kyc_records
		SET status = $1, id_number_enc = $2, id_number_digest = $3, verified_at = $4, updated_at = $5
		WHERE account_id = $6 AND status = $7`

	tag, err := conn(ctx, r.pool).Exec(ctx, query,
		string(k.Status), k.IDNumberEnc, k.IDNumberDigest, k.VerifiedAt, k.UpdatedAt, k.AccountID, string(expected),
	)
	if err != nil {
		if mapped := mapConstraint(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("save kyc record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrKYCStale
	}
	return nil
}
