package postgres

import (
	"errors"

	"mbanq-accounts/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// constraintErrors maps the unique constraints in schema.sql to the
// sentinel errors services understand.
var constraintErrors = map[string]error{
	"accounts_email_live_key":        ports.ErrEmailTaken,
	"accounts_phone_live_key":        ports.ErrPhoneTaken,
	"credentials_pkey":               ports.ErrDuplicateCredential,
	"kyc_records_pkey":               ports.ErrDuplicateKYC,
	"kyc_records_id_digest_key":      ports.ErrIDNumberTaken,
	"ledger_entries_idempotency_key": ports.ErrDuplicateIdempotencyKey,
}

// mapConstraint returns the sentinel for a known unique violation, or err.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if sentinel, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return sentinel
		}
	}
	return err
}
