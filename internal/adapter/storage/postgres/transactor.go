package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Transactor implements ports.DBTransactor on a pgx pool.
type Transactor struct {
	pool Pool
	log  zerolog.Logger
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool, log zerolog.Logger) *Transactor {
	return &Transactor{pool: pool, log: log}
}

// WithinTransaction runs fn in a transaction carried by the context it
// receives. A ctx that already carries one is reused as is.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			t.log.Error().Err(rbErr).Msg("rollback failed")
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
