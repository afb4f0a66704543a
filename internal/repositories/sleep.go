package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
)

// SleepReadRepository handles sleep record read operations
type SleepReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewSleepReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *SleepReadRepository {
	return &SleepReadRepository{db: db, log: log}
}

// ListByUserID returns all sleep records owned by the given user.
func (r *SleepReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error) {
	const query = `
		SELECT sleep_id, user_id, sleep_date, hours, quality, created_at, updated_at
		FROM sleeps
		WHERE user_id = $1
		ORDER BY created_at
	`

	sleeps := []models.SleepDB{}
	err := r.db.SelectContext(ctx, &sleeps, query, userID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(sleeps),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return sleeps, nil
}

// GetByID returns the sleep record with the given id regardless of owner,
// or (nil, nil) if no such record exists. Ownership is resolved by the caller.
func (r *SleepReadRepository) GetByID(ctx context.Context, sleepID uuid.UUID) (*models.SleepDB, error) {
	const query = `
		SELECT sleep_id, user_id, sleep_date, hours, quality, created_at, updated_at
		FROM sleeps
		WHERE sleep_id = $1
		LIMIT 1
	`

	var sleep models.SleepDB
	err := r.db.GetContext(ctx, &sleep, query, sleepID)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sleepID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sleep, nil
}

// SleepWriteRepository handles sleep record write operations
type SleepWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	log      *zap.SugaredLogger
}

func NewSleepWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx, log *zap.SugaredLogger) *SleepWriteRepository {
	return &SleepWriteRepository{db: db, txGetter: txGetter, log: log}
}

// executor returns the context transaction when one is present, otherwise the pool.
func (r *SleepWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new sleep record stamped with the owner and returns it.
func (r *SleepWriteRepository) Save(ctx context.Context, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error) {
	const query = `
		INSERT INTO sleeps (sleep_id, user_id, sleep_date, hours, quality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING sleep_id, user_id, sleep_date, hours, quality, created_at, updated_at
	`
	args := []any{uuid.New(), userID, date, hours, quality}

	var sleep models.SleepDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &sleep, query, args...)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &sleep, nil
}

// Update replaces the mutable fields of the record with the given id, owner
// filtered. Returns (nil, nil) when no row matched.
func (r *SleepWriteRepository) Update(ctx context.Context, sleepID, userID uuid.UUID, date string, hours float64, quality string) (*models.SleepDB, error) {
	const query = `
		UPDATE sleeps
		SET sleep_date = $3, hours = $4, quality = $5, updated_at = NOW()
		WHERE sleep_id = $1 AND user_id = $2
		RETURNING sleep_id, user_id, sleep_date, hours, quality, created_at, updated_at
	`
	args := []any{sleepID, userID, date, hours, quality}

	var sleep models.SleepDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &sleep, query, args...)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sleep, nil
}

// Delete removes the record with the given id, owner filtered. Returns false
// when no row matched.
func (r *SleepWriteRepository) Delete(ctx context.Context, sleepID, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM sleeps
		WHERE sleep_id = $1 AND user_id = $2
	`
	args := []any{sleepID, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
