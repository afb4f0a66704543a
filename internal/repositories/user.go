package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
)

// ErrUniqueViolation is returned when an insert hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

// pgUniqueViolationCode is the PostgreSQL error code for unique_violation.
const pgUniqueViolationCode = "23505"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserReadRepository {
	return &UserReadRepository{db: db, log: log}
}

// GetByEmail returns the user with the given email, or (nil, nil) if no such
// user exists. Email comparison is case-sensitive, as stored.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserWriteRepository {
	return &UserWriteRepository{db: db, log: log}
}

// Save inserts a new user. A duplicate email is rejected by the UNIQUE
// constraint and surfaced as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) error {
	const query = `
		INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`
	args := []any{email, passwordHash}

	_, err := r.db.ExecContext(ctx, query, args...)

	r.log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return ErrUniqueViolation
	}

	return err
}
