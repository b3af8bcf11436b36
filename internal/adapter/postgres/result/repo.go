// Package result implements the Result repository using PostgreSQL.
package result

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new result repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const resultColumns = `id, statement_id, score_scaled, score_raw, score_min, score_max,
success, completion, response, duration`

const createSQL = `
INSERT INTO results (statement_id, score_scaled, score_raw, score_min, score_max,
                     success, completion, response, duration)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + resultColumns

const getByStatementIDSQL = `
SELECT ` + resultColumns + `
FROM results
WHERE statement_id = $1`

// Create inserts the result of a statement and returns the persisted row.
// A statement carries at most one result; a second insert for the same
// statement returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanResult(querier.QueryRow(ctx, createSQL,
		res.StatementID, res.Score.Scaled, res.Score.Raw, res.Score.Min, res.Score.Max,
		res.Success, res.Completion, res.Response, res.Duration))
	if err != nil {
		return nil, mapError(err, "result", res.StatementID.String())
	}

	return out, nil
}

// GetByStatementID returns the result attached to a statement.
// Returns domain.ErrNotFound when the statement has no result.
func (r *Repo) GetByStatementID(ctx context.Context, statementID uuid.UUID) (*domain.Result, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanResult(querier.QueryRow(ctx, getByStatementIDSQL, statementID))
	if err != nil {
		return nil, mapError(err, "result", statementID.String())
	}

	return out, nil
}

func scanResult(row pgx.Row) (*domain.Result, error) {
	var res domain.Result
	err := row.Scan(&res.ID, &res.StatementID,
		&res.Score.Scaled, &res.Score.Raw, &res.Score.Min, &res.Score.Max,
		&res.Success, &res.Completion, &res.Response, &res.Duration)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
