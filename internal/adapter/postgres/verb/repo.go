// Package verb implements the Verb repository using PostgreSQL.
// Verbs are keyed by their IRI; the display language map is stored as JSONB.
package verb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// Repo provides verb persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new verb repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, display
FROM verbs
WHERE id = $1`

const createSQL = `
INSERT INTO verbs (id, display)
VALUES ($1, $2)
RETURNING id, display`

// GetByID returns a verb by its IRI.
// Returns domain.ErrNotFound when the verb has never been recorded.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Verb, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVerb(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "verb", id)
	}

	return v, nil
}

// Create inserts a new verb and returns the persisted domain.Verb.
// Returns domain.ErrAlreadyExists when the IRI is already present; the caller
// re-fetches and reuses the winner's row.
func (r *Repo) Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	display, err := json.Marshal(v.Display)
	if err != nil {
		return nil, fmt.Errorf("verb %s: marshal display: %w", v.ID, err)
	}

	out, err := scanVerb(querier.QueryRow(ctx, createSQL, v.ID, display))
	if err != nil {
		return nil, mapError(err, "verb", v.ID)
	}

	return out, nil
}

func scanVerb(row pgx.Row) (*domain.Verb, error) {
	var (
		v      domain.Verb
		rawMap []byte
	)
	if err := row.Scan(&v.ID, &rawMap); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawMap, &v.Display); err != nil {
		return nil, fmt.Errorf("unmarshal display: %w", err)
	}
	return &v, nil
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
