// Package extension implements the Extension repository using PostgreSQL.
// A single table stores the extension maps of activity definitions, results,
// and contexts, discriminated by owner_kind.
package extension

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

// Repo provides extension persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new extension repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertSQL = `
INSERT INTO extensions (owner_kind, owner_id, iri, value)
VALUES ($1, $2, $3, $4)
ON CONFLICT (owner_kind, owner_id, iri) DO UPDATE
SET value = EXCLUDED.value`

const getByOwnerSQL = `
SELECT id, owner_kind, owner_id, iri, value
FROM extensions
WHERE owner_kind = $1 AND owner_id = $2
ORDER BY iri`

// ReplaceForOwner writes the extension rows of one owner in a single batch.
// Existing rows with the same IRI are overwritten; rows are never deleted
// here because owners are immutable once their statement is recorded.
func (r *Repo) ReplaceForOwner(ctx context.Context, rows []domain.Extension) error {
	if len(rows) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(upsertSQL, row.OwnerKind, row.OwnerID, row.IRI, row.Value)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for _, row := range rows {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "extension", row.IRI)
		}
	}

	return nil
}

// GetByOwner returns the extension rows of one owner, ordered by IRI.
// Returns an empty slice (not nil) when the owner has no extensions.
func (r *Repo) GetByOwner(ctx context.Context, kind domain.ExtensionOwner, ownerID uuid.UUID) ([]domain.Extension, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByOwnerSQL, kind, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get extensions by owner: %w", err)
	}
	defer rows.Close()

	out := []domain.Extension{}
	for rows.Next() {
		var e domain.Extension
		if err := rows.Scan(&e.ID, &e.OwnerKind, &e.OwnerID, &e.IRI, &e.Value); err != nil {
			return nil, fmt.Errorf("scan extension: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get extensions by owner: %w", err)
	}

	return out, nil
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
