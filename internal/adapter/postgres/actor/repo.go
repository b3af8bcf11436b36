// Package actor implements the Actor repository using PostgreSQL.
// Actors are deduplicated on their inverse functional identifier tuple
// (mbox, mbox_sha1sum, openid, account_id) via a NULLS NOT DISTINCT
// unique index.
package actor

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

// Repo provides actor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new actor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const actorColumns = `id, object_type, name, mbox, mbox_sha1sum, openid, account_id, created_at`

const getByIDSQL = `
SELECT ` + actorColumns + `
FROM actors
WHERE id = $1`

// IS NOT DISTINCT FROM treats two NULLs as equal, matching the
// NULLS NOT DISTINCT unique index on the same tuple.
const findByIFISQL = `
SELECT ` + actorColumns + `
FROM actors
WHERE mbox IS NOT DISTINCT FROM $1
  AND mbox_sha1sum IS NOT DISTINCT FROM $2
  AND openid IS NOT DISTINCT FROM $3
  AND account_id IS NOT DISTINCT FROM $4`

const createSQL = `
INSERT INTO actors (object_type, name, mbox, mbox_sha1sum, openid, account_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + actorColumns

const updateNameSQL = `
UPDATE actors SET name = $2 WHERE id = $1`

// GetByID returns an actor by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActor(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "actor", id.String())
	}

	return a, nil
}

// FindByIFI returns the actor with exactly the given identifier tuple.
// Returns domain.ErrNotFound when no actor matches.
func (r *Repo) FindByIFI(ctx context.Context, ifi domain.ActorIFI) (*domain.Actor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActor(querier.QueryRow(ctx, findByIFISQL,
		ifi.Mbox, ifi.MboxSHA1Sum, ifi.OpenID, ifi.AccountID))
	if err != nil {
		return nil, mapError(err, "actor", ifi.String())
	}

	return a, nil
}

// Create inserts a new actor and returns the persisted domain.Actor.
// Returns domain.ErrAlreadyExists when another actor already holds the same
// identifier tuple; the caller re-fetches via FindByIFI and reuses that row.
func (r *Repo) Create(ctx context.Context, a *domain.Actor) (*domain.Actor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanActor(querier.QueryRow(ctx, createSQL,
		a.ObjectType, a.Name, a.Mbox, a.MboxSHA1Sum, a.OpenID, a.AccountID))
	if err != nil {
		return nil, mapError(err, "actor", a.IFI().String())
	}

	return out, nil
}

// UpdateName sets the display name of an existing actor.
// Returns domain.ErrNotFound if the actor does not exist.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name *string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateNameSQL, id, name)
	if err != nil {
		return mapError(err, "actor", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("actor %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanActor(row pgx.Row) (*domain.Actor, error) {
	var a domain.Actor
	err := row.Scan(&a.ID, &a.ObjectType, &a.Name, &a.Mbox,
		&a.MboxSHA1Sum, &a.OpenID, &a.AccountID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
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
