// Package object implements the Object repository using PostgreSQL.
// Objects are keyed by their IRI (or urn:uuid for sub-statements) and shared
// between statements; the optional activity definition lives in its own table.
package object

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

// Repo provides object and activity-definition persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new object repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, object_type, statement_id
FROM objects
WHERE id = $1`

const createSQL = `
INSERT INTO objects (id, object_type, statement_id)
VALUES ($1, $2, $3)
RETURNING id, object_type, statement_id`

const getDefinitionSQL = `
SELECT id, object_id, name, description, activity_type, more_info
FROM activity_definitions
WHERE object_id = $1`

const upsertDefinitionSQL = `
INSERT INTO activity_definitions (object_id, name, description, activity_type, more_info)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (object_id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    activity_type = EXCLUDED.activity_type,
    more_info = EXCLUDED.more_info
RETURNING id, object_id, name, description, activity_type, more_info`

// GetByID returns an object by its IRI.
// Returns domain.ErrNotFound when the object has never been recorded.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Object, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var o domain.Object
	err := querier.QueryRow(ctx, getByIDSQL, id).
		Scan(&o.ID, &o.Type, &o.StatementID)
	if err != nil {
		return nil, mapError(err, "object", id)
	}

	return &o, nil
}

// Create inserts a new object and returns the persisted domain.Object.
// Returns domain.ErrAlreadyExists when the IRI is already present; the caller
// re-fetches and reuses the winner's row.
func (r *Repo) Create(ctx context.Context, o *domain.Object) (*domain.Object, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Object
	err := querier.QueryRow(ctx, createSQL, o.ID, o.Type, o.StatementID).
		Scan(&out.ID, &out.Type, &out.StatementID)
	if err != nil {
		return nil, mapError(err, "object", o.ID)
	}

	return &out, nil
}

// GetDefinition returns the activity definition attached to an object.
// Returns domain.ErrNotFound when the object carries no definition.
func (r *Repo) GetDefinition(ctx context.Context, objectID string) (*domain.ActivityDefinition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDefinition(querier.QueryRow(ctx, getDefinitionSQL, objectID))
	if err != nil {
		return nil, mapError(err, "activity_definition", objectID)
	}

	return d, nil
}

// UpsertDefinition inserts or refreshes the activity definition of an object.
// A later statement about the same activity replaces the stored definition,
// keeping the catalog in sync with the most recent description.
func (r *Repo) UpsertDefinition(ctx context.Context, d *domain.ActivityDefinition) (*domain.ActivityDefinition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	name, err := json.Marshal(d.Name)
	if err != nil {
		return nil, fmt.Errorf("activity_definition %s: marshal name: %w", d.ObjectID, err)
	}
	description, err := json.Marshal(d.Description)
	if err != nil {
		return nil, fmt.Errorf("activity_definition %s: marshal description: %w", d.ObjectID, err)
	}

	out, err := scanDefinition(querier.QueryRow(ctx, upsertDefinitionSQL,
		d.ObjectID, name, description, d.Type, d.MoreInfo))
	if err != nil {
		return nil, mapError(err, "activity_definition", d.ObjectID)
	}

	return out, nil
}

func scanDefinition(row pgx.Row) (*domain.ActivityDefinition, error) {
	var (
		d               domain.ActivityDefinition
		rawName, rawDes []byte
	)
	err := row.Scan(&d.ID, &d.ObjectID, &rawName, &rawDes, &d.Type, &d.MoreInfo)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawName, &d.Name); err != nil {
		return nil, fmt.Errorf("unmarshal name: %w", err)
	}
	if err := json.Unmarshal(rawDes, &d.Description); err != nil {
		return nil, fmt.Errorf("unmarshal description: %w", err)
	}
	return &d, nil
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
