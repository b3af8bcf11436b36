// Package statementctx implements the statement Context repository using
// PostgreSQL, including the per-context activity links.
package statementctx

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

// Repo provides statement-context persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statement-context repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contextColumns = `id, statement_id, instructor_id, team_id, statement_ref,
registration, revision, platform, language`

const createSQL = `
INSERT INTO contexts (statement_id, instructor_id, team_id, statement_ref,
                      registration, revision, platform, language)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + contextColumns

const getByStatementIDSQL = `
SELECT ` + contextColumns + `
FROM contexts
WHERE statement_id = $1`

const addActivitySQL = `
INSERT INTO context_activities (context_id, object_id, activity_type)
VALUES ($1, $2, $3)
RETURNING id, context_id, object_id, activity_type`

const getActivitiesSQL = `
SELECT id, context_id, object_id, activity_type
FROM context_activities
WHERE context_id = $1
ORDER BY activity_type, object_id`

// Create inserts the context of a statement and returns the persisted row.
// A statement carries at most one context; a second insert for the same
// statement returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Context) (*domain.Context, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanContext(querier.QueryRow(ctx, createSQL,
		c.StatementID, c.InstructorID, c.TeamID, c.StatementRef,
		c.Registration, c.Revision, c.Platform, c.Language))
	if err != nil {
		return nil, mapError(err, "context", c.StatementID.String())
	}

	return out, nil
}

// GetByStatementID returns the context attached to a statement, with its
// activity links populated.
// Returns domain.ErrNotFound when the statement has no context.
func (r *Repo) GetByStatementID(ctx context.Context, statementID uuid.UUID) (*domain.Context, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanContext(querier.QueryRow(ctx, getByStatementIDSQL, statementID))
	if err != nil {
		return nil, mapError(err, "context", statementID.String())
	}

	activities, err := r.getActivities(ctx, out.ID)
	if err != nil {
		return nil, err
	}
	out.Activities = activities

	return out, nil
}

// AddActivity links one activity object to a context under the given tag.
func (r *Repo) AddActivity(ctx context.Context, ca *domain.ContextActivity) (*domain.ContextActivity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ContextActivity
	err := querier.QueryRow(ctx, addActivitySQL, ca.ContextID, ca.ObjectID, ca.Type).
		Scan(&out.ID, &out.ContextID, &out.ObjectID, &out.Type)
	if err != nil {
		return nil, mapError(err, "context_activity", ca.ObjectID)
	}

	return &out, nil
}

func (r *Repo) getActivities(ctx context.Context, contextID uuid.UUID) ([]domain.ContextActivity, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getActivitiesSQL, contextID)
	if err != nil {
		return nil, fmt.Errorf("get context activities: %w", err)
	}
	defer rows.Close()

	out := []domain.ContextActivity{}
	for rows.Next() {
		var ca domain.ContextActivity
		if err := rows.Scan(&ca.ID, &ca.ContextID, &ca.ObjectID, &ca.Type); err != nil {
			return nil, fmt.Errorf("scan context activity: %w", err)
		}
		out = append(out, ca)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get context activities: %w", err)
	}

	return out, nil
}

func scanContext(row pgx.Row) (*domain.Context, error) {
	var c domain.Context
	err := row.Scan(&c.ID, &c.StatementID, &c.InstructorID, &c.TeamID, &c.StatementRef,
		&c.Registration, &c.Revision, &c.Platform, &c.Language)
	if err != nil {
		return nil, err
	}
	return &c, nil
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
