// Package statement implements the Statement repository using PostgreSQL.
// List queries are built dynamically with squirrel; single-row operations
// use raw SQL.
package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// Repo provides statement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const statementColumns = `id, actor_id, verb_id, object_id, "timestamp", created_at`

const createSQL = `
INSERT INTO statements (actor_id, verb_id, object_id, "timestamp")
VALUES ($1, $2, $3, $4)
RETURNING ` + statementColumns

const getByIDSQL = `
SELECT ` + statementColumns + `
FROM statements
WHERE id = $1`

const countPerDaySQL = `
SELECT date_trunc('day', created_at)::date AS day, count(*)
FROM statements
WHERE actor_id = $1 AND created_at >= $2 AND created_at < $3
GROUP BY day
ORDER BY day`

// Create inserts a new statement and returns the persisted domain.Statement.
func (r *Repo) Create(ctx context.Context, st *domain.Statement) (*domain.Statement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanStatement(querier.QueryRow(ctx, createSQL,
		st.ActorID, st.VerbID, st.ObjectID, st.Timestamp))
	if err != nil {
		return nil, mapError(err, "statement", st.ID.String())
	}

	return out, nil
}

// GetByID returns a statement by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanStatement(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "statement", id.String())
	}

	return out, nil
}

// List returns statements matching the filter, ordered by created_at.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.StatementFilter) ([]*domain.Statement, error) {
	f.Normalize()

	b := psql.Select("id", "actor_id", "verb_id", "object_id", `"timestamp"`, "created_at").
		From("statements").
		OrderBy("created_at " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	if f.ActorID != nil {
		b = b.Where(sq.Eq{"actor_id": *f.ActorID})
	}
	if f.VerbID != nil {
		b = b.Where(sq.Eq{"verb_id": *f.VerbID})
	}
	if f.ObjectID != nil {
		b = b.Where(sq.Eq{"object_id": *f.ObjectID})
	}
	if f.Since != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.Since})
	}
	if f.Until != nil {
		b = b.Where(sq.Lt{"created_at": *f.Until})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list statements query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list statements: %w", err)
	}
	defer rows.Close()

	statements := []*domain.Statement{}
	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan statement: %w", err)
		}
		statements = append(statements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list statements: %w", err)
	}

	return statements, nil
}

// CountPerDay returns per-day statement counts for one actor in [from, to).
// Days without statements are absent; the caller zero-fills if needed.
func (r *Repo) CountPerDay(ctx context.Context, actorID uuid.UUID, from, to time.Time) ([]domain.DayCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countPerDaySQL, actorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("count statements per day: %w", err)
	}
	defer rows.Close()

	counts := []domain.DayCount{}
	for rows.Next() {
		var dc domain.DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count statements per day: %w", err)
	}

	return counts, nil
}

func scanStatement(row pgx.Row) (*domain.Statement, error) {
	var st domain.Statement
	err := row.Scan(&st.ID, &st.ActorID, &st.VerbID, &st.ObjectID,
		&st.Timestamp, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
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
