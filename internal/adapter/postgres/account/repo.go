// Package account implements the Account repository using PostgreSQL.
// Accounts are the home-page half of the account inverse functional
// identifier and are shared between actors.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByHomePageSQL = `
SELECT id, home_page, name, created_at
FROM accounts
WHERE home_page = $1`

const createSQL = `
INSERT INTO accounts (home_page, name)
VALUES ($1, $2)
RETURNING id, home_page, name, created_at`

const updateNameSQL = `
UPDATE accounts SET name = $2 WHERE id = $1`

// GetByHomePage returns the account registered for the given home page.
// Returns domain.ErrNotFound when no such account exists.
func (r *Repo) GetByHomePage(ctx context.Context, homePage string) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Account
	err := querier.QueryRow(ctx, getByHomePageSQL, homePage).
		Scan(&a.ID, &a.HomePage, &a.Name, &a.CreatedAt)
	if err != nil {
		return nil, mapError(err, "account", homePage)
	}

	return &a, nil
}

// Create inserts a new account and returns the persisted domain.Account.
// Returns domain.ErrAlreadyExists if the home page is already registered;
// the caller is expected to re-fetch and reuse the winner's row.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Account
	err := querier.QueryRow(ctx, createSQL, a.HomePage, a.Name).
		Scan(&out.ID, &out.HomePage, &out.Name, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err, "account", a.HomePage)
	}

	return &out, nil
}

// UpdateName sets the display name of an existing account.
func (r *Repo) UpdateName(ctx context.Context, a *domain.Account) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateNameSQL, a.ID, a.Name)
	if err != nil {
		return mapError(err, "account", a.HomePage)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", a.HomePage, domain.ErrNotFound)
	}

	return nil
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
