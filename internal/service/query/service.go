// Package query implements the read side: statement lookups by actor
// identifier, single-statement retrieval with the full aggregate loaded,
// and the per-month activity aggregation.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

type accountRepo interface {
	GetByHomePage(ctx context.Context, homePage string) (*domain.Account, error)
}

type actorRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
	FindByIFI(ctx context.Context, ifi domain.ActorIFI) (*domain.Actor, error)
}

type verbRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Verb, error)
}

type objectRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Object, error)
	GetDefinition(ctx context.Context, objectID string) (*domain.ActivityDefinition, error)
}

type extensionRepo interface {
	GetByOwner(ctx context.Context, kind domain.ExtensionOwner, ownerID uuid.UUID) ([]domain.Extension, error)
}

type resultRepo interface {
	GetByStatementID(ctx context.Context, statementID uuid.UUID) (*domain.Result, error)
}

type contextRepo interface {
	GetByStatementID(ctx context.Context, statementID uuid.UUID) (*domain.Context, error)
}

type statementRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	List(ctx context.Context, f domain.StatementFilter) ([]*domain.Statement, error)
	CountPerDay(ctx context.Context, actorID uuid.UUID, from, to time.Time) ([]domain.DayCount, error)
}

// Service implements the statement read API.
type Service struct {
	log        *slog.Logger
	accounts   accountRepo
	actors     actorRepo
	verbs      verbRepo
	objects    objectRepo
	extensions extensionRepo
	results    resultRepo
	contexts   contextRepo
	statements statementRepo
}

// NewService creates a new Query service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	actors actorRepo,
	verbs verbRepo,
	objects objectRepo,
	extensions extensionRepo,
	results resultRepo,
	contexts contextRepo,
	statements statementRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "query"),
		accounts:   accounts,
		actors:     actors,
		verbs:      verbs,
		objects:    objects,
		extensions: extensions,
		results:    results,
		contexts:   contexts,
		statements: statements,
	}
}
