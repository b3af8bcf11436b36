// Package statement implements the statement construction pipeline: it takes
// a loosely-typed raw payload, resolves or creates the referenced actor, verb,
// and object rows, validates the whole graph, and persists it atomically.
package statement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/config"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// maxNestingDepth bounds sub-statement recursion. The xAPI data model allows
// exactly one level: a sub-statement must not contain another sub-statement.
const maxNestingDepth = 1

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type accountRepo interface {
	GetByHomePage(ctx context.Context, homePage string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
}

type actorRepo interface {
	FindByIFI(ctx context.Context, ifi domain.ActorIFI) (*domain.Actor, error)
	Create(ctx context.Context, a *domain.Actor) (*domain.Actor, error)
	UpdateName(ctx context.Context, id uuid.UUID, name *string) error
}

type verbRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Verb, error)
	Create(ctx context.Context, v *domain.Verb) (*domain.Verb, error)
}

type objectRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Object, error)
	Create(ctx context.Context, o *domain.Object) (*domain.Object, error)
	UpsertDefinition(ctx context.Context, d *domain.ActivityDefinition) (*domain.ActivityDefinition, error)
}

type extensionRepo interface {
	ReplaceForOwner(ctx context.Context, rows []domain.Extension) error
}

type resultRepo interface {
	Create(ctx context.Context, res *domain.Result) (*domain.Result, error)
}

type contextRepo interface {
	Create(ctx context.Context, c *domain.Context) (*domain.Context, error)
	AddActivity(ctx context.Context, ca *domain.ContextActivity) (*domain.ContextActivity, error)
}

type statementRepo interface {
	Create(ctx context.Context, st *domain.Statement) (*domain.Statement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// statementEnqueuer accepts an already-validated raw payload for deferred
// recording. It is optional; see CreateAsync.
type statementEnqueuer interface {
	Enqueue(ctx context.Context, job CreateJob) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the statement recording business logic.
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
	tx         txManager
	queue      statementEnqueuer
	cfg        config.XapiConfig
}

// NewService creates a new Statement service.
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
	tx txManager,
	cfg config.XapiConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "statement"),
		accounts:   accounts,
		actors:     actors,
		verbs:      verbs,
		objects:    objects,
		extensions: extensions,
		results:    results,
		contexts:   contexts,
		statements: statements,
		tx:         tx,
		cfg:        cfg,
	}
}

// SetQueue injects the optional deferred-recording enqueuer.
func (s *Service) SetQueue(q statementEnqueuer) {
	s.queue = q
}
