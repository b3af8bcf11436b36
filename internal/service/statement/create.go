package statement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// Create records one statement. The whole pipeline runs inside a single
// transaction: a failure at any step, including inside a nested
// sub-statement, leaves no rows behind.
func (s *Service) Create(ctx context.Context, raw RawStatement, caller CallerContext) (*domain.Statement, error) {
	var created *domain.Statement

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		st, err := s.createStatement(txCtx, raw, caller, 0)
		if err != nil {
			return err
		}
		created = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cfg.LogStatements {
		s.log.Info("statement recorded",
			slog.String("statement_id", created.ID.String()),
			slog.String("verb", created.VerbID),
			slog.String("object", created.ObjectID),
		)
	}

	return created, nil
}

// createStatement runs the nine pipeline steps for one statement. depth is
// the current sub-statement nesting level; the object resolver calls back
// into this function with depth+1 for a SubStatement object.
func (s *Service) createStatement(ctx context.Context, raw RawStatement, caller CallerContext, depth int) (*domain.Statement, error) {
	// 1. Actor, with optional caller-email injection.
	actor, err := s.resolveActor(ctx, raw.Actor, caller.Email)
	if err != nil {
		return nil, err
	}

	// 2. Verb.
	verb, err := s.resolveVerb(ctx, raw.Verb)
	if err != nil {
		return nil, err
	}

	// 3 + 4. Object, applying its activity definition when present. For a
	// SubStatement object this recursively records the nested statement.
	object, err := s.resolveObject(ctx, raw.Object, caller, depth)
	if err != nil {
		return nil, err
	}

	// 5. Result is validated before anything below is written.
	var result *domain.Result
	if raw.Result != nil {
		result, err = buildResult(raw.Result)
		if err != nil {
			return nil, err
		}
	}

	// 6. Context: resolves instructor/team actors and context activities,
	// and looks up the optional statement back-reference.
	var stCtx *domain.Context
	if raw.Context != nil {
		stCtx, err = s.buildContext(ctx, raw.Context)
		if err != nil {
			return nil, err
		}
	}

	// 7. Assemble and re-check the aggregate. The resolved rows were valid
	// when loaded, but the graph invariants are cheap to check once more.
	st := &domain.Statement{
		ActorID:   actor.ID,
		VerbID:    verb.ID,
		ObjectID:  object.ID,
		Timestamp: raw.Timestamp,
		Actor:     actor,
		Verb:      verb,
		Object:    object,
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	// 8. Persist: the statement row first so the child rows can reference it.
	persisted, err := s.statements.Create(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("create statement: %w", err)
	}
	persisted.Actor = actor
	persisted.Verb = verb
	persisted.Object = object

	if result != nil {
		result.StatementID = persisted.ID
		stored, err := s.results.Create(ctx, result)
		if err != nil {
			return nil, fmt.Errorf("create result: %w", err)
		}
		stored.Extensions = result.Extensions
		if err := s.extensions.ReplaceForOwner(ctx,
			result.Extensions.Rows(domain.ExtensionOwnerResult, stored.ID)); err != nil {
			return nil, fmt.Errorf("store result extensions: %w", err)
		}
		persisted.Result = stored
	}

	if stCtx != nil {
		stCtx.StatementID = persisted.ID
		stored, err := s.contexts.Create(ctx, stCtx)
		if err != nil {
			return nil, fmt.Errorf("create context: %w", err)
		}
		for _, ca := range stCtx.Activities {
			ca.ContextID = stored.ID
			added, err := s.contexts.AddActivity(ctx, &ca)
			if err != nil {
				return nil, fmt.Errorf("link context activity: %w", err)
			}
			stored.Activities = append(stored.Activities, *added)
		}
		stored.Extensions = stCtx.Extensions
		if err := s.extensions.ReplaceForOwner(ctx,
			stCtx.Extensions.Rows(domain.ExtensionOwnerContext, stored.ID)); err != nil {
			return nil, fmt.Errorf("store context extensions: %w", err)
		}
		persisted.Context = stored
	}

	// 9. Done.
	return persisted, nil
}
