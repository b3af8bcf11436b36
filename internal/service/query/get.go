package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// GetStatement loads one statement with its full aggregate: actor, verb,
// object with definition, result, and context, each with their extensions.
func (s *Service) GetStatement(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	st, err := s.statements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if st.Actor, err = s.actors.GetByID(ctx, st.ActorID); err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	if st.Verb, err = s.verbs.GetByID(ctx, st.VerbID); err != nil {
		return nil, fmt.Errorf("load verb: %w", err)
	}
	if st.Object, err = s.loadObject(ctx, st.ObjectID); err != nil {
		return nil, err
	}

	st.Result, err = s.results.GetByStatementID(ctx, st.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		st.Result = nil
	case err != nil:
		return nil, fmt.Errorf("load result: %w", err)
	default:
		if st.Result.Extensions, err = s.loadExtensions(ctx, domain.ExtensionOwnerResult, st.Result.ID); err != nil {
			return nil, err
		}
	}

	st.Context, err = s.contexts.GetByStatementID(ctx, st.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		st.Context = nil
	case err != nil:
		return nil, fmt.Errorf("load context: %w", err)
	default:
		if st.Context.Extensions, err = s.loadExtensions(ctx, domain.ExtensionOwnerContext, st.Context.ID); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func (s *Service) loadObject(ctx context.Context, id string) (*domain.Object, error) {
	object, err := s.objects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load object: %w", err)
	}

	def, err := s.objects.GetDefinition(ctx, object.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return object, nil
	case err != nil:
		return nil, fmt.Errorf("load activity definition: %w", err)
	}

	if def.Extensions, err = s.loadExtensions(ctx, domain.ExtensionOwnerDefinition, def.ID); err != nil {
		return nil, err
	}
	object.Definition = def
	return object, nil
}

func (s *Service) loadExtensions(ctx context.Context, kind domain.ExtensionOwner, ownerID uuid.UUID) (domain.ExtensionMap, error) {
	rows, err := s.extensions.GetByOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load %s extensions: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	m := make(domain.ExtensionMap, len(rows))
	for _, row := range rows {
		m[row.IRI] = row.Value
	}
	return m, nil
}
