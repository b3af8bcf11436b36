package statement

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// resolveObject maps a raw object payload to a persisted object row. For an
// Activity the row is found-or-created by IRI and its definition merged in.
// For a SubStatement the nested statement is recorded first, via
// createStatement at depth+1, and a fresh object row points at it.
func (s *Service) resolveObject(ctx context.Context, raw *RawObject, caller CallerContext, depth int) (*domain.Object, error) {
	if raw == nil {
		return nil, domain.NewStructuralError("statement.object", "required")
	}

	objectType := domain.ObjectType(raw.ObjectType)
	if objectType == "" {
		objectType = domain.ObjectTypeActivity
	}
	if !objectType.IsValid() {
		return nil, domain.NewInvariantError("object.objectType", raw.ObjectType,
			"must be Activity, Agent, Group, SubStatement or StatementRef")
	}

	if objectType == domain.ObjectTypeSubStatement {
		return s.resolveSubStatement(ctx, raw, caller, depth)
	}

	object := &domain.Object{ID: raw.ID, Type: objectType}
	if err := object.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.findOrCreateObject(ctx, object)
	if err != nil {
		return nil, err
	}

	if raw.Definition != nil && objectType == domain.ObjectTypeActivity {
		def, err := s.applyDefinition(ctx, stored.ID, raw.Definition)
		if err != nil {
			return nil, err
		}
		stored.Definition = def
	}

	return stored, nil
}

// resolveSubStatement validates the nesting rules, records the nested
// statement inside the current transaction, and creates the object row that
// carries its synthetic identity.
func (s *Service) resolveSubStatement(ctx context.Context, raw *RawObject, caller CallerContext, depth int) (*domain.Object, error) {
	if depth >= maxNestingDepth {
		return nil, domain.NewInvariantError("object.objectType", "SubStatement",
			"a sub-statement cannot contain another sub-statement")
	}
	if raw.ID != "" {
		return nil, domain.NewInvariantError("object.id", raw.ID,
			"a sub-statement must not carry an id; its identity is generated")
	}
	if raw.Actor == nil || raw.Verb == nil || raw.Object == nil {
		return nil, domain.NewStructuralError("object",
			"a sub-statement requires actor, verb and object")
	}

	nested := RawStatement{
		Actor:     raw.Actor,
		Verb:      raw.Verb,
		Object:    raw.Object,
		Result:    raw.Result,
		Context:   raw.Context,
		Timestamp: raw.Timestamp,
	}
	subStatement, err := s.createStatement(ctx, nested, caller, depth+1)
	if err != nil {
		return nil, err
	}

	object := &domain.Object{
		ID:          domain.NewSubStatementID(),
		Type:        domain.ObjectTypeSubStatement,
		StatementID: &subStatement.ID,
	}
	created, err := s.objects.Create(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("create sub-statement object: %w", err)
	}
	return created, nil
}

// findOrCreateObject reuses the object row keyed by the caller-supplied IRI,
// creating it on first sight.
func (s *Service) findOrCreateObject(ctx context.Context, object *domain.Object) (*domain.Object, error) {
	existing, err := s.objects.GetByID(ctx, object.ID)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find object: %w", err)
	}

	created, err := s.objects.Create(ctx, object)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.objects.GetByID(ctx, object.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("create object: %w", err)
	}
	return created, nil
}

// applyDefinition validates and upserts the activity definition attached to
// an object, then replaces its extension rows. Repeated posts with a newer
// definition refresh the stored one.
func (s *Service) applyDefinition(ctx context.Context, objectID string, raw *RawDefinition) (*domain.ActivityDefinition, error) {
	def := &domain.ActivityDefinition{
		ObjectID:    objectID,
		Name:        domain.LanguageMap(raw.Name),
		Description: domain.LanguageMap(raw.Description),
		Type:        optString(raw.Type),
		MoreInfo:    optString(raw.MoreInfo),
		Extensions:  domain.ExtensionMap(raw.Extensions),
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.objects.UpsertDefinition(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("upsert activity definition: %w", err)
	}
	stored.Extensions = def.Extensions

	if err := s.extensions.ReplaceForOwner(ctx,
		def.Extensions.Rows(domain.ExtensionOwnerDefinition, stored.ID)); err != nil {
		return nil, fmt.Errorf("store definition extensions: %w", err)
	}
	return stored, nil
}
