package statement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// buildContext validates the raw context payload, resolving its instructor
// and team actors and its context activities. The returned context is not
// yet bound to a statement; the pipeline fills StatementID after the
// statement row exists.
func (s *Service) buildContext(ctx context.Context, raw *RawContext) (*domain.Context, error) {
	stCtx := &domain.Context{
		Registration: optString(raw.Registration),
		Revision:     optString(raw.Revision),
		Platform:     optString(raw.Platform),
		Language:     optString(raw.Language),
		Extensions:   domain.ExtensionMap(raw.Extensions),
	}

	if raw.Instructor != nil {
		instructor, err := s.resolveActor(ctx, raw.Instructor, "")
		if err != nil {
			return nil, err
		}
		stCtx.InstructorID = &instructor.ID
	}

	if raw.Team != nil {
		team, err := s.resolveActor(ctx, raw.Team, "")
		if err != nil {
			return nil, err
		}
		stCtx.TeamID = &team.ID
	}

	if raw.Statement != nil && raw.Statement.ObjectType == string(domain.ObjectTypeStatementRef) {
		ref, err := s.lookupStatementRef(ctx, raw.Statement.ID)
		if err != nil {
			return nil, err
		}
		stCtx.StatementRef = ref
	}

	for tag, entries := range raw.ContextActivities {
		activityType := domain.ContextActivityType(tag)
		if !activityType.IsValid() {
			return nil, domain.NewInvariantError("context.contextActivities", tag,
				"must be parent, grouping, category or other")
		}
		for _, entry := range entries {
			object, err := s.resolveContextActivity(ctx, entry)
			if err != nil {
				return nil, err
			}
			stCtx.Activities = append(stCtx.Activities, domain.ContextActivity{
				ObjectID: object.ID,
				Type:     activityType,
			})
		}
	}

	if err := stCtx.Validate(); err != nil {
		return nil, err
	}
	return stCtx, nil
}

// lookupStatementRef resolves a statement back-reference. A reference to a
// statement that does not exist is tolerated and dropped without error:
// callers may reference statements that were never recorded here.
func (s *Service) lookupStatementRef(ctx context.Context, id string) (*uuid.UUID, error) {
	refID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	target, err := s.statements.GetByID(ctx, refID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find referenced statement: %w", err)
	}
	return &target.ID, nil
}

// resolveContextActivity finds-or-creates the activity object one
// contextActivities entry points at, applying its definition when present.
func (s *Service) resolveContextActivity(ctx context.Context, raw RawContextActivity) (*domain.Object, error) {
	objectType := domain.ObjectType(raw.ObjectType)
	if objectType == "" {
		objectType = domain.ObjectTypeActivity
	}
	if objectType != domain.ObjectTypeActivity {
		return nil, domain.NewInvariantError("context.contextActivities", raw.ObjectType,
			"a context activity must be an Activity")
	}

	object := &domain.Object{ID: raw.ID, Type: objectType}
	if err := object.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.findOrCreateObject(ctx, object)
	if err != nil {
		return nil, err
	}

	if raw.Definition != nil {
		def, err := s.applyDefinition(ctx, stored.ID, raw.Definition)
		if err != nil {
			return nil, err
		}
		stored.Definition = def
	}
	return stored, nil
}
