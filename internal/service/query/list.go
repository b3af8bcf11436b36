package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// ListInput selects statements by actor identifier with optional narrowing.
type ListInput struct {
	Actor  domain.ActorQuery
	VerbID *string
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

// ListStatements returns the statements recorded for one actor identifier,
// newest first. An identifier no actor has ever used yields an empty list,
// not an error.
func (s *Service) ListStatements(ctx context.Context, input ListInput) ([]*domain.Statement, error) {
	if err := input.Actor.Validate(); err != nil {
		return nil, err
	}

	actorID, found, err := s.resolveActorID(ctx, input.Actor)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*domain.Statement{}, nil
	}

	return s.statements.List(ctx, domain.StatementFilter{
		ActorID: &actorID,
		VerbID:  input.VerbID,
		Since:   input.Since,
		Until:   input.Until,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
}

// resolveActorID maps an actor identifier to the stored actor row's id.
// found is false when no actor carries the identifier.
func (s *Service) resolveActorID(ctx context.Context, q domain.ActorQuery) (uuid.UUID, bool, error) {
	ifi := domain.ActorIFI{
		Mbox:        q.NormalizedMbox(),
		MboxSHA1Sum: q.MboxSHA1Sum,
		OpenID:      q.OpenID,
	}

	if q.HomePage != nil {
		account, err := s.accounts.GetByHomePage(ctx, *q.HomePage)
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, false, nil
		}
		if err != nil {
			return uuid.Nil, false, fmt.Errorf("find account: %w", err)
		}
		ifi.AccountID = &account.ID
	}

	actor, err := s.actors.FindByIFI(ctx, ifi)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("find actor: %w", err)
	}
	return actor.ID, true, nil
}
