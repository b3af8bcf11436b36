package statement

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// resolveVerb maps a raw verb payload to the persisted verb row keyed by its
// IRI. The first writer of an IRI fixes its display map; later statements
// with a different display reuse the stored row unchanged.
func (s *Service) resolveVerb(ctx context.Context, raw *RawVerb) (*domain.Verb, error) {
	if raw == nil {
		return nil, domain.NewStructuralError("statement.verb", "required")
	}

	verb, err := domain.NewVerbLocalized(raw.ID, domain.LanguageMap(raw.Display), s.cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	existing, err := s.verbs.GetByID(ctx, verb.ID)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find verb: %w", err)
	}

	created, err := s.verbs.Create(ctx, verb)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.verbs.GetByID(ctx, verb.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("create verb: %w", err)
	}
	return created, nil
}
