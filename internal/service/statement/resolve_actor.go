package statement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// resolveActor maps a raw actor payload to a persisted actor row, creating
// the row on first sight and reusing it afterwards. callerEmail, when
// non-empty and the payload carries no mbox of its own, becomes the actor's
// mbox so that statements posted without an identifier still attach to the
// authenticated caller.
func (s *Service) resolveActor(ctx context.Context, raw *RawActor, callerEmail string) (*domain.Actor, error) {
	if raw == nil {
		return nil, domain.NewStructuralError("statement.actor", "required")
	}

	actor := &domain.Actor{
		ObjectType:  domain.ActorObjectType(raw.ObjectType),
		Name:        optString(raw.Name),
		Mbox:        optString(raw.Mbox),
		MboxSHA1Sum: optString(raw.MboxSHA1Sum),
		OpenID:      optString(raw.OpenID),
	}
	if actor.Mbox == nil && callerEmail != "" {
		mbox := "mailto:" + callerEmail
		actor.Mbox = &mbox
	}

	if raw.Account != nil {
		account, err := s.resolveAccount(ctx, raw.Account)
		if err != nil {
			return nil, err
		}
		actor.Account = account
		actor.AccountID = &account.ID
		// An account-identified actor with no name of its own borrows the
		// account's local name.
		if actor.Name == nil && account.Name != nil {
			actor.Name = account.Name
		}
	}

	actor.Normalize()
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.actors.FindByIFI(ctx, actor.IFI())
	switch {
	case err == nil:
		// A later statement may carry a name the first one lacked.
		if actor.Name != nil && (existing.Name == nil || *existing.Name != *actor.Name) {
			if err := s.actors.UpdateName(ctx, existing.ID, actor.Name); err != nil {
				return nil, fmt.Errorf("refresh actor name: %w", err)
			}
			existing.Name = actor.Name
		}
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find actor: %w", err)
	}

	created, err := s.actors.Create(ctx, actor)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost the insert race; the winner's row is what we want.
		return s.actors.FindByIFI(ctx, actor.IFI())
	}
	if err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}
	return created, nil
}

// resolveAccount finds or creates the account row keyed by home page.
func (s *Service) resolveAccount(ctx context.Context, raw *RawAccount) (*domain.Account, error) {
	account := &domain.Account{
		HomePage: strings.TrimSpace(raw.HomePage),
		Name:     optString(raw.Name),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByHomePage(ctx, account.HomePage)
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find account: %w", err)
	}

	created, err := s.accounts.Create(ctx, account)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.accounts.GetByHomePage(ctx, account.HomePage)
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return created, nil
}
