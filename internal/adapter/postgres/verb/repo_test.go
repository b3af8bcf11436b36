package verb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/verb"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

func newRepo(t *testing.T) *verb.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return verb.New(pool)
}

func uniqueIRI() string {
	return "https://example.com/verbs/test-" + uuid.New().String()[:8]
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	input := domain.Verb{
		ID:      uniqueIRI(),
		Display: domain.LanguageMap{"en-US": "tested", "fr-FR": "testé"},
	}

	got, err := repo.Create(ctx, &input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != input.ID {
		t.Errorf("ID = %s, want %s", got.ID, input.ID)
	}
	if got.Display["en-US"] != "tested" {
		t.Errorf("Display[en-US] = %q, want %q", got.Display["en-US"], "tested")
	}
	if got.Display["fr-FR"] != "testé" {
		t.Errorf("Display[fr-FR] = %q, want %q", got.Display["fr-FR"], "testé")
	}
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	input := domain.Verb{ID: uniqueIRI(), Display: domain.LanguageMap{"en-US": "first"}}
	if _, err := repo.Create(ctx, &input); err != nil {
		t.Fatalf("Create first: unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, &domain.Verb{ID: input.ID, Display: domain.LanguageMap{"en-US": "second"}})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create second: error = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	input := domain.Verb{ID: uniqueIRI(), Display: domain.LanguageMap{"en-US": "stored"}}
	if _, err := repo.Create(ctx, &input); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, input.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Display["en-US"] != "stored" {
		t.Errorf("Display[en-US] = %q, want %q", got.Display["en-US"], "stored")
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uniqueIRI())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID: error = %v, want ErrNotFound", err)
	}
}
