package statementctx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/statementctx"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/xapi-statements/internal/domain"
)

func newRepo(t *testing.T) (*statementctx.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return statementctx.New(pool), pool
}

func strPtr(s string) *string { return &s }

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	st := testhelper.SeedStatement(t, pool)
	instructor := testhelper.SeedActor(t, pool)

	input := domain.Context{
		StatementID:  st.ID,
		InstructorID: &instructor.ID,
		Registration: strPtr("d3d0c5f0-8a2b-4a6e-9a3c-000000000001"),
		Platform:     strPtr("Example LMS"),
		Language:     strPtr("en-US"),
	}

	got, err := repo.Create(ctx, &input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("ID should be generated")
	}
	if got.InstructorID == nil || *got.InstructorID != instructor.ID {
		t.Errorf("InstructorID = %v, want %s", got.InstructorID, instructor.ID)
	}
	if got.Platform == nil || *got.Platform != "Example LMS" {
		t.Errorf("Platform = %v, want Example LMS", got.Platform)
	}
}

func TestRepo_Create_SecondContextForStatement(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	st := testhelper.SeedStatement(t, pool)
	if _, err := repo.Create(ctx, &domain.Context{StatementID: st.ID}); err != nil {
		t.Fatalf("Create first: unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, &domain.Context{StatementID: st.ID})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create second: error = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_AddActivity_AndGet(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	st := testhelper.SeedStatement(t, pool)
	created, err := repo.Create(ctx, &domain.Context{StatementID: st.ID})
	if err != nil {
		t.Fatalf("Create context: unexpected error: %v", err)
	}

	parent := testhelper.SeedObject(t, pool)
	grouping := testhelper.SeedObject(t, pool)

	if _, err := repo.AddActivity(ctx, &domain.ContextActivity{
		ContextID: created.ID, ObjectID: parent.ID, Type: domain.ContextActivityParent,
	}); err != nil {
		t.Fatalf("AddActivity parent: unexpected error: %v", err)
	}
	if _, err := repo.AddActivity(ctx, &domain.ContextActivity{
		ContextID: created.ID, ObjectID: grouping.ID, Type: domain.ContextActivityGrouping,
	}); err != nil {
		t.Fatalf("AddActivity grouping: unexpected error: %v", err)
	}

	got, err := repo.GetByStatementID(ctx, st.ID)
	if err != nil {
		t.Fatalf("GetByStatementID: unexpected error: %v", err)
	}
	if len(got.Activities) != 2 {
		t.Fatalf("Activities = %d rows, want 2", len(got.Activities))
	}
	// Ordered by activity_type: grouping < parent.
	if got.Activities[0].Type != domain.ContextActivityGrouping {
		t.Errorf("Activities[0].Type = %s, want grouping", got.Activities[0].Type)
	}
	if got.Activities[1].Type != domain.ContextActivityParent {
		t.Errorf("Activities[1].Type = %s, want parent", got.Activities[1].Type)
	}
}

func TestRepo_AddActivity_UnknownObject(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	st := testhelper.SeedStatement(t, pool)
	created, err := repo.Create(ctx, &domain.Context{StatementID: st.ID})
	if err != nil {
		t.Fatalf("Create context: unexpected error: %v", err)
	}

	_, err = repo.AddActivity(ctx, &domain.ContextActivity{
		ContextID: created.ID,
		ObjectID:  "https://example.com/activities/missing",
		Type:      domain.ContextActivityOther,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("AddActivity: error = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByStatementID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByStatementID(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByStatementID: error = %v, want ErrNotFound", err)
	}
}
