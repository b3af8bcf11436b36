package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
	"github.com/heartmarshall/xapi-statements/internal/service/query"
	"github.com/heartmarshall/xapi-statements/internal/service/statement"
	"github.com/heartmarshall/xapi-statements/pkg/ctxutil"
)

type statementServiceMock struct {
	CreateFunc      func(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) (*domain.Statement, error)
	CreateAsyncFunc func(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) error
}

func (m *statementServiceMock) Create(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) (*domain.Statement, error) {
	if m.CreateFunc == nil {
		panic("statementServiceMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, raw, caller)
}

func (m *statementServiceMock) CreateAsync(ctx context.Context, raw statement.RawStatement, caller statement.CallerContext) error {
	if m.CreateAsyncFunc == nil {
		panic("statementServiceMock.CreateAsyncFunc: method is nil but CreateAsync was just called")
	}
	return m.CreateAsyncFunc(ctx, raw, caller)
}

type queryServiceMock struct {
	ListStatementsFunc  func(ctx context.Context, input query.ListInput) ([]*domain.Statement, error)
	GetStatementFunc    func(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	MonthlyActivityFunc func(ctx context.Context, q domain.ActorQuery, year int, month time.Month) ([]query.DayBucket, error)
}

func (m *queryServiceMock) ListStatements(ctx context.Context, input query.ListInput) ([]*domain.Statement, error) {
	if m.ListStatementsFunc == nil {
		panic("queryServiceMock.ListStatementsFunc: method is nil but ListStatements was just called")
	}
	return m.ListStatementsFunc(ctx, input)
}

func (m *queryServiceMock) GetStatement(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	if m.GetStatementFunc == nil {
		panic("queryServiceMock.GetStatementFunc: method is nil but GetStatement was just called")
	}
	return m.GetStatementFunc(ctx, id)
}

func (m *queryServiceMock) MonthlyActivity(ctx context.Context, q domain.ActorQuery, year int, month time.Month) ([]query.DayBucket, error) {
	if m.MonthlyActivityFunc == nil {
		panic("queryServiceMock.MonthlyActivityFunc: method is nil but MonthlyActivity was just called")
	}
	return m.MonthlyActivityFunc(ctx, q, year, month)
}

func storedStatement() *domain.Statement {
	name := "Jane Doe"
	mbox := "mailto:jane@example.com"
	return &domain.Statement{
		ID:        uuid.New(),
		ActorID:   uuid.New(),
		VerbID:    "http://adlnet.gov/expapi/verbs/completed",
		ObjectID:  "http://example.com/course/101",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Actor: &domain.Actor{
			ObjectType: domain.ActorObjectTypeAgent,
			Name:       &name,
			Mbox:       &mbox,
		},
		Verb: &domain.Verb{
			ID:      "http://adlnet.gov/expapi/verbs/completed",
			Display: domain.LanguageMap{"en-US": "completed"},
		},
		Object: &domain.Object{
			ID:   "http://example.com/course/101",
			Type: domain.ObjectTypeActivity,
		},
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	stored := storedStatement()
	var gotCaller statement.CallerContext
	statements := &statementServiceMock{
		CreateFunc: func(_ context.Context, raw statement.RawStatement, caller statement.CallerContext) (*domain.Statement, error) {
			gotCaller = caller
			if raw.Verb == nil || raw.Verb.ID != stored.VerbID {
				t.Errorf("verb not decoded: %+v", raw.Verb)
			}
			return stored, nil
		},
	}
	h := NewStatementHandler(statements, &queryServiceMock{})

	body := `{
		"actor": {"name": "Jane Doe", "mbox": "mailto:jane@example.com"},
		"verb": {"id": "http://adlnet.gov/expapi/verbs/completed"},
		"object": {"id": "http://example.com/course/101"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/statements", strings.NewReader(body))
	req = req.WithContext(ctxutil.WithCallerEmail(req.Context(), "jane@example.com"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCaller.Email != "jane@example.com" {
		t.Errorf("caller email: got %q", gotCaller.Email)
	}

	var resp CreateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("envelope status: got %d", resp.Status)
	}
	if resp.Statement == nil || resp.Statement.ID != stored.ID {
		t.Errorf("statement in envelope: got %+v", resp.Statement)
	}
	if resp.Statement.Verb == nil || resp.Statement.Verb.Display["en-US"] != "completed" {
		t.Errorf("verb display: got %+v", resp.Statement.Verb)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	t.Parallel()

	h := NewStatementHandler(&statementServiceMock{}, &queryServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/v1/statements", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Kind != "structural" {
		t.Errorf("error kind: got %q", resp.Error.Kind)
	}
}

func TestCreate_ValidationErrorIs400(t *testing.T) {
	t.Parallel()

	statements := &statementServiceMock{
		CreateFunc: func(_ context.Context, _ statement.RawStatement, _ statement.CallerContext) (*domain.Statement, error) {
			return nil, domain.NewInvariantError("actor", "", "at least one identifier is required")
		},
	}
	h := NewStatementHandler(statements, &queryServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/v1/statements", strings.NewReader(`{"actor":{}}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Kind != "invariant" || resp.Error.Field != "actor" {
		t.Errorf("error body: got %+v", resp.Error)
	}
}

func TestCreate_Async202(t *testing.T) {
	t.Parallel()

	enqueued := false
	statements := &statementServiceMock{
		CreateAsyncFunc: func(_ context.Context, _ statement.RawStatement, _ statement.CallerContext) error {
			enqueued = true
			return nil
		},
	}
	h := NewStatementHandler(statements, &queryServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/v1/statements?async=true", strings.NewReader(`{"actor":{}}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", rec.Code)
	}
	if !enqueued {
		t.Error("expected CreateAsync to be called")
	}
}

func TestCreate_AsyncWithoutQueueIs503(t *testing.T) {
	t.Parallel()

	statements := &statementServiceMock{
		CreateAsyncFunc: func(_ context.Context, _ statement.RawStatement, _ statement.CallerContext) error {
			return statement.ErrNoQueue
		},
	}
	h := NewStatementHandler(statements, &queryServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/v1/statements?async=true", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestList_PassesQueryParams(t *testing.T) {
	t.Parallel()

	var gotInput query.ListInput
	queries := &queryServiceMock{
		ListStatementsFunc: func(_ context.Context, input query.ListInput) ([]*domain.Statement, error) {
			gotInput = input
			return []*domain.Statement{storedStatement()}, nil
		},
	}
	h := NewStatementHandler(&statementServiceMock{}, queries)

	target := "/v1/statements?email=jane@example.com" +
		"&verb=http://adlnet.gov/expapi/verbs/completed" +
		"&since=2026-03-01T00:00:00Z&limit=10&offset=20"
	rec := httptest.NewRecorder()

	h.List(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotInput.Actor.Email == nil || *gotInput.Actor.Email != "jane@example.com" {
		t.Errorf("actor email: got %+v", gotInput.Actor.Email)
	}
	if gotInput.VerbID == nil || *gotInput.VerbID != "http://adlnet.gov/expapi/verbs/completed" {
		t.Errorf("verb filter: got %+v", gotInput.VerbID)
	}
	if gotInput.Since == nil || !gotInput.Since.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("since filter: got %+v", gotInput.Since)
	}
	if gotInput.Limit != 10 || gotInput.Offset != 20 {
		t.Errorf("paging: got limit=%d offset=%d", gotInput.Limit, gotInput.Offset)
	}

	var resp ListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Statements) != 1 {
		t.Errorf("expected 1 statement, got %d", len(resp.Statements))
	}
}

func TestList_BadSinceIs400(t *testing.T) {
	t.Parallel()

	h := NewStatementHandler(&statementServiceMock{}, &queryServiceMock{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/v1/statements?since=yesterday", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Kind != "format" {
		t.Errorf("error kind: got %q", resp.Error.Kind)
	}
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	stored := storedStatement()
	queries := &queryServiceMock{
		GetStatementFunc: func(_ context.Context, id uuid.UUID) (*domain.Statement, error) {
			if id != stored.ID {
				t.Errorf("id: got %s, want %s", id, stored.ID)
			}
			return stored, nil
		},
	}
	h := NewStatementHandler(&statementServiceMock{}, queries)

	req := httptest.NewRequest(http.MethodGet, "/v1/statements/"+stored.ID.String(), nil)
	req.SetPathValue("id", stored.ID.String())
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp StatementJSON
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != stored.ID {
		t.Errorf("id: got %s", resp.ID)
	}
	if resp.Actor == nil || resp.Actor.Mbox == nil || *resp.Actor.Mbox != "mailto:jane@example.com" {
		t.Errorf("actor: got %+v", resp.Actor)
	}
}

func TestGet_NotFoundIs404(t *testing.T) {
	t.Parallel()

	queries := &queryServiceMock{
		GetStatementFunc: func(_ context.Context, _ uuid.UUID) (*domain.Statement, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewStatementHandler(&statementServiceMock{}, queries)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/v1/statements/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGet_BadUUIDIs400(t *testing.T) {
	t.Parallel()

	h := NewStatementHandler(&statementServiceMock{}, &queryServiceMock{})

	req := httptest.NewRequest(http.MethodGet, "/v1/statements/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestMonthlyActivity_Success(t *testing.T) {
	t.Parallel()

	queries := &queryServiceMock{
		MonthlyActivityFunc: func(_ context.Context, q domain.ActorQuery, year int, month time.Month) ([]query.DayBucket, error) {
			if q.Mbox == nil || *q.Mbox != "mailto:jane@example.com" {
				t.Errorf("actor query: got %+v", q)
			}
			if year != 2026 || month != time.March {
				t.Errorf("period: got %d-%d", year, month)
			}
			return []query.DayBucket{
				{Date: "2026-03-01", Count: 2},
				{Date: "2026-03-02", Count: 0},
			}, nil
		},
	}
	h := NewStatementHandler(&statementServiceMock{}, queries)

	target := "/v1/activity?mbox=mailto:jane@example.com&year=2026&month=3"
	rec := httptest.NewRecorder()

	h.MonthlyActivity(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp MonthlyActivityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Year != 2026 || resp.Month != 3 {
		t.Errorf("period: got %d-%d", resp.Year, resp.Month)
	}
	if len(resp.Days) != 2 || resp.Days[0].Count != 2 {
		t.Errorf("days: got %+v", resp.Days)
	}
}

func TestMonthlyActivity_MissingYearIs400(t *testing.T) {
	t.Parallel()

	h := NewStatementHandler(&statementServiceMock{}, &queryServiceMock{})

	rec := httptest.NewRecorder()
	h.MonthlyActivity(rec, httptest.NewRequest(http.MethodGet, "/v1/activity?month=3", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
