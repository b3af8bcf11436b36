//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/account"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/actor"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/extension"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/object"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/result"
	stmtrepo "github.com/heartmarshall/xapi-statements/internal/adapter/postgres/statement"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/statementctx"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/verb"
	"github.com/heartmarshall/xapi-statements/internal/config"
	"github.com/heartmarshall/xapi-statements/internal/service/query"
	"github.com/heartmarshall/xapi-statements/internal/service/statement"
	"github.com/heartmarshall/xapi-statements/internal/transport/rest"
	"github.com/heartmarshall/xapi-statements/internal/worker"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	accountRepo := account.New(pool)
	actorRepo := actor.New(pool)
	verbRepo := verb.New(pool)
	objectRepo := object.New(pool)
	extensionRepo := extension.New(pool)
	resultRepo := result.New(pool)
	contextRepo := statementctx.New(pool)
	statementRepo := stmtrepo.New(pool)

	xapiCfg := config.XapiConfig{
		LogStatements: true,
		DefaultLocale: "en-US",
		QueueSize:     16,
	}

	statementSvc := statement.NewService(logger,
		accountRepo, actorRepo, verbRepo, objectRepo,
		extensionRepo, resultRepo, contextRepo, statementRepo,
		txm, xapiCfg)

	queue := worker.NewQueue(logger, statementSvc, xapiCfg.QueueSize)
	statementSvc.SetQueue(queue)
	queue.Start(context.Background())
	t.Cleanup(queue.Stop)

	querySvc := query.NewService(logger,
		accountRepo, actorRepo, verbRepo, objectRepo,
		extensionRepo, resultRepo, contextRepo, statementRepo)

	handler := rest.NewStatementHandler(statementSvc, querySvc)
	health := rest.NewHealthHandler(pool, "test-version")
	router := rest.NewRouter(logger, handler, health)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postStatement sends a statement payload and returns status + decoded body.
func (ts *testServer) postStatement(t *testing.T, path string, payload map[string]any, callerEmail string) (int, map[string]any) {
	t.Helper()

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal statement body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if callerEmail != "" {
		req.Header.Set("X-Caller-Email", callerEmail)
	}

	return ts.do(t, req)
}

// getJSON sends a GET request and returns status + decoded body.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return ts.do(t, req)
}

func (ts *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// validStatement returns a minimal complete payload for the given actor mbox.
func validStatement(mbox string) map[string]any {
	return map[string]any{
		"actor": map[string]any{
			"name": "Jane Doe",
			"mbox": mbox,
		},
		"verb": map[string]any{
			"id": "http://adlnet.gov/expapi/verbs/completed",
		},
		"object": map[string]any{
			"id": "http://example.com/course/101",
		},
	}
}
