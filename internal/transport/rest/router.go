package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/xapi-statements/internal/transport/middleware"
)

// NewRouter assembles the HTTP surface: statement ingest and query routes
// plus health probes, wrapped in the standard middleware chain.
func NewRouter(logger *slog.Logger, statements *StatementHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/statements", statements.Create)
	mux.HandleFunc("GET /v1/statements", statements.List)
	mux.HandleFunc("GET /v1/statements/{id}", statements.Get)
	mux.HandleFunc("GET /v1/activity", statements.MonthlyActivity)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Caller,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)
	return chain(mux)
}
