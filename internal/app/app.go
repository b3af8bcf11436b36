package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/account"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/actor"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/extension"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/object"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/result"
	stmtrepo "github.com/heartmarshall/xapi-statements/internal/adapter/postgres/statement"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/statementctx"
	"github.com/heartmarshall/xapi-statements/internal/adapter/postgres/verb"
	"github.com/heartmarshall/xapi-statements/internal/config"
	"github.com/heartmarshall/xapi-statements/internal/service/query"
	"github.com/heartmarshall/xapi-statements/internal/service/statement"
	"github.com/heartmarshall/xapi-statements/internal/transport/rest"
	"github.com/heartmarshall/xapi-statements/internal/worker"
	"github.com/heartmarshall/xapi-statements/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and the HTTP transport, and blocks until
// ctx is cancelled. Shutdown drains in-flight requests and the statement
// queue before returning.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	accountRepo := account.New(pool)
	actorRepo := actor.New(pool)
	verbRepo := verb.New(pool)
	objectRepo := object.New(pool)
	extensionRepo := extension.New(pool)
	resultRepo := result.New(pool)
	contextRepo := statementctx.New(pool)
	statementRepo := stmtrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	statementSvc := statement.NewService(logger,
		accountRepo, actorRepo, verbRepo, objectRepo,
		extensionRepo, resultRepo, contextRepo, statementRepo,
		txManager, cfg.Xapi)

	queue := worker.NewQueue(logger, statementSvc, cfg.Xapi.QueueSize)
	statementSvc.SetQueue(queue)
	// The drain loop must outlive ctx so Stop can flush buffered jobs
	// during shutdown.
	queue.Start(context.WithoutCancel(ctx))

	querySvc := query.NewService(logger,
		accountRepo, actorRepo, verbRepo, objectRepo,
		extensionRepo, resultRepo, contextRepo, statementRepo)

	statementHandler := rest.NewStatementHandler(statementSvc, querySvc)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	router := rest.NewRouter(logger, statementHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		queue.Stop()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	queue.Stop()

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// applyMigrations runs the embedded goose migrations against the configured
// database. goose requires database/sql, so a short-lived pgx stdlib
// connection is opened alongside the pool.
func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close() //nolint:errcheck

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
