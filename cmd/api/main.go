// Package main is the entry point for the news portal API server.
//
//	@title			News Portal API
//	@version		1.0
//	@description	REST API for the news portal: article publication workflow, comments, categories, and account administration.
//
//	@contact.name	News Portal Team
//
//	@license.name	MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT token. Format: "Bearer {token}"
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "news-portal/docs" // swagger docs
	"news-portal/internal/common/pagination"
	hhttp "news-portal/internal/handler/http"
	harticle "news-portal/internal/handler/http/article"
	hauth "news-portal/internal/handler/http/auth"
	hcategory "news-portal/internal/handler/http/category"
	hcomment "news-portal/internal/handler/http/comment"
	"news-portal/internal/handler/http/requestid"
	huser "news-portal/internal/handler/http/user"
	pgRepo "news-portal/internal/infra/adapter/persistence/postgres"
	"news-portal/internal/infra/db"
	"news-portal/internal/observability/logging"
	"news-portal/internal/observability/slo"
	"news-portal/internal/observability/tracing"
	"news-portal/internal/resilience/circuitbreaker"
	artUC "news-portal/internal/usecase/article"
	catUC "news-portal/internal/usecase/category"
	comUC "news-portal/internal/usecase/comment"
	userUC "news-portal/internal/usecase/user"
	"news-portal/pkg/config"
)

func main() {
	logger := initLogger()

	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	server := setupServer(logger, database)
	runServer(logger, server)
}

// initLogger builds the process logger: JSON by default, human-readable
// text when LOG_PRETTY is set for local runs.
func initLogger() *slog.Logger {
	var logger *slog.Logger
	if config.GetEnvBool("LOG_PRETTY", false) {
		logger = logging.NewTextLogger()
	} else {
		logger = logging.NewLogger()
	}
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret ensures the JWT signing secret is present and strong enough
// before the server starts accepting tokens. A missing or weak secret would let
// anyone forge author and admin credentials, so startup aborts instead.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET is not set; refusing to start")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET is too short; 32 characters minimum",
			slog.Int("length", len(secret)))
		os.Exit(1)
	}

	weakSecrets := []string{
		"secret", "password", "changeme", "default",
		"jwt_secret", "jwtsecret", "test", "dev",
	}
	lowered := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if lowered == weak || strings.HasPrefix(lowered, weak+"_") {
			logger.Error("JWT_SECRET matches a known weak value; refusing to start")
			os.Exit(1)
		}
	}
}

// initDatabase opens the database connection and applies pending migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	return database
}

// getVersion returns the application version from the VERSION environment
// variable, falling back to "dev" for local builds.
func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// setupServer wires the repositories, services, and HTTP handlers into a
// configured http.Server.
//
// All database access goes through a circuit breaker so that a struggling
// database degrades requests quickly instead of piling up connections.
func setupServer(logger *slog.Logger, database *sql.DB) *http.Server {
	cbDB := circuitbreaker.NewDBCircuitBreaker(database)

	articleRepo := pgRepo.NewArticleRepo(cbDB)
	commentRepo := pgRepo.NewCommentRepo(cbDB)
	categoryRepo := pgRepo.NewCategoryRepo(cbDB)
	userRepo := pgRepo.NewUserRepo(cbDB)

	articleSvc := artUC.Service{Repo: articleRepo}
	commentSvc := comUC.Service{Repo: commentRepo, Articles: articleRepo}
	categorySvc := catUC.Service{Repo: categoryRepo}
	userSvc := userUC.Service{Repo: userRepo}

	authn := hauth.NewMiddleware(userRepo)
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()

	// Operational endpoints. These stay unauthenticated; the auth middleware
	// keeps its public-endpoint list in sync with these paths.
	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: getVersion()})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, &articleSvc, authn, paginationCfg, logger)
	hcomment.Register(mux, &commentSvc, authn)
	hcategory.Register(mux, &categorySvc, authn)
	huser.Register(mux, &userSvc, authn)

	handler := applyMiddleware(mux, logger)

	port := config.GetEnvString("PORT", "8080")

	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// applyMiddleware wraps the mux with the shared middleware chain. Entries are
// listed innermost first; the loop applies them in reverse so the last entry
// sees the request first.
func applyMiddleware(mux http.Handler, logger *slog.Logger) http.Handler {
	rateLimiter := hhttp.NewRateLimiter(
		config.GetEnvInt("RATE_LIMIT_REQUESTS", 100),
		config.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	)

	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err := config.ValidateDurationRange(requestTimeout, time.Second, 5*time.Minute); err != nil {
		logger.Warn("invalid REQUEST_TIMEOUT, using 30s", slog.Any("error", err))
		requestTimeout = 30 * time.Second
	}

	middlewares := []func(http.Handler) http.Handler{
		hhttp.MetricsMiddleware,
		hhttp.Timeout(requestTimeout),
		hhttp.InputValidation(),
		hhttp.LimitRequestBody(1 << 20), // 1MB request body cap
		rateLimiter.Limit,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		tracing.Middleware,
		requestid.Middleware,
	}

	handler := mux
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// runServer starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests before exiting.
func runServer(logger *slog.Logger, server *http.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server.BaseContext = func(_ net.Listener) context.Context {
		return ctx
	}

	// The metrics middleware feeds the SLO tracker; this recomputes its
	// gauges once a minute until shutdown.
	go slo.StartRefreshing(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", server.Addr),
			slog.String("version", getVersion()))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if err := server.Close(); err != nil {
				logger.Error("forced close failed", slog.Any("error", err))
			}
		} else {
			logger.Info("server stopped")
		}
	}
}
