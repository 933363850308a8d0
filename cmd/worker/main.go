package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/respond"
	pgRepo "news-portal/internal/infra/adapter/persistence/postgres"
	"news-portal/internal/infra/db"
	workerPkg "news-portal/internal/infra/worker"
	"news-portal/internal/observability/logging"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := openDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workerMetrics := workerPkg.NewWorkerMetrics()
	cfg, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone),
		slog.Duration("stats_timeout", cfg.StatsTimeout),
		slog.Int("health_port", cfg.HealthPort))

	startMetricsServer(ctx, logger)

	healthServer := workerPkg.NewHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), logger)
	job := &statsJob{
		Articles: pgRepo.NewArticleRepo(database),
		Comments: pgRepo.NewCommentRepo(database),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := healthServer.Start(gctx); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return runScheduler(gctx, logger, job, cfg, workerMetrics, healthServer)
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker shut down")
}

// openDatabase connects the pool, then blocks until the migrations have
// created the articles table so the first refresh cannot race the schema.
func openDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	for attempt := 1; ; attempt++ {
		if _, err := database.Exec("SELECT 1 FROM articles LIMIT 1"); err == nil {
			return database
		}
		if attempt == 10 {
			logger.Error("migrations did not complete in time")
			os.Exit(1)
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", attempt))
		time.Sleep(3 * time.Second)
	}
}

// statsJob refreshes the business gauges from the database so the
// dashboards track article and comment volumes without per-request
// counting queries.
type statsJob struct {
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
}

// Refresh recomputes the per-status article gauges and the total
// comment count. The two aggregate queries are independent and run
// concurrently. Returns the number of gauges updated.
func (j *statsJob) Refresh(ctx context.Context) (int, error) {
	var (
		counts   map[entity.ArticleStatus]int64
		comments int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = j.Articles.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count articles by status: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = j.Comments.CountAll(gctx)
		if err != nil {
			return fmt.Errorf("count comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	byStatus := make(map[string]int64, len(counts))
	for status, count := range counts {
		byStatus[string(status)] = count
	}
	metrics.UpdateArticlesByStatus(byStatus)
	metrics.UpdateCommentsTotal(comments)

	return len(byStatus) + 1, nil
}

// runScheduler runs one refresh up front so the gauges are populated
// before the first tick, marks the worker ready, and then lets cron fire
// on the configured schedule until ctx is cancelled. An unloadable
// timezone falls back to UTC rather than killing the worker.
func runScheduler(ctx context.Context, logger *slog.Logger, job *statsJob, cfg *workerPkg.WorkerConfig, workerMetrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		runStatsJob(logger, job, cfg, workerMetrics)
	}); err != nil {
		return fmt.Errorf("schedule stats refresh: %w", err)
	}

	runStatsJob(logger, job, cfg, workerMetrics)

	c.Start()
	healthServer.SetReady(true)
	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))

	<-ctx.Done()
	// Let an in-flight refresh finish before reporting shutdown.
	<-c.Stop().Done()
	return nil
}

// runStatsJob runs one stats refresh under the configured timeout and
// records the outcome in the worker metrics.
func runStatsJob(logger *slog.Logger, job *statsJob, cfg *workerPkg.WorkerConfig, workerMetrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	workerMetrics.RecordJobRun("started")
	logger.Info("stats refresh started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StatsTimeout)
	defer cancel()

	refreshed, err := job.Refresh(ctx)
	workerMetrics.RecordJobDuration(time.Since(startTime).Seconds())
	if err != nil {
		// Mask credentials before the error reaches the log.
		logger.Error("stats refresh failed", slog.String("error", respond.SanitizeError(err)))
		workerMetrics.RecordJobRun("failure")
		return
	}

	workerMetrics.RecordJobRun("success")
	workerMetrics.RecordGaugesRefreshed(refreshed)
	workerMetrics.RecordLastSuccess()

	logger.Info("stats refresh completed",
		slog.Int("gauges", refreshed),
		slog.Duration("duration", time.Since(startTime)),
	)
}
