package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/quotelane/quotelane-backend/repositories"
	"github.com/quotelane/quotelane-backend/usecases"
	"github.com/quotelane/quotelane-backend/utils"
)

type AppConfiguration struct {
	env           string
	port          string
	loggingFormat string
	sentryDsn     string
	pgConfig      utils.PGConfig
}

func main() {
	conf := AppConfiguration{
		env:           utils.GetEnv("ENV", "development"),
		port:          utils.GetRequiredEnv[string]("PORT"),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		pgConfig: utils.PGConfig{
			Hostname:         utils.GetEnv("PG_HOSTNAME", "localhost"),
			Port:             utils.GetEnv("PG_PORT", "5432"),
			User:             utils.GetEnv("PG_USER", "postgres"),
			Password:         utils.GetEnv("PG_PASSWORD", ""),
			Database:         utils.GetEnv("PG_DATABASE", "quotelane"),
			ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		},
	}

	logger := utils.NewLogger(conf.loggingFormat)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = utils.StoreLoggerInContext(ctx, logger)

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.sentryDsn,
		Environment: conf.env,
	}); err != nil {
		logger.ErrorContext(ctx, "sentry.Init error", "error", err.Error())
	}
	defer sentry.Flush(2 * time.Second)

	if err := repositories.RunMigrations(ctx, conf.pgConfig, logger); err != nil {
		logger.ErrorContext(ctx, "failed to run migrations", "error", err.Error())
		return
	}

	pool, err := pgxpool.New(ctx, conf.pgConfig.GetConnectionString())
	if err != nil {
		logger.ErrorContext(ctx, "failed to create connection pool", "error", err.Error())
		return
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	uc := usecases.NewUsecases(usecases.Repositories{
		ExecutorGetter:        executorGetter,
		QuotelaneDbRepository: repositories.NewQuotelaneDbRepository(),
	})

	server := &http.Server{
		Addr:    ":" + conf.port,
		Handler: initRouter(conf, uc, logger),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", "port", conf.port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.ErrorContext(ctx, "server error", "error", err.Error())
	}
}
