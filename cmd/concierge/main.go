// cmd/concierge/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	calculatefinancing "realty-concierge/internal/agents/calculate-financing"
	generatereply "realty-concierge/internal/agents/generate-reply"
	negotiateprice "realty-concierge/internal/agents/negotiate-price"
	parsepreferences "realty-concierge/internal/agents/parse-preferences"
	recommendlistings "realty-concierge/internal/agents/recommend-listings"
	scoresentiment "realty-concierge/internal/agents/score-sentiment"
	sendfollowup "realty-concierge/internal/agents/send-followup"
	"realty-concierge/internal/catalog"
	"realty-concierge/internal/common/aws"
	"realty-concierge/internal/common/config"
	"realty-concierge/internal/common/database"
	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/common/observability"
	"realty-concierge/internal/orchestrator"
	"realty-concierge/internal/server"
	"realty-concierge/internal/session"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting concierge...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("concierge")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Load catalog ---
	var cat *catalog.Catalog
	switch cfg.Catalog.Source {
	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}

		cat, err = catalog.LoadPostgres(ctx, pg.DB)
		// The catalog is read once at startup; the pool is not needed afterwards.
		pg.Close()
		if err != nil {
			zapLog.Fatal("catalog load from postgres failed", zap.Error(err))
		}
	default:
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog load from file failed", zap.Error(err))
		}
	}
	zapLog.Info("Catalog loaded", zap.Int("listings", cat.Len()))

	// --- Init SNS gateway (optional) ---
	var gateway sendfollowup.SMSGateway
	if cfg.Notifications.SMS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SNS client failed to initialize, follow-up messages disabled", zap.Error(err))
		} else {
			gateway = snsClient
			zapLog.Info("SNS gateway initialized", zap.String("region", cfg.Notifications.AWS.Region))
		}
	}

	// --- Init session store (optional) ---
	sessions := session.NewNoopStore()
	if cfg.Session.Enabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		sessions = session.NewRedisStore(redis, time.Duration(cfg.Session.TTLSeconds)*time.Second, log)
		zapLog.Info("Redis session store connected")
	}

	// --- Wire agents ---
	greeter := generatereply.NewHandler(&generatereply.Config{
		BaseURL: cfg.GenAI.BaseURL,
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		Timeout: time.Duration(cfg.GenAI.Timeout) * time.Millisecond,
	}, log)

	followup := sendfollowup.NewHandler(&sendfollowup.Config{
		Enabled:  cfg.Notifications.SMS.Enabled,
		SenderID: cfg.Notifications.AWS.SNS.DefaultSMSSenderID,
		Timeout:  time.Duration(cfg.Notifications.Timeout) * time.Millisecond,
	}, gateway, log)

	orch := orchestrator.New(orchestrator.Dependencies{
		Greeter:    greeter,
		Prefs:      parsepreferences.NewHandler(parsepreferences.LoadConfig(), log),
		Recommend:  recommendlistings.NewHandler(recommendlistings.LoadConfig(), cat, log),
		Sentiment:  scoresentiment.NewHandler(scoresentiment.LoadConfig(), log),
		Negotiator: negotiateprice.NewHandler(negotiateprice.LoadConfig(), log),
		Financing:  calculatefinancing.NewHandler(calculatefinancing.LoadConfig(), log),
		Followup:   followup,
		Logger:     log,
	})

	srv := server.New(cfg.Server.Addr(), orch, sessions, obs, log)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
