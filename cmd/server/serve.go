package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/events"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/httpserver"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/logger"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/submissionlock"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/sweeper"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the validation event consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Log)

	svc, cleanup, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	kclient, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Kafka.Brokers...),
		kgo.ConsumerGroup(cfg.Kafka.Group),
		kgo.ConsumeTopics(events.TopicValidationRequests, events.TopicValidationRetries),
	)
	if err != nil {
		return fmt.Errorf("building kafka client: %w", err)
	}
	defer kclient.Close()

	if err := events.EnsureTopics(ctx, kclient); err != nil {
		return err
	}

	publisher, err := events.NewPublisher(kclient)
	if err != nil {
		return err
	}

	sweep, err := sweeper.New(publisher,
		sweeper.WithLogger(log),
		sweeper.WithRetryDelay(cfg.RetryDelay),
		sweeper.WithSchedule(cfg.SweepSchedule),
	)
	if err != nil {
		return fmt.Errorf("building retry sweeper: %w", err)
	}

	checkers := map[string]httpserver.HealthChecker{}
	var lock submissionlock.Lock = submissionlock.NewInMemoryLock()
	redisLock, err := submissionlock.Connect(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	if redisLock != nil {
		defer redisLock.Close()
		checkers["redis"] = redisLock
		lock = redisLock
	}

	consumer, err := events.NewConsumer(kclient, svc, sweep, publisher,
		events.WithConsumerLogger(log),
		events.WithLock(lock),
		events.WithLockTTL(cfg.LockTTL),
	)
	if err != nil {
		return fmt.Errorf("building consumer: %w", err)
	}

	srv := httpserver.New(cfg.HTTPAddr, httpserver.Router(checkers))

	if err := sweep.Start(ctx); err != nil {
		return err
	}

	log.InfoContext(ctx, "claims event service starting",
		"addr", cfg.HTTPAddr, "brokers", cfg.Kafka.Brokers, "group", cfg.Kafka.Group)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := consumer.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("claims event service stopped")
	return nil
}
