package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/audit"
	auditmemory "github.com/ministryofjustice/laa-data-claims-event-service/internal/audit/store/memory"
	auditpostgres "github.com/ministryofjustice/laa-data-claims-event-service/internal/audit/store/postgres"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients/claims"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients/feescheme"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/clients/provider"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/platform/config"
	valconfig "github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/config"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/metrics"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation/submission"
)

const providerCacheTTL = 0 // 0 means the client default

// buildService assembles the validation service and its collaborators.
// The returned cleanup closes any connections that were opened.
func buildService(cfg *config.Config, log *slog.Logger) (*submission.Service, func(), error) {
	cleanup := func() {}

	rules := valconfig.Default()
	if cfg.RulesFile != "" {
		var err error
		rules, err = valconfig.Load(cfg.RulesFile)
		if err != nil {
			return nil, cleanup, fmt.Errorf("loading validation rules: %w", err)
		}
	}

	claimsClient, err := claims.New(cfg.ClaimsAPI.BaseURL, cfg.ClaimsAPI.Timeout, cfg.ClaimsAPI.RPS, cfg.ClaimsAPI.Burst)
	if err != nil {
		return nil, cleanup, fmt.Errorf("building claims client: %w", err)
	}
	feeClient, err := feescheme.New(cfg.FeeSchemeAPI.BaseURL, cfg.FeeSchemeAPI.Timeout, cfg.FeeSchemeAPI.RPS, cfg.FeeSchemeAPI.Burst)
	if err != nil {
		return nil, cleanup, fmt.Errorf("building fee scheme client: %w", err)
	}
	providerClient, err := provider.New(cfg.ProviderAPI.BaseURL, cfg.ProviderAPI.Timeout, cfg.ProviderAPI.RPS, cfg.ProviderAPI.Burst, providerCacheTTL)
	if err != nil {
		return nil, cleanup, fmt.Errorf("building provider client: %w", err)
	}

	var auditStore audit.Store = auditmemory.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening audit database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, cleanup, fmt.Errorf("pinging audit database: %w", err)
		}
		auditStore = auditpostgres.New(db)
		cleanup = func() { db.Close() }
	}

	svc, err := submission.New(claimsClient, feeClient, providerClient, rules,
		submission.WithLogger(log),
		submission.WithMetrics(metrics.New()),
		submission.WithAuditPublisher(audit.NewPublisher(auditStore)),
		submission.WithMaxInFlight(cfg.MaxInFlight),
	)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("building validation service: %w", err)
	}
	return svc, cleanup, nil
}
