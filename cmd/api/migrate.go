package main

import (
	"context"
	"fmt"

	"claims_service/internal/adapter/persistence/repository"
	"claims_service/internal/infrastructure/config"
	"claims_service/internal/infrastructure/database"
	"claims_service/internal/infrastructure/logger"

	"go.uber.org/zap"
)

func runMigrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		specs := database.ClaimsTableSpecs(cfg.ClaimsTable, cfg.SettlementsTable, cfg.PaymentsTable,
			cfg.BeneficiariesTable, cfg.ProvidersTable, cfg.PriceCatalogTable)
		return database.EnsureTables(ctx, ddb, specs, log)

	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := repository.EnsurePostgresSchema(ctx, pool); err != nil {
			return err
		}
		log.Info("[migrate][postgres] schema applied")
		return nil

	default:
		log.Info("[migrate] nothing to do", zap.String("store", cfg.StoreDriver))
		return nil
	}
}
