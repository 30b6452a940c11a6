package main

import (
	"context"
	"fmt"

	"claims_service/internal/adapter/persistence/repository"
	"claims_service/internal/infrastructure/config"
	"claims_service/internal/infrastructure/database"
	"claims_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type stores struct {
	claims        interfaces.IClaimRepository
	settlements   interfaces.ISettlementRepository
	payments      interfaces.IRemainderPaymentRepository
	beneficiaries interfaces.IBeneficiaryDirectory
	providers     interfaces.IProviderDirectory
	catalog       interfaces.IPriceCatalog
	close         func()
}

// openStores wires the record store selected by STORE_DRIVER. Only the DynamoDB store
// carries the master-data directories; elsewhere references are accepted as given.
func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		dir := repository.NewDirectoryDynamoRepository(ddb, repository.DirectoryTables{
			Beneficiaries: cfg.BeneficiariesTable,
			Providers:     cfg.ProvidersTable,
			PriceCatalog:  cfg.PriceCatalogTable,
		})
		log.Info("[store] using dynamodb", zap.String("endpoint", cfg.DynamoDBEndpoint), zap.String("region", cfg.AWSRegion))
		return &stores{
			claims:        repository.NewClaimDynamoRepository(ddb, cfg.ClaimsTable),
			settlements:   repository.NewSettlementDynamoRepository(ddb, cfg.SettlementsTable),
			payments:      repository.NewRemainderPaymentDynamoRepository(ddb, cfg.PaymentsTable),
			beneficiaries: dir.Beneficiaries(),
			providers:     dir.Providers(),
			catalog:       dir.Catalog(),
			close:         func() {},
		}, nil

	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, err
		}
		log.Info("[store] using postgres")
		return &stores{
			claims:      repository.NewClaimPostgresRepository(pool),
			settlements: repository.NewSettlementPostgresRepository(pool),
			payments:    repository.NewRemainderPaymentPostgresRepository(pool),
			close:       pool.Close,
		}, nil

	default:
		log.Warn("[store] using in-memory store, data is lost on restart")
		mem := repository.NewMemoryStore()
		return &stores{
			claims:      mem.Claims(),
			settlements: mem.Settlements(),
			payments:    mem.Payments(),
			close:       func() {},
		}, nil
	}
}

func dynamoOptions(cfg *config.Config) database.DynamoDBOptions {
	return database.DynamoDBOptions{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.DynamoDBEndpoint,
	}
}
