package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/loanboard/cms/internal/applynow"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/commodity"
	"github.com/loanboard/cms/internal/config"
	"github.com/loanboard/cms/internal/db"
	"github.com/loanboard/cms/internal/loan"
	"github.com/loanboard/cms/internal/server"
	"github.com/loanboard/cms/internal/storage"
)

// repositories holds one repository per entity, all backed by the same driver.
type repositories struct {
	applyNow    applynow.Repository
	categories  category.Repository
	commodities commodity.Repository
	loans       loan.Repository
	close       func()
}

// openRepositories connects to the configured document store and prepares its schema.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.DocumentStore {
	case config.StorePostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, err
		}
		return &repositories{
			applyNow:    applynow.NewPostgresRepository(pool),
			categories:  category.NewPostgresRepository(pool),
			commodities: commodity.NewPostgresRepository(pool),
			loans:       loan.NewPostgresRepository(pool),
			close:       pool.Close,
		}, nil

	case config.StoreMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		if err := db.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &repositories{
			applyNow:    applynow.NewMongoRepository(database),
			categories:  category.NewMongoRepository(database),
			commodities: commodity.NewMongoRepository(database),
			loans:       loan.NewMongoRepository(database),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Warn().Err(err).Msg("mongo disconnect failed")
				}
			},
		}, nil

	case config.StoreBolt:
		bdb, err := db.OpenBolt(db.BoltConfig{Path: cfg.BoltPath})
		if err != nil {
			return nil, err
		}
		return &repositories{
			applyNow:    applynow.NewBoltRepository(bdb),
			categories:  category.NewBoltRepository(bdb),
			commodities: commodity.NewBoltRepository(bdb),
			loans:       loan.NewBoltRepository(bdb),
			close: func() {
				if err := bdb.Close(); err != nil {
					log.Warn().Err(err).Msg("bolt close failed")
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown document store %q", cfg.DocumentStore)
}

// openBlobStore builds the configured blob store.
func openBlobStore(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.BlobStore {
	case config.BlobMinio:
		return storage.NewMinioStorage(ctx, storage.MinioConfig{
			Endpoint:   cfg.StorageEndpoint,
			AccessKey:  cfg.StorageAccessKey,
			SecretKey:  cfg.StorageSecretKey,
			Bucket:     cfg.StorageBucket,
			Region:     cfg.StorageRegion,
			PublicBase: cfg.StoragePublicBase,
			UseSSL:     cfg.StorageUseSSL,
		})

	case config.BlobS3:
		return storage.NewS3Storage(ctx, storage.S3Config{
			Region:          cfg.StorageRegion,
			Bucket:          cfg.StorageBucket,
			AccessKeyID:     cfg.StorageAccessKey,
			SecretAccessKey: cfg.StorageSecretKey,
			Endpoint:        cfg.S3Endpoint,
			UsePathStyle:    cfg.S3UsePathStyle,
			PublicBase:      cfg.StoragePublicBase,
		})

	case config.BlobMemory:
		log.Warn().Msg("using in-memory blob store; uploaded logos are lost on restart")
		return storage.NewMemoryStorage(cfg.StoragePublicBase), nil
	}

	return nil, fmt.Errorf("unknown blob store %q", cfg.BlobStore)
}

// newServices wires repositories and blob store into the domain services.
func newServices(repos *repositories, blobs storage.Storage, maxUpload int64) server.Services {
	categories := category.NewService(repos.categories, repos.loans)
	return server.Services{
		ApplyNow:    applynow.NewService(repos.applyNow),
		Categories:  categories,
		Commodities: commodity.NewService(repos.commodities),
		Loans:       loan.NewService(repos.loans, categories, blobs, maxUpload),
	}
}
