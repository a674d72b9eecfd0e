package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/loanboard/cms/internal/config"
	"github.com/loanboard/cms/internal/db"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().IntVar(&downSteps, "down", 0, "Roll back this many Postgres migrations instead of migrating up")

	rootCmd.AddCommand(migrateCmd)
}

var (
	downSteps int

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the document store schema",
		Long: `Applies the embedded Postgres migrations, ensures the MongoDB indexes,
or creates the bbolt buckets, depending on DOCUMENT_STORE.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return migrateStore(cmd.Context(), cfg)
		},
	}
)

func migrateStore(ctx context.Context, cfg *config.Config) error {
	if downSteps > 0 {
		if cfg.DocumentStore != config.StorePostgres {
			log.Warn().Str("document_store", cfg.DocumentStore).Msg("--down only applies to postgres")
			return nil
		}
		return db.MigrateDown(cfg.DatabaseURL, downSteps)
	}

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	repos.close()

	log.Info().Str("document_store", cfg.DocumentStore).Msg("schema is up to date")
	return nil
}
