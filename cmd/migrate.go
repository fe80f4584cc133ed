package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"ctc-webbase/bootstrap"
	"ctc-webbase/database"
	repo "ctc-webbase/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database maintenance",
}

var migrateIndexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the indexes the API relies on",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd, func(ctx context.Context, log *zap.Logger, db *mongo.Database) error {
			if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			log.Info("indexes ensured")
			return nil
		})
	},
}

var migrateEventRefsCmd = &cobra.Command{
	Use:   "normalize-event-refs",
	Short: "Rewrite string event_id values in forms and submissions as ObjectIDs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(cmd, func(ctx context.Context, log *zap.Logger, db *mongo.Database) error {
			n, err := repo.NewFormRepository(db, true).NormalizeEventRefs(ctx)
			if err != nil {
				return err
			}
			log.Info("event references normalized", zap.Int64("documents", n))
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateIndexesCmd)
	migrateCmd.AddCommand(migrateEventRefsCmd)
}

func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, log *zap.Logger, db *mongo.Database) error) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	client, db, err := database.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return fn(ctx, log, db)
}
