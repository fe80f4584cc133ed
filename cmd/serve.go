package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ctc-webbase/bootstrap"
	"ctc-webbase/database"
	"ctc-webbase/internal/cache"
	"ctc-webbase/internal/monitor"
	"ctc-webbase/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	log.Info("starting", zap.String("mode", string(cfg.App.Mode)), zap.Int("jwt_secret_len", len(cfg.JWT.Secret)))

	sentryOn, err := monitor.Init(cfg)
	if err != nil {
		log.Warn("sentry disabled", zap.Error(err))
	}
	defer monitor.Flush(2 * time.Second)

	ctx := cmd.Context()
	client, db, err := database.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes failed: %w", err)
	}

	c, closeCache, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeCache() }()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	app := newApp(cfg, log, db, c, store, sentryOn)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("listening", zap.String("port", cfg.App.Port))
	return app.Listen(":" + cfg.App.Port)
}
