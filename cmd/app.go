package cmd

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"ctc-webbase/config"
	"ctc-webbase/internal/cache"
	"ctc-webbase/internal/middleware"
	"ctc-webbase/internal/monitor"
	"ctc-webbase/internal/referral"
	repo "ctc-webbase/internal/repository"
	"ctc-webbase/internal/routes"
	"ctc-webbase/internal/services"
	"ctc-webbase/internal/storage"
)

// newApp builds the Fiber app over an open database. Nothing here talks to
// the database until a request arrives.
func newApp(cfg *config.Config, log *zap.Logger, db *mongo.Database, c cache.Cache, store storage.Store, sentryOn bool) *fiber.App {
	loc := cfg.Location()

	events := repo.NewEventRepository(db)
	users := repo.NewUserRepository(db)
	forms := repo.NewFormRepository(db, cfg.Forms.LegacyEventRefLookup)
	submissions := repo.NewSubmissionRepository(db)
	stats := repo.NewReferralStatsRepository(db)

	signer := referral.NewSigner(cfg.JWT.Secret, cfg.JWT.ReferralTTL)

	formSvc := services.NewFormService(events, forms, submissions, loc)
	statsSvc := services.NewStatsService(stats, c, services.StatsOptions{
		Location:    loc,
		CacheTTL:    cfg.Stats.CacheTTL,
		RecentLimit: cfg.Stats.RecentLimit,
		TopEvents:   cfg.Stats.TopEventsMax,
	})
	formSvc.OnReferralsRemoved(statsSvc.Invalidate)
	svc := routes.Services{
		Auth:  services.NewAuthService(users, cfg.JWT.Secret, cfg.JWT.AccessTTL),
		Forms: formSvc,
		Submissions: services.NewSubmissionService(formSvc, submissions, users, signer, services.SubmissionOptions{
			AllowDuplicates: cfg.Forms.AllowDuplicateSubmissions,
			DefaultMaxMB:    cfg.Forms.DefaultMaxFileMB,
			OnReferred:      statsSvc.Invalidate,
		}),
		Uploads:   services.NewUploadService(formSvc, store, cfg.Forms.DefaultMaxFileMB),
		Referrals: services.NewReferralService(events, users, signer, cfg.App.Origin),
		Stats:     statsSvc,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: middleware.ErrorHandler(log),
		BodyLimit:    bodyLimit(cfg),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(monitor.Middleware(sentryOn))
	app.Use(middleware.SentryEnrichIP())
	app.Use(middleware.Logger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORS,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	if strings.EqualFold(cfg.Storage.Driver, "local") || cfg.Storage.Driver == "" {
		app.Static("/uploads", cfg.Storage.Local.Dir)
	}

	routes.SetupAPI(app, cfg.JWT.Secret, users, svc)
	return app
}

// bodyLimit leaves room for the largest default upload plus multipart
// overhead.
func bodyLimit(cfg *config.Config) int {
	mb := cfg.Forms.DefaultMaxFileMB
	if mb < 10 {
		mb = 10
	}
	return int(mb*1024*1024) + 1024*1024
}
