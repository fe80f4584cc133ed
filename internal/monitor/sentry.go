// Package monitor wires Sentry error reporting into the Fiber app.
package monitor

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"

	"ctc-webbase/config"
)

// Init starts the Sentry client. Without a DSN it does nothing and reports
// false.
func Init(cfg *config.Config) (bool, error) {
	if cfg.Sentry.Dsn == "" {
		return false, nil
	}

	traces := cfg.Sentry.SampleRate
	if traces <= 0 {
		traces = 1.0
	}
	env := cfg.Sentry.Environment
	if env == "" {
		env = string(cfg.App.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      env,
		Release:          cfg.App.Name,
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: traces,
	})
	if err != nil {
		return false, fmt.Errorf("sentry initialization failed: %w", err)
	}
	return true, nil
}

// Middleware attaches a per-request hub. Panics are re-raised so the recover
// middleware still answers the request.
func Middleware(enabled bool) fiber.Handler {
	if !enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
