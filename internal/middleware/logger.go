package middleware

import (
	"time"

	sentrylib "github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger writes one line per request.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("query", string(c.Request().URI().QueryString())),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.IP()),
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		log.Info("HTTP Request", fields...)
		return nil
	}
}

// SentryEnrichIP tags the request's Sentry scope with the client address.
// It must run after the sentryfiber handler.
func SentryEnrichIP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.ConfigureScope(func(scope *sentrylib.Scope) {
				scope.SetUser(sentrylib.User{IPAddress: c.IP()})
				scope.SetTag("client_ip", c.IP())
				if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
					scope.SetTag("x_forwarded_for", fwd)
				}
			})
		}
		return c.Next()
	}
}
