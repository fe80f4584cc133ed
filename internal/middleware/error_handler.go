package middleware

import (
	"errors"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
)

// ErrorHandler renders every error returned by a handler as
// {"error", "kind"}. Server-side failures are logged and sent to Sentry.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Kind: string(kindForStatus(fe.Code))})
		}

		ae := apperr.From(err)
		status := ae.Kind.Status()
		if status >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
			if hub := sentryfiber.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			} else {
				sentry.CaptureException(err)
			}
		}
		return c.Status(status).JSON(dto.ErrorResponse{Error: ae.Message, Kind: string(ae.Kind), Field: ae.Field})
	}
}

func kindForStatus(code int) apperr.Kind {
	switch code {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		return apperr.KindValidation
	case fiber.StatusUnauthorized:
		return apperr.KindUnauthorized
	case fiber.StatusForbidden:
		return apperr.KindForbidden
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return apperr.KindNotFound
	case fiber.StatusConflict:
		return apperr.KindConflict
	case fiber.StatusServiceUnavailable, fiber.StatusGatewayTimeout:
		return apperr.KindTransient
	}
	return apperr.KindInternal
}
