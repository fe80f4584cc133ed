package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
	repo "ctc-webbase/internal/repository"
)

// InjectViewer loads the authenticated user's document into Locals. It is a
// no-op for anonymous requests.
func InjectViewer(users repo.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(LocalUserID).(string); !ok {
			return c.Next()
		}
		uid, err := UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		user, err := users.FindUserByID(ctx, uid)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.Unauthorized("user no longer exists")
		}
		if err != nil {
			return apperr.Internal(err)
		}
		c.Locals(LocalViewer, user)
		return c.Next()
	}
}

// Viewer returns the user InjectViewer loaded, or nil.
func Viewer(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(LocalViewer).(*models.User)
	return u
}

// RequireRole lets through only viewers holding one of roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := Viewer(c)
		if v == nil {
			return apperr.Unauthorized("login required")
		}
		for _, r := range roles {
			if v.Role == r {
				return c.Next()
			}
		}
		return apperr.Forbidden("insufficient role")
	}
}
