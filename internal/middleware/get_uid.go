package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ctc-webbase/internal/apperr"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalViewer = "viewer"
)

// UIDFromLocals returns the user id JWTAuth stored.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals(LocalUserID).(string)
	if uid == "" {
		return "", apperr.Unauthorized("login required")
	}
	return uid, nil
}

// UIDObjectID is UIDFromLocals parsed as an ObjectID.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, err := UIDFromLocals(c)
	if err != nil {
		return bson.NilObjectID, err
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, apperr.Unauthorized("invalid user id in token")
	}
	return oid, nil
}

// RequireAuth rejects requests that did not carry a valid token.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := UIDFromLocals(c); err != nil {
			return err
		}
		return c.Next()
	}
}
