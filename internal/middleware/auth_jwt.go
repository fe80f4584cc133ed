package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
)

type AccessClaims struct {
	UID  string `json:"uid,omitempty"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth verifies a bearer access token when one is sent and stores the
// caller's id and role in Locals. Tokens issued for another audience, such as
// referral tokens, are rejected. Requests without a token pass through untouched;
// RequireAuth decides whether that is acceptable.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims AccessClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) { return []byte(secret), nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(dto.AccessTokenAudience),
		)
		if err != nil || !token.Valid {
			return apperr.Unauthorized("invalid token")
		}

		uid := claims.UID
		if uid == "" {
			return apperr.Unauthorized("missing uid")
		}

		c.Locals(LocalUserID, uid)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}
