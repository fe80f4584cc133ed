package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

const secret = "mw-secret"

type users map[bson.ObjectID]*models.User

func (u users) FindUserByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if x, ok := u[id]; ok {
		return x, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (u users) FindUserByEmail(context.Context, string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func sign(t *testing.T, claims jwt.Claims, method jwt.SigningMethod, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func access(uid, role string) AccessClaims {
	return AccessClaims{UID: uid, Role: role, RegisteredClaims: jwt.RegisteredClaims{
		Audience: jwt.ClaimStrings{dto.AccessTokenAudience},
	}}
}

func newApp(us users, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Use(JWTAuth(secret), InjectViewer(us))
	handlers := append(extra, func(c *fiber.Ctx) error {
		v := Viewer(c)
		if v == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(v.Name)
	})
	app.Get("/", handlers...)
	return app
}

func do(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestJWTAuthAndViewer(t *testing.T) {
	alice := &models.User{ID: bson.NewObjectID(), Name: "Alice", Role: models.RoleTechnicalLead}
	app := newApp(users{alice.ID: alice})

	code, body := do(t, app, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "anonymous", body)

	good := sign(t, access(alice.ID.Hex(), "technicalLead"), jwt.SigningMethodHS256, []byte(secret))
	code, body = do(t, app, good)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Alice", body)

	subOnly := sign(t, jwt.RegisteredClaims{Subject: alice.ID.Hex(), Audience: jwt.ClaimStrings{dto.AccessTokenAudience}}, jwt.SigningMethodHS256, []byte(secret))
	code, _ = do(t, app, subOnly)
	assert.Equal(t, http.StatusUnauthorized, code)

	noAudience := sign(t, AccessClaims{UID: alice.ID.Hex()}, jwt.SigningMethodHS256, []byte(secret))
	code, _ = do(t, app, noAudience)
	assert.Equal(t, http.StatusUnauthorized, code)

	referralAud := access(alice.ID.Hex(), "technicalLead")
	referralAud.Audience = jwt.ClaimStrings{"referral"}
	code, _ = do(t, app, sign(t, referralAud, jwt.SigningMethodHS256, []byte(secret)))
	assert.Equal(t, http.StatusUnauthorized, code)

	wrongKey := sign(t, access(alice.ID.Hex(), ""), jwt.SigningMethodHS256, []byte("other"))
	code, body = do(t, app, wrongKey)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Contains(t, body, `"kind":"unauthorized"`)

	stale := access(alice.ID.Hex(), "")
	stale.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired := sign(t, stale, jwt.SigningMethodHS256, []byte(secret))
	code, _ = do(t, app, expired)
	assert.Equal(t, http.StatusUnauthorized, code)

	ghost := sign(t, access(bson.NewObjectID().Hex(), ""), jwt.SigningMethodHS256, []byte(secret))
	code, _ = do(t, app, ghost)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireAuthAndRole(t *testing.T) {
	lead := &models.User{ID: bson.NewObjectID(), Name: "Lead", Role: models.RoleTechnicalLead}
	student := &models.User{ID: bson.NewObjectID(), Name: "Stu", Role: models.RoleStudent}
	app := newApp(users{lead.ID: lead, student.ID: student}, RequireAuth(), RequireRole(models.RoleTechnicalLead, models.RoleAdmin))

	code, _ := do(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := do(t, app, sign(t, access(student.ID.Hex(), ""), jwt.SigningMethodHS256, []byte(secret)))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, body, `"kind":"forbidden"`)

	code, body = do(t, app, sign(t, access(lead.ID.Hex(), ""), jwt.SigningMethodHS256, []byte(secret)))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Lead", body)
}

func TestErrorHandlerShapes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/field", func(*fiber.Ctx) error { return apperr.FieldInvalid("name", "Full name is required") })
	app.Get("/conflict", func(*fiber.Ctx) error { return apperr.Conflict("dup") })
	app.Get("/boom", func(*fiber.Ctx) error { return errors.New("db down") })
	app.Get("/fiber", func(*fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })

	cases := []struct {
		path   string
		status int
		want   dto.ErrorResponse
	}{
		{"/field", 400, dto.ErrorResponse{Error: "Full name is required", Kind: "validation", Field: "name"}},
		{"/conflict", 409, dto.ErrorResponse{Error: "dup", Kind: "conflict"}},
		{"/boom", 500, dto.ErrorResponse{Error: "internal server error", Kind: "internal"}},
		{"/fiber", 413, dto.ErrorResponse{Error: "Request Entity Too Large", Kind: "validation"}},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.NoError(t, err)
		var got dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}
