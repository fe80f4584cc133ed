package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"ctc-webbase/config"
	"ctc-webbase/internal/cache"
	"ctc-webbase/internal/storage"
)

func TestNewAppServesHealthAndErrors(t *testing.T) {
	// Connect does not dial; no request below reaches the database.
	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "ctc-test"
	cfg.App.CORS = "*"
	cfg.App.Timezone = "UTC"
	cfg.JWT.Secret = "s"
	cfg.Storage.Driver = "local"
	cfg.Storage.Local.Dir = t.TempDir()

	app := newApp(cfg, zap.NewNop(), client.Database("ctc"), cache.Nop{}, storage.NewLocal(cfg.Storage.Local.Dir, "http://x"), false)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/technical-lead/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestBodyLimit(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, 11*1024*1024, bodyLimit(cfg))
	cfg.Forms.DefaultMaxFileMB = 20
	assert.Equal(t, 21*1024*1024, bodyLimit(cfg))
}
