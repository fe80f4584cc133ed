package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

func TestLogin(t *testing.T) {
	st := newFakeStore()
	lead := st.addUser("Alice", models.RoleTechnicalLead)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	lead.PasswordHash = string(hash)

	svc := NewAuthService(st, "jwt-secret", time.Hour)
	ctx := context.Background()

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, lead.ID, res.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (any, error) { return []byte("jwt-secret"), nil })
	require.NoError(t, err)
	assert.Equal(t, lead.ID.Hex(), claims["uid"])
	assert.Equal(t, string(models.RoleTechnicalLead), claims["role"])
	aud, err := claims.GetAudience()
	require.NoError(t, err)
	assert.Equal(t, jwt.ClaimStrings{dto.AccessTokenAudience}, aud)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "s3cret!"})
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
