package referral

import (
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctc-webbase/internal/models"
)

var stagedE1 = Staged{
	TechnicalLeadID:   "T1",
	TechnicalLeadName: "Alice",
	ReferralEventID:   "E1",
	ReferralCode:      "abc123",
}

func TestExtractSameEvent(t *testing.T) {
	got := Extract(stagedE1, "E1")
	assert.Equal(t, models.Referral{ReferredBy: "T1", ReferredByName: "Alice", ReferralCode: "abc123"}, got)
	assert.True(t, got.Attributed())
}

func TestExtractOtherEventDoesNotLeak(t *testing.T) {
	got := Extract(stagedE1, "E2")
	assert.Equal(t, models.Referral{ReferredBy: models.NoReferral}, got)
	assert.False(t, got.Attributed())
}

func TestExtractMissingLead(t *testing.T) {
	s := stagedE1
	s.TechnicalLeadID = ""
	assert.Equal(t, models.NoReferral, Extract(s, "E1").ReferredBy)
	assert.Equal(t, models.NoReferral, Extract(Staged{}, "").ReferredBy)
}

func TestCode(t *testing.T) {
	id := "665f1c2e9b1d4a0012345678"
	code := Code(id)

	assert.Len(t, code, 8)
	assert.Regexp(t, `^[A-Za-z0-9]{8}$`, code)
	assert.Equal(t, code, Code(id))
	assert.NotEqual(t, code, Code("765f1c2e9b1d4a0012345678"))
	assert.True(t, VerifyCode(id, code))
	assert.False(t, VerifyCode(id, "deadbeef"))
	assert.False(t, VerifyCode("", ""))
}

func TestLink(t *testing.T) {
	link := Link("https://ctc.example.com/", "E1", "665f1c2e9b1d4a0012345678")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "/events/E1", u.Path)
	assert.Equal(t, Code("665f1c2e9b1d4a0012345678"), u.Query().Get("ref"))
	assert.Equal(t, "665f1c2e9b1d4a0012345678", u.Query().Get("tlId"))
}

func TestSignerRoundTrip(t *testing.T) {
	s := NewSigner("secret", time.Hour)

	tok, exp, err := s.Sign(stagedE1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, stagedE1, got)

	var raw jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(tok, &raw)
	require.NoError(t, err)
	assert.Empty(t, raw.Subject)
	assert.Equal(t, jwt.ClaimStrings{"referral"}, raw.Audience)
}

func TestSignerRejects(t *testing.T) {
	s := NewSigner("secret", time.Minute)
	tok, _, err := s.Sign(stagedE1)
	require.NoError(t, err)

	_, err = NewSigner("other", time.Minute).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewSigner("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = expired.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
