package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindTransient:    http.StatusServiceUnavailable,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.Status(), kind)
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("load form: %w", NotFound("form not found"))

	assert.True(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, Forbidden("")))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestWithCauseKeepsChainAndStack(t *testing.T) {
	root := errors.New("connection reset")
	err := Transient("database unavailable").WithCause(root)

	assert.ErrorIs(t, err, root)
	assert.NotNil(t, err.StackTrace())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestFromForeignError(t *testing.T) {
	e := From(errors.New("boom"))
	require.NotNil(t, e)
	assert.Equal(t, KindInternal, e.Kind)
	assert.Nil(t, From(nil))
}

func TestFieldInvalid(t *testing.T) {
	e := FieldInvalid("f1", "Name is required")
	assert.Equal(t, "f1", e.Field)
	assert.Equal(t, KindValidation, e.Kind)
}
