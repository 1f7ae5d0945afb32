package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwraps(t *testing.T) {
	err := UpstreamError("model call failed", errors.New("deadline exceeded"))
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "UPSTREAM_ERROR")
	assert.Contains(t, err.Error(), "model call failed")
}

func TestInvalidInputError(t *testing.T) {
	err := InvalidInputErrorf("quantity %d out of range", -1)
	require.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "quantity -1 out of range")
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	base := errors.New("boom")
	wrapped := WrapError(base, "reading drawing")
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "reading drawing")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInputError("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewAppError("NF", "gone", ErrNotFound)))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(UpstreamError("down", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("other")))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(t.Context(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(t.Context()))
}
