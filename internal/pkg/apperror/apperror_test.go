package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs_FindsWrappedError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("ranking: %w", Upstream(http.StatusBadGateway, "Failed to generate embeddings.", nil, cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to generate embeddings.: boom", appErr.Error())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("boardId is required.").Status)
	assert.Equal(t, "try again", InsufficientSignal("no pins", "try again").Hint)
	assert.Equal(t, []string{"A", "B"}, Config("missing", "A", "B").Required)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x", "y").Status)

	_, ok := As(errors.New("plain"))
	assert.False(t, ok)
}

func TestCause(t *testing.T) {
	cause := errors.New("rate limited")

	assert.Equal(t, "rate limited", Provider("embedding failed", map[string]interface{}{"code": 429}, cause).Cause())
	assert.Equal(t, http.StatusBadGateway, Provider("embedding failed", nil, cause).Status)
	assert.Equal(t, "rate limited", Internal("unexpected", cause).Cause())
	assert.Equal(t, "", Upstream(http.StatusNotFound, "Pinterest request failed.", nil, cause).Cause())
	assert.Equal(t, "", Validation("boardId is required.").Cause())
}
