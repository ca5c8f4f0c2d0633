package usecase_test

import (
	"testing"

	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPErrorのstatusとmessageを確認
func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "err=%v is not HTTPError", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, message, he.Message)
}
