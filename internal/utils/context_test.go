package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetSessionIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, "session-abc")

	sessionID, ok := GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "session-abc", sessionID)
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	assert.False(t, ok)
}
