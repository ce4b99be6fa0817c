package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chatroom-api/internal/types"
)

func TestUserId(t *testing.T) {
	tcases := []struct {
		name     string
		ctx      context.Context
		userId   int
		expected bool
	}{
		{
			name:     "no user ID",
			ctx:      context.Background(),
			expected: false,
		},
		{
			name:     "user ID set",
			ctx:      WithUserId(context.Background(), 42),
			userId:   42,
			expected: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			userId, ok := UserId(tc.ctx)
			assert.Equal(t, tc.expected, ok, "expected UserId to return %v", tc.expected)
			assert.Equal(t, tc.userId, userId, "expected UserId to return %d", tc.userId)
		})
	}
}

func Test_hashPassword(t *testing.T) {
	hash, err := hashPassword("password")
	assert.NoError(t, err, "expected no error hashing password")
	assert.NotEqual(t, "password", hash, "expected hash to differ from plain password")
	assert.True(t, verifyPassword(hash, "password"), "expected hash to verify against original password")
	assert.False(t, verifyPassword(hash, "wrong"), "expected hash not to verify against wrong password")
}

func Test_jwtRoundTrip(t *testing.T) {
	app := &ChatApp{signingKey: []byte("test-signing-key")}

	u := types.User{
		Id:       7,
		Username: "test",
	}

	token, err := app.createJwtForSession(u, defaultJwtExpiration)
	assert.NoError(t, err, "expected no error creating token")

	userId, err := app.extractUserIdFromToken(token)
	assert.NoError(t, err, "expected no error extracting user id")
	assert.Equal(t, u.Id, userId, "expected user id to round-trip through the token")
}

func Test_extractUserIdFromToken_Invalid(t *testing.T) {
	app := &ChatApp{signingKey: []byte("test-signing-key")}

	t.Run("malformed token", func(t *testing.T) {
		_, err := app.extractUserIdFromToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := &ChatApp{signingKey: []byte("other-key")}
		token, err := other.createJwtForSession(types.User{Id: 1}, defaultJwtExpiration)
		assert.NoError(t, err)

		_, err = app.extractUserIdFromToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := app.createJwtForSession(types.User{Id: 1}, -time.Minute)
		assert.NoError(t, err)

		_, err = app.extractUserIdFromToken(token)
		assert.Error(t, err)
	})
}

func Test_createJwtCookie(t *testing.T) {
	cookie := createJwtCookie("token-value", time.Hour)
	assert.Equal(t, tokenCookieKey, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly, "expected cookie to be http-only")
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}
