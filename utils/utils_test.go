package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", NotFoundError("Note not found"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", ValidationError("bad duration"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", UnauthorizedError("no token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"store", StoreError("Failed to load notes", errors.New("socket closed")), http.StatusInternalServerError, "STORE_FAILURE"},
		{"wrapped", fmt.Errorf("ranking: %w", NotFoundError("Note not found")), http.StatusNotFound, "NOT_FOUND"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "STORE_FAILURE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, tt.code, body.Code)
			assert.NotContains(t, w.Body.String(), "socket closed")
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := StoreError("Failed to save activity", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStoreFailure, KindOf(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NotFoundError("gone"))))
}

func TestParseSnoozeDuration(t *testing.T) {
	d, err := ParseSnoozeDuration(" 3h ")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, d)

	for _, bad := range []string{"", "soon", "30s", "-1h", "721h"} {
		_, err := ParseSnoozeDuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "12")
	t.Setenv("TEST_BAD_INT", "twelve")
	t.Setenv("TEST_DAYS", "4")
	t.Setenv("TEST_BLANK", "  ")
	t.Setenv("TEST_FLOAT", "1.5")

	assert.Equal(t, 12, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.Equal(t, 96*time.Hour, GetEnvAsDays("TEST_DAYS", time.Hour))
	assert.Equal(t, "fallback", GetEnvAsString("TEST_BLANK", "fallback"))
	assert.Equal(t, 1.5, GetEnvAsFloat("TEST_FLOAT", 0))
	assert.True(t, GetEnvAsBool("TEST_UNSET_BOOL", true))
}

func TestRequestLocation(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		query   string
		want    string
		wantErr bool
	}{
		{name: "default", want: "UTC"},
		{name: "header", header: "Europe/Berlin", want: "Europe/Berlin"},
		{name: "query", query: "Asia/Tokyo", want: "Asia/Tokyo"},
		{name: "unknown", header: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/?tz="+tt.query, nil)
			if tt.header != "" {
				c.Request.Header.Set("X-Timezone", tt.header)
			}

			loc, err := RequestLocation(c)
			if tt.wantErr {
				assert.Equal(t, KindValidation, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
		})
	}
}

func TestAccessToken(t *testing.T) {
	secret := []byte("test_secret_key")
	token, err := GenerateAccessToken("user-1", secret, time.Hour)
	require.NoError(t, err)

	userID, err := ParseAccessToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = ParseAccessToken(token, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken("user-1", secret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseAccessToken(expired, secret)
	assert.Error(t, err)
}
