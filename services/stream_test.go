package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamify/config"
	"streamify/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(t *testing.T) *StreamGateway {
	t.Helper()
	gateway, err := NewStreamGateway(config.StreamConfig{
		APIKey:    "test-key",
		APISecret: "test-secret",
	})
	require.NoError(t, err)
	return gateway
}

func TestNewStreamGatewayRequiresCredentials(t *testing.T) {
	_, err := NewStreamGateway(config.StreamConfig{})
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	gateway := testGateway(t)

	token, err := gateway.GenerateToken(42)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["user_id"])
}

func TestUpsertUser(t *testing.T) {
	var gotPath, gotAuthType string
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAuthType = r.Header.Get("Stream-Auth-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	gateway := testGateway(t)
	gateway.SetBaseURL(server.URL)

	err := gateway.UpsertUser(context.Background(), &models.User{ID: 7, FullName: "Test User"})
	require.NoError(t, err)

	assert.Equal(t, "/users", gotPath)
	assert.NotEmpty(t, gotAuth)
	assert.Equal(t, "jwt", gotAuthType)
}

func TestUpsertUserProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	gateway := testGateway(t)
	gateway.SetBaseURL(server.URL)

	err := gateway.UpsertUser(context.Background(), &models.User{ID: 7})
	assert.Error(t, err)
}
