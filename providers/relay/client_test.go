package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscribe", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	ok, err := client.Subscribe(context.Background(), "user@example.com")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSubscribeRelayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	ok, err := client.Subscribe(context.Background(), "user@example.com")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSubscribeUnconfigured(t *testing.T) {
	client := &Client{}
	_, err := client.Subscribe(context.Background(), "user@example.com")
	assert.Error(t, err)
}
