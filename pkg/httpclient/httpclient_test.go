package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	client := New()
	require.NotNil(t, client)
	assert.Equal(t, "", client.BaseURL())
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/flights/TP88", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"flight_iata":"TP88","dep_time_utc":"2026-07-15 10:00"}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	var out struct {
		FlightIATA string `json:"flight_iata"`
		DepTimeUTC string `json:"dep_time_utc"`
	}
	err := client.GetJSON(context.Background(), "/flights/TP88", &out, nil)
	require.NoError(t, err)
	assert.Equal(t, "TP88", out.FlightIATA)
}

func TestClient_GetJSON_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	var out map[string]any
	err := client.GetJSON(context.Background(), "/flights/TP88", &out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.PostJSON(context.Background(), "/hook", map[string]string{"evento": "lead"}, &out, nil)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithHeaders(map[string]string{"X-Api-Key": "secret-key"}))

	var out map[string]any
	err := client.GetJSON(context.Background(), "/", &out, nil)
	require.NoError(t, err)
}
