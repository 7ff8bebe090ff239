package vllm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(exposition))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/metrics")

	raw, err := client.Scrape(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5120.0, raw.GenerationTokens)
	assert.Equal(t, 42.0, raw.SuccessfulRequests)
	assert.Equal(t, 0.42, raw.CacheUsageFraction)
}

func TestClient_Scrape_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/metrics")

	_, err := client.Scrape(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scrape")
}

func TestClient_Scrape_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url+"/metrics", WithScrapeTimeout(200*time.Millisecond))

	_, err := client.Scrape(context.Background())
	assert.Error(t, err)
}

func TestClient_Scrape_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL + "/metrics")

	_, err := client.Scrape(ctx)
	assert.Error(t, err)
}

func TestNewClient_DefaultReader(t *testing.T) {
	client := NewClient("http://localhost:8000/metrics")
	require.NotNil(t, client.reader)
}
