package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastHTTPFetcher(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"fantasy_content":{}}`))
	}))
	defer server.Close()

	fetcher := NewFastHTTPFetcher(FastHTTPConfig{UserAgent: "yfq"})
	result, err := fetcher.Fetch(context.Background(), server.URL, "secret")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, string(result.Body), "fantasy_content")
}

func TestFastHTTPFetcherHonorsCancelledContext(t *testing.T) {
	fetcher := NewFastHTTPFetcher(FastHTTPConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, "http://127.0.0.1:1/never", "tok")
	require.Error(t, err)
}
