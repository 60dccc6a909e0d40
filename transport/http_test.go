package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/yfantasy/internal/platform/resilience"
)

func TestHTTPFetcherAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"fantasy_content":{}}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPConfig{Breaker: resilience.BreakerConfig{Enabled: false}})
	result, err := fetcher.Fetch(context.Background(), server.URL, "secret-token")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if result.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", result.StatusCode)
	}
	if !strings.Contains(string(result.Body), "fantasy_content") {
		t.Fatalf("body = %s", result.Body)
	}
}

func TestHTTPFetcherNonOKStatusIsResultNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"bad request"}}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPConfig{Breaker: resilience.BreakerConfig{Enabled: false}})
	result, err := fetcher.Fetch(context.Background(), server.URL, "token")
	if err != nil {
		t.Fatalf("Fetch should surface status via Result: %v", err)
	}
	if result.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", result.StatusCode)
	}
}

func TestHTTPFetcherCollapsesConcurrentIdenticalRequests(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPConfig{Breaker: resilience.BreakerConfig{Enabled: false}})

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			if _, err := fetcher.Fetch(context.Background(), server.URL, "token"); err != nil {
				t.Errorf("Fetch: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := hits.Load(); got != 1 {
		t.Fatalf("upstream hit %d times, want 1", got)
	}
}

func TestHTTPFetcherCircuitBreakerShedsAfterServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPConfig{
		Breaker: resilience.BreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 2; i++ {
		if _, err := fetcher.Fetch(context.Background(), server.URL, "token"); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if _, err := fetcher.Fetch(context.Background(), server.URL, "token"); err == nil {
		t.Fatalf("expected open circuit to reject the third request")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	in := `Get "https://example.com": Bearer abc123 rejected, token abc123`
	got := sanitizeSensitiveText(in, "abc123")
	if strings.Contains(got, "abc123") {
		t.Fatalf("token leaked: %s", got)
	}
}

func TestStaticTokenRefreshReturnsSameValue(t *testing.T) {
	src := StaticToken(" tok ")
	token, err := src.Token(context.Background())
	if err != nil || token != "tok" {
		t.Fatalf("Token = %q, %v", token, err)
	}
	refreshed, err := src.Refresh(context.Background())
	if err != nil || refreshed != "tok" {
		t.Fatalf("Refresh = %q, %v", refreshed, err)
	}

	if _, err := StaticToken("").Token(context.Background()); err == nil {
		t.Fatalf("empty static token should error")
	}
}

func TestRefreshingTokenMintsOnRefresh(t *testing.T) {
	var mints atomic.Int32
	src := NewRefreshingToken("initial", func(context.Context) (string, error) {
		mints.Add(1)
		return "minted", nil
	})

	token, err := src.Token(context.Background())
	if err != nil || token != "initial" {
		t.Fatalf("Token = %q, %v", token, err)
	}
	if mints.Load() != 0 {
		t.Fatalf("Token should not mint while a token is cached")
	}

	token, err = src.Refresh(context.Background())
	if err != nil || token != "minted" {
		t.Fatalf("Refresh = %q, %v", token, err)
	}
	token, err = src.Token(context.Background())
	if err != nil || token != "minted" {
		t.Fatalf("Token after refresh = %q, %v", token, err)
	}
}
