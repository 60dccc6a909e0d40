package yahoo

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/yfantasy/fantasy"
	"github.com/riskibarqy/yfantasy/transport"
)

type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	tokens  []string
	handler func(call int, url, token string) (*transport.Result, error)
}

func (f *fakeFetcher) Fetch(_ context.Context, url string, token string) (*transport.Result, error) {
	f.mu.Lock()
	call := len(f.calls)
	f.calls = append(f.calls, url)
	f.tokens = append(f.tokens, token)
	f.mu.Unlock()
	return f.handler(call, url, token)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func envelope(t *testing.T, content any) []byte {
	t.Helper()
	body, err := sonic.Marshal(map[string]any{"fantasy_content": content})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return body
}

func okResult(url string, body []byte) *transport.Result {
	return &transport.Result{StatusCode: http.StatusOK, Body: body, URL: url}
}

func newTestClient(t *testing.T, fetcher *fakeFetcher, tokens transport.TokenSource) *Client {
	t.Helper()
	if tokens == nil {
		tokens = transport.StaticToken("test-token")
	}
	client, err := NewClient(Config{
		Fetcher:  fetcher,
		Tokens:   tokens,
		GameCode: "nfl",
		GameID:   "331",
		LeagueID: "729",
		Retries:  3,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.sleep = func(context.Context, time.Duration) error { return nil }
	return client
}

func TestGetContentSuccess(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return okResult(url, envelope(t, map[string]any{
			"league": []any{map[string]any{"league_key": "331.l.729"}},
		})), nil
	}}
	client := newTestClient(t, fetcher, nil)

	value, err := client.getContent(context.Background(), client.buildURL("league/331.l.729", "metadata"), fantasy.Path("league"))
	if err != nil {
		t.Fatalf("getContent: %v", err)
	}
	merged := fantasy.ReformatList(fantasy.ToSequence(value))
	if merged["league_key"] != "331.l.729" {
		t.Fatalf("value = %v", value)
	}
	if !strings.Contains(fetcher.calls[0], "?format=json") {
		t.Fatalf("json format not requested: %s", fetcher.calls[0])
	}
}

func TestGetContentRetryBudgetIsTotalAttempts(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return &transport.Result{
			StatusCode: http.StatusInternalServerError,
			Body:       []byte(`{"error":{"description":"server unavailable"}}`),
			URL:        url,
		}, nil
	}}
	client := newTestClient(t, fetcher, nil)

	_, err := client.getContent(context.Background(), client.buildURL("league/331.l.729", "settings"), fantasy.Path("league", "settings"))
	if err == nil {
		t.Fatalf("expected failure after exhausted budget")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error is %T, want *HTTPError", err)
	}
	if httpErr.Description != "server unavailable" {
		t.Fatalf("description = %q", httpErr.Description)
	}
	if got := fetcher.callCount(); got != 3 {
		t.Fatalf("fetch attempted %d times, want exactly 3", got)
	}
}

func TestGetContentRateLimitIsFatal(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return &transport.Result{StatusCode: 999, Body: []byte(`{}`), URL: url}, nil
	}}
	client := newTestClient(t, fetcher, nil)

	_, err := client.getContent(context.Background(), client.buildURL("game/nfl", "metadata"), fantasy.Path("game"))
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("error = %v, want ErrRateLimited", err)
	}
	if got := fetcher.callCount(); got != 1 {
		t.Fatalf("rate-limited call retried %d times, want single attempt", got)
	}
}

func TestGetContentReauthenticatesOnceOn401(t *testing.T) {
	var refreshes int
	tokens := transport.NewRefreshingToken("stale", func(context.Context) (string, error) {
		refreshes++
		return "fresh", nil
	})

	fetcher := &fakeFetcher{handler: func(_ int, url, token string) (*transport.Result, error) {
		if token == "stale" {
			return &transport.Result{StatusCode: http.StatusUnauthorized, Body: []byte(`{"error":{"description":"token expired"}}`), URL: url}, nil
		}
		return okResult(url, envelope(t, map[string]any{
			"game": []any{map[string]any{"game_key": "331"}},
		})), nil
	}}
	client := newTestClient(t, fetcher, tokens)

	value, err := client.getContent(context.Background(), client.buildURL("game/nfl", "metadata"), fantasy.Path("game"))
	if err != nil {
		t.Fatalf("getContent: %v", err)
	}
	if value == nil {
		t.Fatalf("no value after re-auth")
	}
	if refreshes != 1 {
		t.Fatalf("refreshed %d times, want 1", refreshes)
	}
	if got := fetcher.callCount(); got != 2 {
		t.Fatalf("fetched %d times, want stale+fresh", got)
	}
	if fetcher.tokens[1] != "fresh" {
		t.Fatalf("second attempt used token %q", fetcher.tokens[1])
	}
}

func TestGetContentMissingEnvelopeIsDataNotFound(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return okResult(url, []byte(`{"something_else":{}}`)), nil
	}}
	client := newTestClient(t, fetcher, nil)

	url := client.buildURL("league/331.l.729", "metadata")
	_, err := client.getContent(context.Background(), url, fantasy.Path("league"))
	if !IsDataNotFound(err) {
		t.Fatalf("error = %v, want data-not-found", err)
	}
	var nf *fantasy.NotFoundError
	if !crerr.As(err, &nf) || nf.URL != url {
		t.Fatalf("request url not attached: %v", err)
	}
	if got := fetcher.callCount(); got != 1 {
		t.Fatalf("empty envelope retried %d times, want 1", got)
	}
}

func TestGetContentUndecodableBodyOn2xxIsDataNotFound(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return okResult(url, []byte(`<html>maintenance page</html>`)), nil
	}}
	client := newTestClient(t, fetcher, nil)

	_, err := client.getContent(context.Background(), client.buildURL("league/331.l.729", "metadata"), fantasy.Path("league"))
	if !IsDataNotFound(err) {
		t.Fatalf("error = %v, want data-not-found", err)
	}
	if got := fetcher.callCount(); got != 1 {
		t.Fatalf("undecodable body retried %d times, want single attempt", got)
	}
}

func TestGetContentMissingKeyPathIsDataNotFound(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return okResult(url, envelope(t, map[string]any{
			"league": []any{map[string]any{"league_key": "331.l.729"}},
		})), nil
	}}
	client := newTestClient(t, fetcher, nil)

	_, err := client.getContent(context.Background(), client.buildURL("league/331.l.729", "scoreboard"), fantasy.Path("league", "scoreboard"))
	if !IsDataNotFound(err) {
		t.Fatalf("error = %v, want data-not-found", err)
	}
}

func TestGetContentTransportErrorsBurnBudget(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(call int, url, _ string) (*transport.Result, error) {
		if call < 2 {
			return nil, errors.New("connection reset")
		}
		return okResult(url, envelope(t, map[string]any{
			"game": []any{map[string]any{"game_key": "331"}},
		})), nil
	}}
	client := newTestClient(t, fetcher, nil)

	value, err := client.getContent(context.Background(), client.buildURL("game/nfl", "metadata"), fantasy.Path("game"))
	if err != nil {
		t.Fatalf("third attempt should succeed: %v", err)
	}
	if value == nil {
		t.Fatalf("missing value")
	}
	if got := fetcher.callCount(); got != 3 {
		t.Fatalf("fetched %d times, want 3", got)
	}
}

func TestExecutedQueriesJournal(t *testing.T) {
	fetcher := &fakeFetcher{handler: func(_ int, url, _ string) (*transport.Result, error) {
		return okResult(url, envelope(t, map[string]any{
			"game": []any{map[string]any{"game_key": "331"}},
		})), nil
	}}
	client := newTestClient(t, fetcher, nil)

	if _, err := client.GetCurrentGameMetadata(context.Background()); err != nil {
		t.Fatalf("query: %v", err)
	}
	records := client.ExecutedQueries()
	if len(records) != 1 {
		t.Fatalf("journal holds %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.StatusCode != http.StatusOK || rec.Attempts != 1 || rec.KeyPath != "game" {
		t.Fatalf("record = %+v", rec)
	}
	if !strings.Contains(rec.URL, "/game/nfl/metadata") {
		t.Fatalf("record url = %s", rec.URL)
	}
}
