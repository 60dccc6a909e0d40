// Package yahoo is a read client for the Yahoo Fantasy Sports API. It builds
// resource URLs, drives retries and re-authentication, extracts subtrees by
// key path and materializes typed entities from the fantasy package.
package yahoo

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/yfantasy/fantasy"
	"github.com/riskibarqy/yfantasy/internal/platform/cache"
	"github.com/riskibarqy/yfantasy/internal/platform/logging"
	"github.com/riskibarqy/yfantasy/transport"
)

const (
	envelopeKey = "fantasy_content"

	// statusRateLimited is Yahoo's non-standard "come back later" status.
	statusRateLimited = 999

	defaultRetries = 3
	defaultBackoff = 300 * time.Millisecond
)

// Config configures a Client. GameCode and LeagueID identify the league the
// league- and team-scoped queries operate on; GameID pins a historical season
// and defaults to the current one when empty.
type Config struct {
	Fetcher  transport.Fetcher
	Tokens   transport.TokenSource
	BaseURL  string
	GameCode string
	GameID   string
	LeagueID string

	// Retries is the total fetch attempt budget per call, counting the first
	// attempt. The implicit retry after a re-authentication does not count.
	Retries int
	Backoff time.Duration

	Logger   *logging.Logger
	KeyCache *cache.Store
}

// Client executes queries against one fantasy league. Methods are safe for
// concurrent use.
type Client struct {
	fetcher  transport.Fetcher
	tokens   transport.TokenSource
	baseURL  string
	gameCode string
	gameID   string
	leagueID string
	retries  int
	backoff  time.Duration
	logger   *logging.Logger
	keys     *cache.Store

	journalMu sync.Mutex
	journal   []QueryRecord

	sleep func(ctx context.Context, d time.Duration) error
}

// QueryRecord is one executed exchange, kept for diagnostics.
type QueryRecord struct {
	URL        string
	KeyPath    string
	StatusCode int
	Attempts   int
	Duration   time.Duration
	Err        string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Tokens == nil {
		return nil, crerr.New("token source is required")
	}
	if strings.TrimSpace(cfg.GameCode) == "" {
		return nil, crerr.New("game code is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = transport.NewHTTPFetcher(transport.HTTPConfig{Logger: logger})
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	retries := cfg.Retries
	if retries < 1 {
		retries = defaultRetries
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	keys := cfg.KeyCache
	if keys == nil {
		keys = cache.NewStore(0)
	}

	return &Client{
		fetcher:  fetcher,
		tokens:   cfg.Tokens,
		baseURL:  baseURL,
		gameCode: strings.TrimSpace(cfg.GameCode),
		gameID:   strings.TrimSpace(cfg.GameID),
		leagueID: strings.TrimSpace(cfg.LeagueID),
		retries:  retries,
		backoff:  backoff,
		logger:   logger,
		keys:     keys,
		sleep:    sleepContext,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ExecutedQueries returns a snapshot of every exchange this client has run.
func (c *Client) ExecutedQueries() []QueryRecord {
	c.journalMu.Lock()
	defer c.journalMu.Unlock()
	out := make([]QueryRecord, len(c.journal))
	copy(out, c.journal)
	return out
}

func (c *Client) record(rec QueryRecord) {
	c.journalMu.Lock()
	c.journal = append(c.journal, rec)
	c.journalMu.Unlock()
}

// getContent fetches url, unwraps the response envelope and navigates to the
// key path. Rate limiting is fatal. A 401 triggers one re-authentication and
// an implicit retry that does not count against the budget. Every other error
// burns one attempt; after the budget is spent the last error is returned.
func (c *Client) getContent(ctx context.Context, url string, path fantasy.KeyPath) (any, error) {
	fetchURL := url + "?format=json"
	started := time.Now()

	var lastErr error
	var lastStatus int
	reauthed := false
	attempts := 0

	for attempts < c.retries {
		attempts++

		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.record(QueryRecord{URL: url, KeyPath: path.String(), Attempts: attempts, Duration: time.Since(started), Err: err.Error()})
			return nil, crerr.Wrap(err, "acquire access token")
		}

		result, err := c.fetcher.Fetch(ctx, fetchURL, token)
		if err != nil {
			lastErr = err
			lastStatus = 0
			c.logger.WarnContext(ctx, "fantasy api request failed",
				"url", url, "attempt", attempts, "error", err)
		} else {
			lastStatus = result.StatusCode
			value, fatal, reqErr := c.evaluate(url, path, result)
			if reqErr == nil {
				c.record(QueryRecord{URL: url, KeyPath: path.String(), StatusCode: result.StatusCode, Attempts: attempts, Duration: time.Since(started)})
				return value, nil
			}
			if result.StatusCode == http.StatusUnauthorized && !reauthed {
				// Expired token. Re-auth once; the follow-up fetch is free.
				reauthed = true
				attempts--
				c.logger.InfoContext(ctx, "access token rejected, re-authenticating", "url", url)
				if _, refreshErr := c.tokens.Refresh(ctx); refreshErr != nil {
					c.record(QueryRecord{URL: url, KeyPath: path.String(), StatusCode: result.StatusCode, Attempts: attempts + 1, Duration: time.Since(started), Err: refreshErr.Error()})
					return nil, crerr.Wrap(refreshErr, "re-authenticate")
				}
				continue
			}
			if fatal {
				c.record(QueryRecord{URL: url, KeyPath: path.String(), StatusCode: result.StatusCode, Attempts: attempts, Duration: time.Since(started), Err: reqErr.Error()})
				return nil, reqErr
			}
			lastErr = reqErr
			c.logger.WarnContext(ctx, "fantasy api returned an error",
				"url", url, "status", result.StatusCode, "attempt", attempts, "error", reqErr)
		}

		if attempts >= c.retries {
			break
		}
		if err := c.sleep(ctx, c.backoff*time.Duration(attempts)); err != nil {
			c.record(QueryRecord{URL: url, KeyPath: path.String(), StatusCode: lastStatus, Attempts: attempts, Duration: time.Since(started), Err: err.Error()})
			return nil, err
		}
	}

	if lastErr == nil {
		lastErr = &HTTPError{URL: url, Description: "request failed"}
	}
	c.record(QueryRecord{URL: url, KeyPath: path.String(), StatusCode: lastStatus, Attempts: attempts, Duration: time.Since(started), Err: lastErr.Error()})
	return nil, lastErr
}

// evaluate classifies one response: (value, nil) on success, fatal=true for
// conditions no retry can fix.
func (c *Client) evaluate(url string, path fantasy.KeyPath, result *transport.Result) (any, bool, error) {
	if result.StatusCode == statusRateLimited {
		return nil, true, crerr.Wrapf(ErrRateLimited, "url %s", url)
	}

	var payload map[string]any
	decodeErr := sonic.Unmarshal(result.Body, &payload)

	if description, ok := errorDescription(payload); ok {
		return nil, false, &HTTPError{StatusCode: result.StatusCode, URL: url, Description: description}
	}
	if result.StatusCode < 200 || result.StatusCode >= 300 {
		return nil, false, &HTTPError{StatusCode: result.StatusCode, URL: url, Description: http.StatusText(result.StatusCode)}
	}
	if decodeErr != nil {
		// A success status with an undecodable body carries no envelope;
		// retrying gets the same body back.
		return nil, true, &fantasy.NotFoundError{URL: url, Message: "response body is not valid json"}
	}

	envelope, ok := payload[envelopeKey].(map[string]any)
	if !ok || len(envelope) == 0 {
		// A successful status with no envelope means the query addressed
		// nothing. Not retryable.
		return nil, true, &fantasy.NotFoundError{URL: url, Message: "response envelope is empty"}
	}

	value, err := fantasy.Navigate(envelope, path)
	if err != nil {
		var nf *fantasy.NotFoundError
		if crerr.As(err, &nf) {
			nf.URL = url
		}
		return nil, true, err
	}
	return value, false, nil
}

// errorDescription digs the human-readable message out of an API error
// payload: {"error": {"description": "..."}}.
func errorDescription(payload map[string]any) (string, bool) {
	raw, ok := payload["error"]
	if !ok {
		return "", false
	}
	if m, ok := raw.(map[string]any); ok {
		if description, ok := m["description"].(string); ok && description != "" {
			return description, true
		}
	}
	return "api error", true
}

// fetchEntity runs a query and materializes a single entity of type T.
func fetchEntity[T any](ctx context.Context, c *Client, url string, path fantasy.KeyPath, entityName string) (*T, error) {
	value, err := c.getContent(ctx, url, path)
	if err != nil {
		return nil, err
	}
	return fantasy.Build[T](fantasy.Unpack(entityName, value))
}

// fetchEntityList runs a query addressing a collection and materializes its
// elements in response order.
func fetchEntityList[T any](ctx context.Context, c *Client, url string, path fantasy.KeyPath, entityName string) ([]T, error) {
	value, err := c.getContent(ctx, url, path)
	if err != nil {
		return nil, err
	}
	seq := fantasy.UnwrapPlural(fantasy.ToSequence(value), path.Last().Primary())
	canonical := make([]any, 0, len(seq))
	for _, item := range seq {
		canonical = append(canonical, fantasy.Unpack(entityName, item))
	}
	return fantasy.BuildList[T](canonical)
}
