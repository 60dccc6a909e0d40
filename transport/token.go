package transport

import (
	"context"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

// TokenSource supplies the OAuth2 access token attached to every request.
// Refresh is called after the API rejects the current token; implementations
// backed by a refresh token should mint a new access token, while static
// sources may return the same value and let the caller's single re-auth
// attempt run its course.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource around a fixed access token.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", crerr.New("access token is empty")
	}
	return token, nil
}

func (s StaticToken) Refresh(ctx context.Context) (string, error) {
	return s.Token(ctx)
}

// RefreshingToken adapts a refresh callback into a TokenSource, caching the
// last minted access token between refreshes.
type RefreshingToken struct {
	mu      sync.Mutex
	current string
	mint    func(ctx context.Context) (string, error)
}

func NewRefreshingToken(initial string, mint func(ctx context.Context) (string, error)) *RefreshingToken {
	return &RefreshingToken{current: initial, mint: mint}
}

func (r *RefreshingToken) Token(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != "" {
		return r.current, nil
	}
	return r.refreshLocked(ctx)
}

func (r *RefreshingToken) Refresh(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshLocked(ctx)
}

func (r *RefreshingToken) refreshLocked(ctx context.Context) (string, error) {
	if r.mint == nil {
		return "", crerr.New("token source cannot refresh: no mint callback")
	}
	token, err := r.mint(ctx)
	if err != nil {
		return "", crerr.Wrap(err, "mint access token")
	}
	r.current = token
	return token, nil
}
