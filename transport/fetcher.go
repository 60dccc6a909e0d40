// Package transport performs single HTTP exchanges against the Yahoo Fantasy
// Sports API. Fetchers do not retry; retry, re-auth and pagination policy
// belong to the query client built on top.
package transport

import (
	"context"
	"regexp"
	"strings"
)

// Result is one completed exchange. Body is the raw response bytes; callers
// must treat it as read-only because concurrent identical requests can share
// one Result.
type Result struct {
	StatusCode int
	Body       []byte
	URL        string
}

// Fetcher issues one authenticated GET and returns the outcome. A non-2xx
// status is a Result, not an error; errors are reserved for failures that
// produced no usable response.
type Fetcher interface {
	Fetch(ctx context.Context, url string, accessToken string) (*Result, error)
}

var bearerTokenRegex = regexp.MustCompile(`Bearer\s+\S+`)

// sanitizeSensitiveText scrubs the access token from error strings before
// they reach logs.
func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerTokenRegex.ReplaceAllString(value, "Bearer REDACTED")
}
