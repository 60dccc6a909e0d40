package yahoo

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/yfantasy/fantasy"
)

// ErrRateLimited is returned when Yahoo answers with its rate-limit status.
// The condition is fatal for the current call: retrying immediately only
// extends the lockout.
var ErrRateLimited = crerr.New("fantasy api rate limit reached, try again later")

// HTTPError is a non-2xx response or an explicit error payload from the API.
// The client retries these against its attempt budget.
type HTTPError struct {
	StatusCode  int
	URL         string
	Description string
}

func (e *HTTPError) Error() string {
	msg := e.Description
	if msg == "" {
		msg = "request failed"
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
	}
	if e.URL != "" {
		msg = fmt.Sprintf("%s (url: %s)", msg, e.URL)
	}
	return msg
}

// IsDataNotFound reports whether err means the response was well-formed but
// held no data at the requested location.
func IsDataNotFound(err error) bool {
	var nf *fantasy.NotFoundError
	return crerr.As(err, &nf)
}
