package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/yfantasy/internal/platform/logging"
	"github.com/riskibarqy/yfantasy/internal/platform/resilience"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 6 << 20
)

var errUpstreamUnavailable = crerr.New("fantasy api is temporarily unavailable")

// HTTPConfig configures the net/http based fetcher.
type HTTPConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Logger     *logging.Logger
	Breaker    resilience.BreakerConfig
}

// HTTPFetcher is the default Fetcher. Outbound requests carry trace spans,
// identical concurrent GETs collapse into one exchange, and a circuit breaker
// sheds load while the upstream is failing.
type HTTPFetcher struct {
	httpClient     *http.Client
	userAgent      string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewHTTPFetcher(cfg HTTPConfig) *HTTPFetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		if cfg.Timeout > 0 {
			httpClient.Timeout = cfg.Timeout
		} else {
			httpClient.Timeout = defaultTimeout
		}
	}

	breakerCfg := resilience.NormalizeBreakerConfig(cfg.Breaker)

	return &HTTPFetcher{
		httpClient:     httpClient,
		userAgent:      cfg.UserAgent,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string, accessToken string) (*Result, error) {
	if f.circuitEnabled {
		if err := f.breaker.Allow(); err != nil {
			f.logger.WarnContext(ctx, "circuit breaker rejected request", "state", f.breaker.State())
			return nil, errUpstreamUnavailable
		}
	}

	out, err, _ := f.flight.Do(url, func() (any, error) {
		result, reqErr := f.execute(ctx, url, accessToken)
		if f.circuitEnabled {
			if reqErr != nil || (result != nil && result.StatusCode >= http.StatusInternalServerError) {
				f.breaker.RecordFailure()
			} else {
				f.breaker.RecordSuccess()
			}
		}
		return result, reqErr
	})
	if err != nil {
		return nil, err
	}

	result, ok := out.(*Result)
	if !ok {
		return nil, crerr.Newf("unexpected response payload type %T", out)
	}
	return result, nil
}

func (f *HTTPFetcher) execute(ctx context.Context, url string, accessToken string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %s", sanitizeSensitiveText(err.Error(), accessToken))
	}
	defer func() { _ = resp.Body.Close() }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, crerr.Wrap(err, "read response body")
	}

	body := make([]byte, len(buf.B))
	copy(body, buf.B)

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
		URL:        url,
	}, nil
}
