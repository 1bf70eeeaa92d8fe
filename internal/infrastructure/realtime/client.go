package realtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
)

const (
	defaultPollTimeout = 35 * time.Second
	defaultPollWait    = 25 * time.Second
	snapshotsPath      = "/v1/live/snapshots"
	gatewayTokenHeader = "X-Gateway-Token"
)

var errGatewayTransient = crerr.New("live gateway transient failure")

// Snapshot is one long-poll result from the live gateway. The cursor is
// opaque; it is echoed back on the next poll so the gateway can resume from
// the last delivered change.
type Snapshot struct {
	Cursor   string          `json:"cursor"`
	Fixtures []match.Fixture `json:"fixtures"`
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	PollTimeout    time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client long-polls the live gateway for fixture snapshot pushes.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	pollTimeout    time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		pollTimeout:    pollTimeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Poll asks the gateway for changes since cursor. A gateway with nothing to
// report answers 204; the returned snapshot then carries the unchanged cursor
// and no fixtures.
func (c *Client) Poll(ctx context.Context, cursor string) (Snapshot, error) {
	if c.baseURL == "" {
		return Snapshot{}, fmt.Errorf("gateway base url is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "live gateway circuit breaker rejected poll", "state", c.breaker.State())
			return Snapshot{}, fmt.Errorf("%w: live gateway is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executePoll(ctx, c.pollURL(cursor))
	if c.circuitEnabled {
		if err != nil && stderrors.Is(err, errGatewayTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return Snapshot{}, err
	}
	if len(raw) == 0 {
		return Snapshot{Cursor: cursor}, nil
	}

	var snapshot Snapshot
	if err := sonic.Unmarshal(raw, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decode gateway payload: %w", err)
	}
	if snapshot.Cursor == "" {
		snapshot.Cursor = cursor
	}
	return snapshot, nil
}

func (c *Client) pollURL(cursor string) string {
	fullURL := c.baseURL + snapshotsPath + "?wait=" + strconv.Itoa(int(defaultPollWait/time.Second))
	if cursor != "" {
		fullURL += "&cursor=" + cursor
	}
	return fullURL
}

func (c *Client) executePoll(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, retry, err := c.doRequest(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retry {
			return nil, lastErr
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("gateway poll failed")
	}
	c.logger.WarnContext(ctx, "live gateway poll failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// doRequest performs a single long-poll round trip. The token travels in a
// header so request URLs stay safe to log.
func (c *Client) doRequest(fullURL string) ([]byte, bool, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(gatewayTokenHeader, c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.pollTimeout); err != nil {
		return nil, true, fmt.Errorf("%w: send poll request: %v", errGatewayTransient, err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusNoContent:
		return nil, false, nil
	case status >= 200 && status < 300:
		raw := make([]byte, len(resp.Body()))
		copy(raw, resp.Body())
		return raw, false, nil
	case isRetryableStatus(status):
		return nil, true, fmt.Errorf("%w: gateway status=%d body=%s", errGatewayTransient, status, abbreviateBody(resp.Body()))
	default:
		return nil, false, fmt.Errorf("gateway status=%d body=%s", status, abbreviateBody(resp.Body()))
	}
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
