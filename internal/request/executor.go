package request

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/erosscans/internal/providers"
	"golang.org/x/time/rate"
)

var _ providers.Executor = (*Executor)(nil)

// Executor performs adapter requests with an http.Client.
type Executor struct {
	client  *http.Client
	limiter *rate.Limiter
	delays  []time.Duration
	log     interface{ Debugf(string, ...any) }
	bytes   *atomic.Int64
}

type Option func(*Executor)

// WithRateLimit caps outgoing requests per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(e *Executor) {
		if rps > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			e.limiter = nil
		}
	}
}

// WithRetryDelays replaces the backoff schedule. An empty schedule means a
// single attempt.
func WithRetryDelays(delays []time.Duration) Option {
	return func(e *Executor) {
		e.delays = delays
	}
}

func WithDebugLogger(l interface{ Debugf(string, ...any) }) Option {
	return func(e *Executor) {
		e.log = l
	}
}

// WithByteCounter adds the size of every successful response body to c.
func WithByteCounter(c *atomic.Int64) Option {
	return func(e *Executor) {
		e.bytes = c
	}
}

func New(client *http.Client, opts ...Option) *Executor {
	if client == nil {
		client = http.DefaultClient
	}

	e := &Executor{
		client: client,
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Executor) Execute(ctx context.Context, req providers.Request) (*providers.Response, error) {
	var logf func(string, ...any)
	if e.log != nil {
		logf = func(format string, args ...any) {
			e.log.Debugf("%s: "+format, append([]any{req.URL}, args...)...)
		}
	}

	return withRetry(ctx, e.delays, logf, func(ctx context.Context) (*providers.Response, error) {
		return e.do(ctx, req)
	})
}

func (e *Executor) do(ctx context.Context, req providers.Request) (*providers.Response, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBuild, err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: req.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL, err)
	}

	if e.bytes != nil {
		e.bytes.Add(int64(len(body)))
	}

	return &providers.Response{Status: resp.StatusCode, Body: body}, nil
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
