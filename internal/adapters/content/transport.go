package content

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"hotel_booking/internal/adapters/observability"
)

// retryTransport rate limits every attempt and retries 429 and transient 5xx
// answers with exponential backoff. A Retry-After header overrides the next
// wait. Each attempt is recorded as an external call.
type retryTransport struct {
	next       http.RoundTripper
	limiter    *rate.Limiter
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	endpoint := endpointOf(req.URL.Path)

	var (
		resp *http.Response
		hint time.Duration
	)
	attempt := func() error {
		if err := t.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		start := time.Now()
		r, err := t.next.RoundTrip(req)
		if err != nil {
			observability.ObserveExternal("content", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		observability.ObserveExternal("content", endpoint, r.StatusCode, time.Since(start))
		if !retryable(r.StatusCode) {
			resp = r
			return nil
		}
		hint = retryAfter(r.Header.Get("Retry-After"))
		_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, 4<<10))
		r.Body.Close()
		return fmt.Errorf("content api answered %d", r.StatusCode)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(&hintedBackOff{BackOff: t.newBackOff(), hint: &hint}, t.maxRetries), ctx)
	if err := backoff.Retry(attempt, b); err != nil {
		return nil, err
	}
	return resp, nil
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// hintedBackOff serves a pending server hint once before falling back to the
// wrapped policy.
type hintedBackOff struct {
	backoff.BackOff
	hint *time.Duration
}

func (h *hintedBackOff) NextBackOff() time.Duration {
	d := h.BackOff.NextBackOff()
	if d != backoff.Stop && *h.hint > 0 {
		d, *h.hint = *h.hint, 0
	}
	return d
}

// retryAfter reads Retry-After as seconds or an HTTP date; 0 means no hint.
func retryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(time.Until(at), 0)
	}
	return 0
}

// endpointOf labels "/v1/properties/123" as "properties".
func endpointOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return "other"
	}
	return parts[len(parts)-2]
}
