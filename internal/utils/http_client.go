package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 100 * time.Millisecond
	defaultRetryMaxWait = time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("newsletter-client")
//	resp, err := client.R().SetContext(ctx).Get("http://127.0.0.1:8080/health_check")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client that
//   - sends userAgent as the User-Agent header;
//   - forwards the trace id found in the request context (see WithTraceID)
//     as the X-Trace-ID header;
//   - retries connection errors and 502/503/504 responses of idempotent
//     requests a couple of times with a short backoff. POST is never
//     retried: the first attempt may have committed.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(isTransientResponse).
		OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}

func isTransientResponse(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || !isIdempotent(resp.Request.Method) {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}
