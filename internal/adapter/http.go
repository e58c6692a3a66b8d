package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/utils"
)

const defaultRequestTimeout = 10 * time.Second

type httpNewsletterAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNewsletterAdapter constructs the HTTP implementation of
// [NewsletterAdapter] for the server at address ("host:port" or a full URL).
// A non-positive timeout falls back to 10s.
func NewHTTPNewsletterAdapter(address string, timeout time.Duration, logger *logger.Logger) (NewsletterAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient("newsletter-client")
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpNewsletterAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNewsletterAdapter) HealthCheck(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health_check")
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNewsletterAdapter) Subscribe(ctx context.Context, name, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"name":  name,
			"email": email,
		}).
		Post("/subscriptions")
	if err != nil {
		return fmt.Errorf("subscribe request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("trace_id", resp.Header().Get(utils.TraceIDHeader)).Msg("subscription rejected")
		return err
	}
	return nil
}

func (h *httpNewsletterAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	return resp.String(), nil
}
