package wardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/domain/providers"
	"github.com/zatekoja/wardcall/internal/infrastructure/observability"
	"github.com/zatekoja/wardcall/pkg/config"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

const defaultLoginRoute = "/login"

// Requester is the contract accessors depend on
type Requester interface {
	Request(ctx context.Context, endpoint string, opts RequestOptions, out interface{}) error
}

// RequestOptions describes one call. Method defaults to GET.
type RequestOptions struct {
	Method  string
	Body    interface{}
	Headers map[string]string
	// SkipAuth sends the request without a bearer token. A 401 on such a
	// request is an ordinary API error, not a session expiry.
	SkipAuth bool
}

// Client is the only component that talks to the backend API
type Client struct {
	baseURL       string
	httpClient    *http.Client
	session       providers.SessionStore
	notifier      providers.Notifier
	navigator     providers.Navigator
	loginRoute    string
	redirectDelay time.Duration
	afterFunc     func(time.Duration, func())
	metrics       *observability.ClientMetrics
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithScheduler replaces time.AfterFunc for the delayed login redirect
func WithScheduler(afterFunc func(time.Duration, func())) Option {
	return func(c *Client) {
		c.afterFunc = afterFunc
	}
}

// WithMetrics records request metrics on m
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new API client. notifier and navigator may be nil.
func NewClient(cfg *config.APIConfig, session providers.SessionStore, notifier providers.Notifier, navigator providers.Navigator, opts ...Option) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	if session == nil {
		return nil, fmt.Errorf("session store is required")
	}

	loginRoute := cfg.LoginRoute
	if loginRoute == "" {
		loginRoute = defaultLoginRoute
	}

	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		session:       session,
		notifier:      notifier,
		navigator:     navigator,
		loginRoute:    loginRoute,
		redirectDelay: cfg.RedirectDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized base endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs one call against endpoint, relative to the base URL, and
// decodes a JSON response into out. out may be nil when the body is ignored.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, out interface{}) error {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	target := c.resolve(endpoint)
	logger := observability.LoggerFromContext(ctx)

	var token string
	if !opts.SkipAuth {
		var err error
		token, err = c.session.AccessToken(ctx)
		if err != nil {
			return apperrors.NewInternalError("failed to read session", err)
		}
		if token == "" {
			logger.Warn().Str("method", method).Str("endpoint", endpoint).Msg("request without access token")
			c.notify(ctx, entities.NewNotice(entities.NoticeLevelWarning, "Not signed in", "Please sign in to continue."))
			return apperrors.NewUnauthenticatedError("no access token in session")
		}
	}

	var body io.Reader
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	ctx, span := observability.StartSpan(ctx, "wardapi.request")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("url.path", endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apperrors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range opts.Headers {
		if http.CanonicalHeaderKey(key) == "Content-Type" && value == "" {
			continue
		}
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.RecordError(span, err)
		observability.RecordClientRequest(ctx, c.metrics, method, 0, string(apperrors.ErrorTypeTransport), time.Since(start))
		logger.Warn().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("api request failed")
		return apperrors.NewTransportError(fmt.Sprintf("%s %s failed", method, endpoint), err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if err != nil {
		observability.RecordError(span, err)
		observability.RecordClientRequest(ctx, c.metrics, method, resp.StatusCode, string(apperrors.ErrorTypeTransport), duration)
		return apperrors.NewTransportError("failed to read response", err)
	}

	logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("api request")

	if resp.StatusCode == http.StatusUnauthorized && !opts.SkipAuth {
		expired := apperrors.NewSessionExpiredError("session expired")
		observability.RecordError(span, expired)
		observability.RecordClientRequest(ctx, c.metrics, method, resp.StatusCode, string(apperrors.ErrorTypeSessionExpired), duration)
		observability.RecordSessionExpired(ctx, c.metrics)
		c.expireSession(ctx)
		return expired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apperrors.NewAPIError(resp.StatusCode, errorMessage(payload), string(payload))
		observability.RecordError(span, apiErr)
		observability.RecordClientRequest(ctx, c.metrics, method, resp.StatusCode, string(apperrors.ErrorTypeAPI), duration)
		logger.Warn().Str("method", method).Str("endpoint", endpoint).Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("api error response")
		return apiErr
	}

	observability.RecordClientRequest(ctx, c.metrics, method, resp.StatusCode, "ok", duration)

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		observability.RecordError(span, err)
		return apperrors.NewTransportError("failed to decode response", err)
	}
	return nil
}

// resolve joins the base URL and a relative endpoint with exactly one separator
func (c *Client) resolve(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// expireSession clears credentials, tells the user and schedules the login redirect
func (c *Client) expireSession(ctx context.Context) {
	logger := observability.LoggerFromContext(ctx)

	if err := c.session.Clear(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to clear expired session")
	}

	c.notify(ctx, entities.NewNotice(entities.NoticeLevelError, "Session expired", "Your session has expired. Please sign in again."))

	if c.navigator == nil {
		return
	}
	navCtx := context.WithoutCancel(ctx)
	navigate := func() {
		c.navigator.Navigate(navCtx, c.loginRoute)
	}
	if c.redirectDelay <= 0 {
		navigate()
		return
	}
	logger.Info().Dur("delay", c.redirectDelay).Str("route", c.loginRoute).Msg("login redirect scheduled")
	c.afterFunc(c.redirectDelay, navigate)
}

func (c *Client) notify(ctx context.Context, notice entities.Notice) {
	if c.notifier != nil {
		c.notifier.Notify(ctx, notice)
	}
}

// errorMessage extracts a human message from an error body: the JSON
// "message", "error" or "detail" field, else the trimmed text.
func errorMessage(payload []byte) string {
	text := strings.TrimSpace(string(payload))
	if text == "" {
		return ""
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if value, ok := fields[key].(string); ok && value != "" {
				return value
			}
		}
	}
	return text
}
