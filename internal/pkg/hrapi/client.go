package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-salary-go/internal/config"
	"golang.org/x/oauth2"
)

var (
	ErrUnauthorized = errors.New("hr backend rejected the credentials")
	ErrNoCredential = errors.New("no credential available for the hr backend")
)

// APIError represents a non-2xx answer from the HR backend
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hr backend error [%d] %s: %s", e.StatusCode, e.Path, e.Body)
}

// Client talks to the remote HR backend REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	tokens     oauth2.TokenSource
}

// NewClient creates a client for cfg.BaseURL. tokens is used when the request
// context carries no user bearer token and may be nil.
func NewClient(cfg config.HRAPIConfig, tokens oauth2.TokenSource) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid hr api base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid hr api base url: %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{},
		timeout:    timeout,
		tokens:     tokens,
	}, nil
}

type bearerKey struct{}

// WithBearerToken makes calls made with the returned context act on behalf of the token's user.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerTokenFrom returns the user token stored by WithBearerToken.
func BearerTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey{}).(string)
	return token, ok && token != ""
}

func (c *Client) authorization(ctx context.Context) (string, error) {
	if token, ok := BearerTokenFrom(ctx); ok {
		return "Bearer " + token, nil
	}
	if c.tokens == nil {
		return "", ErrNoCredential
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain service token: %w", err)
	}
	return tok.Type() + " " + tok.AccessToken, nil
}

// getJSON performs a GET and decodes the body with numbers kept as json.Number.
// A call running past the client timeout fails with context.DeadlineExceeded.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	auth, err := c.authorization(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", auth)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call hr backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	slog.Debug("HR backend call", "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnauthorized, path, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(body))}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return payload, nil
}

func dateRange(from, to time.Time) url.Values {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("startDate", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		q.Set("endDate", to.Format("2006-01-02"))
	}
	return q
}
