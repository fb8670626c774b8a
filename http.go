package colorwish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerUserAgent     = "User-Agent"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
	bearerPrefix        = "Bearer "
	clientUserAgent     = "colorwish-go/1.0.0"
)

// requestContext tracks one outbound call. The retried flag is single-shot:
// a 401 triggers the unauthorized hook at most once for this request, so the
// hook cannot loop even if a future refresh exchange re-issues the call.
type requestContext struct {
	method    string
	path      string
	requestID string
	retried   bool
}

type bearerKey struct{}

// WithBearer returns a context that forces the given bearer token onto
// requests issued with it, overriding the client's token source. The login
// flow uses it to fetch the profile with a token that has not been committed
// to the session yet.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func bearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey{}).(string)
	return token, ok
}

// doRequest performs an HTTP request and handles common error cases.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	rc := &requestContext{
		method:    method,
		path:      path,
		requestID: uuid.NewString(),
	}
	return c.do(ctx, rc, body, result)
}

func (c *Client) do(ctx context.Context, rc *requestContext, body interface{}, result interface{}) error {
	// Build URL
	reqURL, err := url.JoinPath(c.baseURL, rc.path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	// Handle query params if path contains them
	if strings.Contains(rc.path, "?") {
		reqURL = c.baseURL + rc.path
	}

	// Prepare request body
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, rc.method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set(headerUserAgent, c.userAgent)
	req.Header.Set(headerRequestID, rc.requestID)
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if token, ok := c.requestToken(ctx); ok {
		req.Header.Set(headerAuthorization, bearerPrefix+token)
	}

	// Execute request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Check for errors
	if resp.StatusCode >= 400 {
		apiErr := parseError(resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized && !rc.retried {
			rc.retried = true
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return apiErr
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// requestToken resolves the bearer token for one request: a context override
// wins, otherwise the configured token source is consulted.
func (c *Client) requestToken(ctx context.Context) (string, bool) {
	if token, ok := bearerFromContext(ctx); ok {
		return token, token != ""
	}
	if c.tokens == nil {
		return "", false
	}
	token := c.tokens.Token()
	return token, token != ""
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}
