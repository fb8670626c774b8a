package colorwish

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default ColorWish API endpoint.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// TokenSource supplies the bearer token attached to outgoing requests.
// Implementations return the empty string when no credential is available.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to the TokenSource interface.
type TokenSourceFunc func() string

// Token returns f().
func (f TokenSourceFunc) Token() string { return f() }

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token() string { return string(s) }

// Client is the ColorWish API client.
//
// Every request goes through a single chokepoint that attaches the current
// bearer token and inspects the response for authorization failure, so call
// sites never duplicate that logic. Use NewClient to create one:
//
//	client := colorwish.NewClient("https://api.colorwish.app")
type Client struct {
	baseURL        string
	httpClient     *http.Client
	userAgent      string
	tokens         TokenSource
	onUnauthorized func()

	// Services
	Auth    *AuthService
	Catalog *CatalogService
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTokenSource sets the source of the bearer token attached to every
// request. A session manager is the usual implementation:
//
//	mgr := session.NewManager(session.Config{Storage: store})
//	client := colorwish.NewClient(baseURL,
//	    colorwish.WithTokenSource(mgr),
//	    colorwish.WithUnauthorizedHook(mgr.Expire))
//	mgr.Attach(client)
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUnauthorizedHook installs a hook invoked when any response comes back
// 401. The hook fires at most once per request and regardless of whether the
// caller handles the returned error; the original call still fails with the
// 401. There is no token refresh exchange.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// NewClient creates a new ColorWish API client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   baseURL,
		userAgent: clientUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Catalog = &CatalogService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
