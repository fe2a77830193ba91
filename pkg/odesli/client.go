// Package odesli is a client for the Odesli (song.link) API. It resolves a
// streaming URL or a platform-specific ID into the equivalent links on every
// other supported platform.
package odesli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

const (
	// BaseURL is the Odesli API host.
	BaseURL = "https://api.song.link"
	// DefaultAPIVersion is the only version currently offered by Odesli.
	DefaultAPIVersion = "v1-alpha.1"
	// LinksEndpoint is the path of the links lookup below the version segment.
	LinksEndpoint = "links"
	// DefaultUserAgent is sent unless WithUserAgent overrides it.
	DefaultUserAgent = "odesli-go/1.0"
)

// Client performs lookups against the links endpoint. It is immutable once
// built and safe for concurrent use.
type Client struct {
	apiKey       string
	baseURL      string
	apiVersion   string
	userCountry  string
	songIfSingle bool
	userAgent    string
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithAPIKey sets the key appended to every request. Without a key requests
// are unauthenticated and subject to the public rate limit.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		c.apiKey = key
		return nil
	}
}

// WithAPIVersion overrides DefaultAPIVersion.
func WithAPIVersion(version string) Option {
	return func(c *Client) error {
		version = strings.Trim(version, "/")
		if version == "" {
			return errors.New("API version must not be empty")
		}
		c.apiVersion = version
		return nil
	}
}

// WithBaseURL points the client at another host, e.g. a stub server in tests.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base URL %q: scheme must be http or https", rawURL)
		}
		c.baseURL = strings.TrimRight(rawURL, "/")
		return nil
	}
}

// WithHTTPClient replaces http.DefaultClient. Timeouts belong on this client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client == nil {
			return errors.New("HTTP client must not be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithUserCountry sets the ISO 3166-1 country used to resolve availability.
func WithUserCountry(country string) Option {
	return func(c *Client) error {
		if country == "" {
			c.userCountry = ""
			return nil
		}
		region, err := language.ParseRegion(country)
		if err != nil || !region.IsCountry() {
			return fmt.Errorf("invalid user country %q", country)
		}
		c.userCountry = region.String()
		return nil
	}
}

// WithSongIfSingle asks Odesli to return the song instead of the album when
// an album link points at a single.
func WithSongIfSingle(enabled bool) Option {
	return func(c *Client) error {
		c.songIfSingle = enabled
		return nil
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) error {
		c.userAgent = userAgent
		return nil
	}
}

// NewClient builds a Client from the defaults and the given options.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    BaseURL,
		apiVersion: DefaultAPIVersion,
		userAgent:  DefaultUserAgent,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Endpoint returns the composed links endpoint URL.
func (c *Client) Endpoint() string {
	return c.baseURL + "/" + c.apiVersion + "/" + LinksEndpoint
}

// GetByURL looks up a song or album by its URL on any supported platform.
func (c *Client) GetByURL(ctx context.Context, entityURL string) (*LinksAPIResult, error) {
	if strings.TrimSpace(entityURL) == "" {
		return nil, errors.New("URL must not be empty")
	}
	params := url.Values{}
	params.Set("url", entityURL)
	return c.get(ctx, params)
}

// GetByID looks up a song or album by its ID on the given platform.
func (c *Client) GetByID(ctx context.Context, id string, platform Platform, entityType EntityType) (*LinksAPIResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("ID must not be empty")
	}
	if !platform.IsValid() {
		return nil, &UnknownPlatformError{Value: platform.String()}
	}
	if !entityType.IsValid() {
		return nil, &UnknownEntityTypeError{Value: entityType.String()}
	}
	params := url.Values{}
	params.Set("id", id)
	params.Set("platform", platform.String())
	params.Set("type", entityType.String())
	return c.get(ctx, params)
}

// get performs exactly one request; it never retries.
func (c *Client) get(ctx context.Context, params url.Values) (*LinksAPIResult, error) {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	if c.userCountry != "" {
		params.Set("userCountry", c.userCountry)
	}
	if c.songIfSingle {
		params.Set("songIfSingle", "true")
	}

	reqURL := c.Endpoint() + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// The body is read in full first so it survives for diagnostics.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result LinksAPIResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ParseError{Err: err, Body: string(body)}
	}
	return &result, nil
}
