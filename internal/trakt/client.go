package trakt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/showtrack/internal/media"
)

// Detailer looks up extended show metadata and seasons.
// This interface is implemented by *Client and can be used for testing.
type Detailer interface {
	Detail(ctx context.Context, imdbID string) (media.ShowDetails, []media.SeasonInfo, error)
}

// Ensure Client implements Detailer at compile time.
var _ Detailer = (*Client)(nil)

// APIError reports a non-success HTTP status from the API.
type APIError struct {
	Path       string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// Client talks to the Trakt HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	userAgent string
}

const (
	defaultBaseURL   = "https://api.trakt.tv"
	defaultUserAgent = "showtrack/0.1"
	apiVersion       = "2"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL and API key (the Trakt client id).
func NewClient(baseURL, apiKey string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:    strings.TrimSpace(apiKey),
		userAgent: defaultUserAgent,
	}, nil
}

// Detail fetches the extended show record and its season list.
func (c *Client) Detail(ctx context.Context, imdbID string) (media.ShowDetails, []media.SeasonInfo, error) {
	if c == nil {
		return media.ShowDetails{}, nil, fmt.Errorf("client is nil")
	}
	id := strings.TrimSpace(imdbID)
	if id == "" {
		return media.ShowDetails{}, nil, fmt.Errorf("show id required")
	}

	var show ShowResponse
	if err := c.get(ctx, "/shows/"+url.PathEscape(id), &show); err != nil {
		return media.ShowDetails{}, nil, fmt.Errorf("fetch show %s: %w", id, err)
	}

	var seasons []SeasonResponse
	if err := c.get(ctx, "/shows/"+url.PathEscape(id)+"/seasons", &seasons); err != nil {
		return media.ShowDetails{}, nil, fmt.Errorf("fetch seasons %s: %w", id, err)
	}

	infos := make([]media.SeasonInfo, 0, len(seasons))
	for _, s := range seasons {
		infos = append(infos, s.Info())
	}
	return show.Details(), infos, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	values := url.Values{}
	values.Set("extended", "full")
	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	return c.doURL(ctx, http.MethodGet, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("trakt-api-version", apiVersion)
	if c.apiKey != "" {
		req.Header.Set("trakt-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &APIError{Path: rel.Path, StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
