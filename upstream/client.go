package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"songkick/facade/config"
	"songkick/facade/domain"
)

const (
	searchPath    = "/search"
	calendarPath  = "/calendar"
	trackingsPath = "/trackings"
	untrackPath   = "/trackings/untrack"
)

// Client talks to the Songkick website. Every call issues exactly one
// outbound request with a bounded timeout; errors surface directly as
// domain.UpstreamError or domain.UpstreamFormatError.
type Client struct {
	baseURL    string
	cookies    string
	userAgent  string
	httpClient *http.Client
}

// Ensure Client implements the provider contract
var _ domain.Provider = (*Client)(nil)

// NewClient creates a Songkick client from configuration
func NewClient(cfg *config.SongkickConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		cookies:   cfg.Cookies,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// SearchLocations fetches the location search page and maps its result list
func (c *Client) SearchLocations(ctx context.Context, locationName string) ([]domain.Location, error) {
	params := url.Values{}
	params.Set("utf8", "✓")
	params.Set("type", "locations")
	params.Set("query", locationName)
	params.Set("commit", "Search")

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchPath, params.Encode())

	body, err := c.get(ctx, domain.OpLocationSearch, fullURL)
	if err != nil {
		return nil, err
	}

	return c.parseLocations(body)
}

// ListEvents fetches one page of the tracked-artist calendar
func (c *Client) ListEvents(ctx context.Context, page int) ([]domain.Event, error) {
	params := url.Values{}
	params.Set("filter", "tracked_artist")
	params.Set("page", strconv.Itoa(page))

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, calendarPath, params.Encode())

	body, err := c.get(ctx, domain.OpEvents, fullURL)
	if err != nil {
		return nil, err
	}

	return c.parseEvents(body)
}

// EventDetails fetches a single event page by its absolute URL
func (c *Client) EventDetails(ctx context.Context, eventURL string) (*domain.EventDetails, error) {
	body, err := c.get(ctx, domain.OpEventDetails, eventURL)
	if err != nil {
		return nil, err
	}

	return c.parseEventDetails(body)
}

// TrackLocation posts the tracking form scraped by a location search.
// Returns false when the upstream acknowledged the request but refused it.
func (c *Client) TrackLocation(ctx context.Context, req *domain.TrackLocationRequest) (bool, error) {
	path := trackingsPath
	if req.Untrack {
		path = untrackPath
	}

	form := url.Values{}
	form.Set("utf8", "✓")
	form.Set("authenticity_token", req.AuthenticityToken)
	form.Set("relationship_type", req.RelationshipType)
	form.Set("subject_id", req.SubjectID)
	form.Set("subject_type", req.SubjectType)
	form.Set("success_url", req.SuccessURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return false, &domain.UpstreamError{Op: domain.OpTrackLocation, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, &domain.UpstreamError{Op: domain.OpTrackLocation, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// get performs a single GET request and returns the response body.
// Any transport failure or non-2xx status maps to domain.UpstreamError.
func (c *Client) get(ctx context.Context, op, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	return body, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.cookies != "" {
		req.Header.Set("Cookie", c.cookies)
	}
}
