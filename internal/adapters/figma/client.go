package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/observability"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// DefaultBaseURL is the production REST endpoint of the design API.
const DefaultBaseURL = "https://api.figma.com/v1"

// APIError carries the status and message of a failed API call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("figma api error %d: %s", e.Status, e.Message)
}

// Client implements ports.DesignSource against the Figma REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	oauthToken string
	logger     *slog.Logger
	cache      ports.DocumentCache
	devLog     *DevLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCache enables raw-document caching.
func WithCache(cache ports.DocumentCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDevLogger dumps raw responses to disk for inspection.
func WithDevLogger(devLog *DevLogger) Option {
	return func(c *Client) {
		c.devLog = devLog
	}
}

// New creates a Client. The OAuth token wins when both credentials are set.
func New(apiKey, oauthToken string, opts ...Option) (*Client, error) {
	if apiKey == "" && oauthToken == "" {
		return nil, domain.ErrMissingAuth
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		oauthToken: oauthToken,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetFile retrieves a whole file document.
func (c *Client) GetFile(ctx context.Context, fileKey string, depth int) (map[string]any, error) {
	query := url.Values{}
	if depth > 0 {
		query.Set("depth", strconv.Itoa(depth))
	}
	cacheKey := fmt.Sprintf("file:%s:depth=%d", fileKey, depth)

	doc, err := c.cachedRequest(ctx, "/files/"+fileKey, query, cacheKey)
	if err != nil {
		return nil, err
	}
	c.devLog.Dump(fileKey+"_raw_file.yml", doc)
	return doc, nil
}

// GetNodes retrieves a subset of nodes from a file.
func (c *Client) GetNodes(ctx context.Context, fileKey string, nodeIDs []string, depth int) (map[string]any, error) {
	ids := strings.Join(nodeIDs, ",")
	query := url.Values{"ids": {ids}}
	if depth > 0 {
		query.Set("depth", strconv.Itoa(depth))
	}
	cacheKey := fmt.Sprintf("nodes:%s:%s:depth=%d", fileKey, ids, depth)

	doc, err := c.cachedRequest(ctx, "/files/"+fileKey+"/nodes", query, cacheKey)
	if err != nil {
		return nil, err
	}
	c.devLog.Dump(fileKey+"_nodes_raw.yml", doc)
	return doc, nil
}

// GetImageURLs renders nodes and returns their temporary download URLs.
func (c *Client) GetImageURLs(ctx context.Context, fileKey string, nodeIDs []string, format string, scale float64) (map[string]string, error) {
	if len(nodeIDs) == 0 {
		return map[string]string{}, nil
	}
	query := url.Values{
		"ids":    {strings.Join(nodeIDs, ",")},
		"format": {format},
	}
	if format == "png" && scale > 0 {
		query.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	}

	doc, err := c.request(ctx, "/images/"+fileKey, query)
	if err != nil {
		return nil, err
	}
	return stringMap(doc["images"]), nil
}

// GetImageFillURLs returns imageRef -> download URL for the file's fills.
func (c *Client) GetImageFillURLs(ctx context.Context, fileKey string) (map[string]string, error) {
	doc, err := c.request(ctx, "/files/"+fileKey+"/images", nil)
	if err != nil {
		return nil, err
	}
	meta, _ := doc["meta"].(map[string]any)
	return stringMap(meta["images"]), nil
}

// cachedRequest serves from the document cache when one is configured,
// falling back to a live request and populating the cache on the way out.
func (c *Client) cachedRequest(ctx context.Context, endpoint string, query url.Values, cacheKey string) (map[string]any, error) {
	if c.cache != nil {
		data, err := c.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			observability.ObserveCacheLookup(true)
			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err == nil {
				c.logger.Debug("serving document from cache", "key", cacheKey)
				return doc, nil
			}
			c.logger.Warn("discarding undecodable cache entry", "key", cacheKey)
		case errors.Is(err, domain.ErrCacheMiss):
			observability.ObserveCacheLookup(false)
		default:
			c.logger.Warn("cache lookup failed", "key", cacheKey, "err", err)
		}
	}

	doc, err := c.request(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(doc); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data); err != nil {
				c.logger.Warn("cache store failed", "key", cacheKey, "err", err)
			}
		}
	}
	return doc, nil
}

func (c *Client) request(ctx context.Context, endpoint string, query url.Values) (map[string]any, error) {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.oauthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.oauthToken)
	} else {
		req.Header.Set("X-Figma-Token", c.apiKey)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveAPIRequest(endpoint, "error", time.Since(start))
		c.logger.Error("api request failed", "endpoint", endpoint, "requestId", requestID, "err", err)
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	observability.ObserveAPIRequest(endpoint, strconv.Itoa(resp.StatusCode), elapsed)
	c.logger.Debug("api request completed",
		"endpoint", endpoint, "requestId", requestID,
		"status", resp.StatusCode, "elapsed", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiErrorFromBody(resp.StatusCode, body)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return doc, nil
}

// apiErrorFromBody prefers the API's own error fields over the raw body.
func apiErrorFromBody(statusCode int, body []byte) *APIError {
	apiErr := &APIError{Status: statusCode, Message: strings.TrimSpace(string(body))}

	var parsed struct {
		Err     string `json:"err"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Err != "" {
			apiErr.Message = parsed.Err
		} else if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		if parsed.Status != 0 {
			apiErr.Status = parsed.Status
		}
	}
	return apiErr
}

func stringMap(v any) map[string]string {
	out := map[string]string{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for key, value := range m {
		if s, okS := value.(string); okS {
			out[key] = s
		}
	}
	return out
}
