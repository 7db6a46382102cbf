// Package wineapi is the client of the remote wine lookup service: name and
// photo search, quiz content and usage statistics.
package wineapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/metrics"
)

// Client defines the remote wine service operations
type Client interface {
	SearchByName(ctx context.Context, name string) (*SearchResult, error)
	SearchByImage(ctx context.Context, image []byte, contentType string) (*SearchResult, error)
	GetQuizQuestions(ctx context.Context, count int) ([]QuizQuestion, error)
	SubmitQuiz(ctx context.Context, submission QuizSubmission) (*QuizReceipt, error)
	GetStats(ctx context.Context) (*Stats, error)
}

// Config holds client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *expirable.LRU[string, SearchResult]

	retryDelay time.Duration
}

// NewClient creates a new wine API client
func NewClient(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		http:       &http.Client{Timeout: cfg.Timeout},
		cache:      expirable.NewLRU[string, SearchResult](cfg.CacheSize, nil, cfg.CacheTTL),
		retryDelay: RetryBaseDelay,
	}
}

func cacheKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (c *client) SearchByName(ctx context.Context, name string) (*SearchResult, error) {
	key := cacheKey(name)
	if key == "" {
		return nil, fmt.Errorf("%w: empty wine name", domain.ErrInvalidInput)
	}

	if cached, ok := c.cache.Get(key); ok {
		metrics.WineAPICache.WithLabelValues(metrics.CacheHit).Inc()
		return &cached, nil
	}
	metrics.WineAPICache.WithLabelValues(metrics.CacheMiss).Inc()

	var result SearchResult
	path := PathSearch + "?" + url.Values{"name": {strings.TrimSpace(name)}}.Encode()
	if err := c.get(ctx, EndpointSearch, path, &result); err != nil {
		return nil, err
	}
	if result.Wines == nil {
		result.Wines = []Wine{}
	}
	result.Query = strings.TrimSpace(name)

	c.cache.Add(key, result)
	return &result, nil
}

func (c *client) SearchByImage(ctx context.Context, image []byte, contentType string) (*SearchResult, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	if len(image) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidInput, MaxImageBytes)
	}

	var result SearchResult
	err := c.do(ctx, EndpointSearchImage, http.MethodPost, PathSearchImage, image, contentType, &result)
	if err != nil {
		return nil, err
	}
	if result.Wines == nil {
		result.Wines = []Wine{}
	}
	return &result, nil
}

func (c *client) GetQuizQuestions(ctx context.Context, count int) ([]QuizQuestion, error) {
	if count <= 0 {
		count = DefaultQuizQuestions
	}
	if count > MaxQuizQuestions {
		count = MaxQuizQuestions
	}

	var questions []QuizQuestion
	path := PathQuizQuestions + "?count=" + strconv.Itoa(count)
	if err := c.get(ctx, EndpointQuiz, path, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *client) SubmitQuiz(ctx context.Context, submission QuizSubmission) (*QuizReceipt, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeRequest, err)
	}

	var receipt QuizReceipt
	if err := c.do(ctx, EndpointQuizSubmit, http.MethodPost, PathQuizSubmit, body, "application/json", &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, EndpointStats, PathStats, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// get performs an idempotent request, retrying server errors with backoff
func (c *client) get(ctx context.Context, endpoint, path string, out any) error {
	var err error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1))
			logger.FromContext(ctx).Info(LogMsgRetrying, "endpoint", endpoint, "attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = c.do(ctx, endpoint, http.MethodGet, path, nil, "", out)
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

func (c *client) do(ctx context.Context, endpoint, method, path string, body []byte, contentType string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.WineAPIRequests.WithLabelValues(endpoint, StatusNetworkError).Inc()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.FromContext(ctx).Warn(LogMsgRequestFailed, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	metrics.WineAPIRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return readAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeResponse, err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
