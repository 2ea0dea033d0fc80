// Package fetcher retrieves generated image bytes from the URL the image API
// stages them at.
package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/plateful/plateful/internal/logger"
)

// Config holds configuration for the image fetcher.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "plateful/1.0",
		Timeout:   60 * time.Second,
	}
}

// ImageFetcher downloads image payloads over plain HTTP GET. The payload is
// treated as an opaque byte blob; no decoding or validation happens here.
type ImageFetcher struct {
	config Config
}

// New creates a new image fetcher.
func New(cfg Config) *ImageFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &ImageFetcher{config: cfg}
}

// Fetch retrieves the bytes at imageURL. Any transport failure or non-2xx
// status is a hard failure; there is no retry.
func (f *ImageFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	logger.Debug("image fetch starting", "url", imageURL)

	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)
	c.Context = ctx

	var (
		body     []byte
		fetchErr error
	)

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		logger.Debug("image fetch response received",
			"status", r.StatusCode,
			"content_type", r.Headers.Get("Content-Type"),
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error (status %d): %w", status, err)
	})

	if err := c.Visit(imageURL); err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty image response from %s", imageURL)
	}
	return body, nil
}
