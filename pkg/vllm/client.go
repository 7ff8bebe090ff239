package vllm

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neurotune/neurotune/pkg/defaults"
	"github.com/neurotune/neurotune/pkg/serializer"
)

// Client scrapes the vLLM metrics endpoint. A zero-value Client is not
// usable; construct with NewClient.
type Client struct {
	metricsURL string
	reader     *serializer.HttpReader
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithScrapeTimeout bounds each scrape request. The default comes from
// pkg/defaults.
func WithScrapeTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.reader = serializer.NewHttpReader(
			serializer.WithTotalTimeout(d),
			serializer.WithUserAgent(scrapeUserAgent),
		)
	}
}

// WithReader replaces the underlying HTTP reader, mainly for tests.
func WithReader(r *serializer.HttpReader) ClientOption {
	return func(c *Client) {
		c.reader = r
	}
}

const scrapeUserAgent = "Neurotune-Monitor/1.0"

// NewClient creates a scrape client for the given metrics URL, typically
// Settings.MetricsURL().
func NewClient(metricsURL string, opts ...ClientOption) *Client {
	c := &Client{
		metricsURL: metricsURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.reader == nil {
		c.reader = serializer.NewHttpReader(
			serializer.WithTotalTimeout(defaults.ScrapeTimeout),
			serializer.WithUserAgent(scrapeUserAgent),
		)
	}

	return c
}

// Scrape fetches the metrics endpoint once and parses the body. There are
// no retries; the monitor's next tick is the retry.
func (c *Client) Scrape(ctx context.Context) (RawCounters, error) {
	start := time.Now()
	defer func() {
		scrapeDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := c.reader.ReadWithContext(ctx, c.metricsURL)
	if err != nil {
		scrapeTotal.WithLabelValues("error").Inc()
		return RawCounters{}, fmt.Errorf("failed to scrape %s: %w", c.metricsURL, err)
	}

	raw, err := ParseCounters(bytes.NewReader(body))
	if err != nil {
		scrapeTotal.WithLabelValues("error").Inc()
		return RawCounters{}, fmt.Errorf("failed to parse metrics from %s: %w", c.metricsURL, err)
	}

	scrapeTotal.WithLabelValues("success").Inc()
	slog.Debug("scraped vllm metrics",
		slog.String("url", c.metricsURL),
		slog.Float64("generation_tokens", raw.GenerationTokens),
		slog.Float64("cache_usage", raw.CacheUsageFraction))

	return raw, nil
}
