package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Options configures the retry behavior of the upstream clients.
type Options struct {
	Retries    int
	Timeout    time.Duration
	RetryDelay time.Duration
}

// DefaultOptions matches the documented fetch contract: three attempts,
// five seconds per attempt, one second between retries.
func DefaultOptions() Options {
	return Options{
		Retries:    3,
		Timeout:    5 * time.Second,
		RetryDelay: time.Second,
	}
}

// fetchClient performs bounded-retry, timeout-guarded GETs against one
// upstream base URL. Timeouts are retried; any other failure (connection
// error, non-2xx status, malformed body) aborts immediately. Every terminal
// failure is reported as record absence.
type fetchClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	opts       Options
}

func newFetchClient(baseURL string, opts Options, logger *slog.Logger) fetchClient {
	if opts.Retries <= 0 {
		opts.Retries = 1
	}
	return fetchClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
		opts:       opts,
	}
}

// getJSON fetches baseURL/path and decodes the body into out.
func (c *fetchClient) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + "/" + path

	for attempt := 1; attempt <= c.opts.Retries; attempt++ {
		err := c.attempt(ctx, url, out)
		if err == nil {
			return nil
		}

		if !isTimeout(err) {
			c.logger.Error("request failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("%w: %v", port.ErrRecordNotFound, err)
		}

		c.logger.Warn("request timed out",
			slog.String("url", url),
			slog.Int("attempt", attempt),
			slog.Int("retries", c.opts.Retries),
		)

		if attempt == c.opts.Retries {
			break
		}
		select {
		case <-time.After(c.opts.RetryDelay):
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", port.ErrRecordNotFound, ctx.Err())
		}
	}

	return fmt.Errorf("%w: GET %s timed out after %d attempts", port.ErrRecordNotFound, url, c.opts.Retries)
}

func (c *fetchClient) attempt(ctx context.Context, url string, out any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// isTimeout reports whether err is a per-attempt deadline or network timeout,
// the only retryable failure class.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
