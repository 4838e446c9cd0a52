package bbcsport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/platform/resilience"
	"github.com/riskibarqy/football-scores/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL      = "https://www.bbc.co.uk/sport/football"
	defaultUserAgent    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 8 << 20

	FetchKindScores = "scores"
	FetchKindTable  = "table"
)

var errTransient = crerr.New("bbc sport transient failure")

// FetchObserver records fetch outcomes.
type FetchObserver interface {
	ObserveFetch(kind, outcome string, elapsed time.Duration)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxBodyBytes   int64
	Location       *time.Location
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
	Observer       FetchObserver
	Now            func() time.Time
}

// Client downloads scores and table pages and parses them into documents.
// Failed fetches are not retried.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	maxBodyBytes int64
	location     *time.Location
	logger       *logging.Logger
	breaker      *resilience.Breaker
	observer     FetchObserver
	now          func() time.Time
	flight       singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		userAgent:    userAgent,
		maxBodyBytes: maxBody,
		location:     location,
		logger:       logger,
		breaker:      resilience.NewBreaker(cfg.CircuitBreaker),
		observer:     cfg.Observer,
		now:          now,
	}
}

// ScoresURL returns the fixtures page for today shifted by dateOffset days.
func (c *Client) ScoresURL(dateOffset int) string {
	if dateOffset == 0 {
		return c.baseURL + "/scores-fixtures"
	}
	day := c.now().In(c.location).AddDate(0, 0, dateOffset)
	return c.baseURL + "/scores-fixtures/" + day.Format("2006-01-02")
}

func (c *Client) TableURL(l league.League) string {
	return c.baseURL + "/" + strings.Trim(l.Slug, "/") + "/table"
}

func (c *Client) FetchScoresPage(ctx context.Context, dateOffset int) (*goquery.Document, error) {
	return c.fetchDocument(ctx, FetchKindScores, c.ScoresURL(dateOffset))
}

func (c *Client) FetchTablePage(ctx context.Context, l league.League) (*goquery.Document, error) {
	if strings.TrimSpace(l.Slug) == "" {
		return nil, fmt.Errorf("%w: league %q has no slug", usecase.ErrInvalidInput, l.Name)
	}
	return c.fetchDocument(ctx, FetchKindTable, c.TableURL(l))
}

func (c *Client) fetchDocument(ctx context.Context, kind, fullURL string) (*goquery.Document, error) {
	start := c.now()
	raw, err := c.fetch(ctx, fullURL)
	if err != nil {
		outcome := "error"
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			outcome = "circuit_open"
			c.logger.WarnContext(ctx, "bbc sport circuit breaker rejected request", "url", fullURL, "state", c.breaker.State())
			err = crerr.Wrapf(usecase.ErrDependencyUnavailable, "bbc sport is temporarily unavailable")
		} else {
			c.logger.WarnContext(ctx, "bbc sport request failed", "url", fullURL, "error", err)
		}
		c.observe(kind, outcome, start)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		c.observe(kind, "parse_error", start)
		return nil, malformed(err, "parse page")
	}
	c.observe(kind, "success", start)
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, fullURL string) ([]byte, error) {
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(ctx, func(ctx context.Context) error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return raw, execErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, c.maxBodyBytes+1)); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}
	if int64(buf.Len()) > c.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
		if isRetryableStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errTransient)
		}
		return nil, statusErr
	}

	return append([]byte(nil), buf.B...), nil
}

func (c *Client) setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("DNT", "1")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
	req.Header.Set("sec-ch-ua", `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`)
	req.Header.Set("sec-ch-ua-mobile", "?0")
	req.Header.Set("sec-ch-ua-platform", `"Linux"`)
}

func (c *Client) observe(kind, outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveFetch(kind, outcome, c.now().Sub(start))
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 200
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
