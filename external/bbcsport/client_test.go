package bbcsport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/platform/resilience"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveFetch(kind, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, kind+":"+outcome)
}

func newTestClient(srv *httptest.Server, cfg ClientConfig) *Client {
	cfg.HTTPClient = srv.Client()
	cfg.BaseURL = srv.URL + "/sport/football/"
	cfg.Logger = logging.NewNop()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC) }
	}
	return NewClient(cfg)
}

func TestClientURLs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := newTestClient(srv, ClientConfig{})

	base := srv.URL + "/sport/football"
	if got := client.ScoresURL(0); got != base+"/scores-fixtures" {
		t.Fatalf("unexpected today URL: %s", got)
	}
	if got := client.ScoresURL(-1); got != base+"/scores-fixtures/2025-02-28" {
		t.Fatalf("unexpected yesterday URL: %s", got)
	}
	if got := client.ScoresURL(1); got != base+"/scores-fixtures/2025-03-02" {
		t.Fatalf("unexpected tomorrow URL: %s", got)
	}
	if got := client.TableURL(league.League{Slug: "spanish-la-liga"}); got != base+"/spanish-la-liga/table" {
		t.Fatalf("unexpected table URL: %s", got)
	}
}

func TestClientScoresURLUsesLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	client := newTestClient(srv, ClientConfig{Location: tokyo})

	// 23:30 UTC is already the next day in Tokyo.
	if got := client.ScoresURL(1); !strings.HasSuffix(got, "/scores-fixtures/2025-03-03") {
		t.Fatalf("unexpected URL: %s", got)
	}
}

func TestClientFetchScoresPage(t *testing.T) {
	t.Parallel()

	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`<html><body><h1>Scores</h1></body></html>`))
	}))
	defer srv.Close()

	observer := &recordingObserver{}
	client := newTestClient(srv, ClientConfig{Observer: observer})

	doc, err := client.FetchScoresPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchScoresPage returned error: %v", err)
	}
	if doc.Find("h1").Text() != "Scores" {
		t.Fatalf("unexpected document")
	}
	if gotPath != "/sport/football/scores-fixtures" {
		t.Fatalf("unexpected request path %s", gotPath)
	}
	if !strings.Contains(gotUA, "Chrome") {
		t.Fatalf("expected a browser user agent, got %q", gotUA)
	}
	if len(observer.outcomes) != 1 || observer.outcomes[0] != "scores:success" {
		t.Fatalf("unexpected observations: %v", observer.outcomes)
	}
}

func TestClientFetchErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/missing/table"):
			http.Error(w, "not here", http.StatusNotFound)
		case strings.HasSuffix(r.URL.Path, "/huge/table"):
			_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
		default:
			_, _ = w.Write([]byte(`<html></html>`))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv, ClientConfig{MaxBodyBytes: 1024})
	ctx := context.Background()

	if _, err := client.FetchTablePage(ctx, league.League{Name: "Missing", Slug: "missing"}); err == nil {
		t.Fatalf("expected an error for a 404 response")
	}
	if _, err := client.FetchTablePage(ctx, league.League{Name: "Huge", Slug: "huge"}); err == nil {
		t.Fatalf("expected an error for an oversized body")
	}
	_, err := client.FetchTablePage(ctx, league.League{Name: "No Slug"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a league without slug, got %v", err)
	}
}

func TestClientCircuitOpens(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	observer := &recordingObserver{}
	client := newTestClient(srv, ClientConfig{
		Observer: observer,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Hour,
			HalfOpenMaxReq:   1,
		},
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchScoresPage(ctx, 0); err == nil || errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected a provider error, got %v", i, err)
		}
	}
	_, err := client.FetchScoresPage(ctx, 0)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once the circuit opens, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 2 {
		t.Fatalf("expected the open circuit to skip the request, got %d calls", calls)
	}
	if last := observer.outcomes[len(observer.outcomes)-1]; last != "scores:circuit_open" {
		t.Fatalf("unexpected last observation %q", last)
	}
}
