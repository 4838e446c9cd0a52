package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/usecase"
	"github.com/sourcegraph/conc/panics"
)

// ScoresReader is the part of the scores pipeline the terminal client needs.
type ScoresReader interface {
	Matches(ctx context.Context, query usecase.MatchQuery) (usecase.MatchesResult, error)
	Table(ctx context.Context, leagueName string) (usecase.TableResult, error)
	Tables(ctx context.Context, leagueNames []string) ([]usecase.TableResult, error)
}

type Options struct {
	League     string
	DateOffset int
	// Table shows standings instead of matches.
	Table bool
}

type App struct {
	scores   ScoresReader
	renderer *Renderer
	logger   *logging.Logger
}

func NewApp(scores ScoresReader, renderer *Renderer, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}
	return &App{scores: scores, renderer: renderer, logger: logger}
}

// ParseDay maps today/yesterday/tomorrow to a date offset.
func ParseDay(day string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "", "today":
		return 0, nil
	case "yesterday":
		return -1, nil
	case "tomorrow":
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown day %q (use today, yesterday or tomorrow)", usecase.ErrInvalidInput, day)
	}
}

// RunOnce fetches and renders one pass. Pipeline failures are rendered and
// returned.
func (a *App) RunOnce(ctx context.Context, opts Options) error {
	if opts.Table {
		return a.tables(ctx, opts)
	}

	result, err := a.scores.Matches(ctx, usecase.MatchQuery{League: opts.League, DateOffset: opts.DateOffset})
	if err != nil {
		a.renderer.Error(err)
		return err
	}
	a.renderer.Matches(result)
	return nil
}

func (a *App) tables(ctx context.Context, opts Options) error {
	if strings.TrimSpace(opts.League) != "" {
		result, err := a.scores.Table(ctx, opts.League)
		if err != nil {
			a.renderer.Error(err)
			return err
		}
		a.renderer.Table(result)
		return nil
	}

	results, err := a.scores.Tables(ctx, nil)
	if err != nil {
		a.renderer.Error(err)
		return err
	}
	for _, result := range results {
		if result.Err != nil {
			a.logger.DebugContext(ctx, "table unavailable", "league", result.League, "error", result.Err)
			continue
		}
		a.renderer.Table(result)
	}
	return nil
}

// Watch re-runs the pass every interval until ctx is cancelled. A panicking
// pass is logged and the loop keeps going.
func (a *App) Watch(ctx context.Context, opts Options, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", usecase.ErrInvalidInput)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.pass(ctx, opts, interval)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (a *App) pass(ctx context.Context, opts Options, interval time.Duration) {
	a.renderer.Clear()
	a.renderer.Updated()

	var catcher panics.Catcher
	catcher.Try(func() {
		_ = a.RunOnce(ctx, opts)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		a.logger.ErrorContext(ctx, "refresh pass panicked", "panic", recovered.Value, "stack", string(recovered.Stack))
		a.renderer.Error(recovered.AsError())
	}

	a.renderer.Next(interval)
}
