package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	MaxDateOffset = 7

	ExtractionKindScores = "scores"
	ExtractionKindTable  = "table"
	// StrategyNone is reported when every strategy came back empty.
	StrategyNone = "none"

	defaultTableWorkers = 4
)

// PageFetcher downloads provider pages. Implementations decide transport,
// headers and timeouts.
type PageFetcher interface {
	FetchScoresPage(ctx context.Context, dateOffset int) (*goquery.Document, error)
	FetchTablePage(ctx context.Context, l league.League) (*goquery.Document, error)
}

// Extractor reads records out of a fetched page. Every method returns either
// records or an error; an error only means "try the next strategy".
type Extractor interface {
	MatchesFromJSON(doc *goquery.Document) ([]fixture.Match, error)
	MatchesFromContainers(doc *goquery.Document) ([]fixture.Match, error)
	MatchesFromText(doc *goquery.Document) ([]fixture.Match, error)
	TableFromJSON(doc *goquery.Document, l league.League) (standing.Table, error)
	TableFromCSSPatterns(doc *goquery.Document, l league.League) (standing.Table, error)
	TableFromHTML(doc *goquery.Document, l league.League) (standing.Table, error)
}

// ExtractionObserver records which strategy produced a result.
type ExtractionObserver interface {
	ObserveExtraction(kind, strategy string)
	ObserveMatches(leagueName string, count int)
}

type ScoresServiceConfig struct {
	// TableWorkers bounds concurrent table fetches in Tables.
	TableWorkers int
}

type MatchQuery struct {
	// League filters by canonical name, slug or synonym; empty means all leagues.
	League     string
	DateOffset int
}

// LeagueMatches groups one league's matches.
type LeagueMatches struct {
	League  string          `json:"league"`
	Matches []fixture.Match `json:"matches"`
}

type MatchesResult struct {
	DateOffset int             `json:"date_offset"`
	Strategy   string          `json:"strategy"`
	Leagues    []LeagueMatches `json:"leagues"`
}

// MatchCount is the number of matches across all leagues.
func (r MatchesResult) MatchCount() int {
	total := 0
	for _, l := range r.Leagues {
		total += len(l.Matches)
	}
	return total
}

type TableResult struct {
	League   string         `json:"league"`
	Strategy string         `json:"strategy,omitempty"`
	Table    standing.Table `json:"table"`
	Err      error          `json:"-"`
}

type LeagueOverview struct {
	League     string          `json:"league"`
	DateOffset int             `json:"date_offset"`
	Matches    []fixture.Match `json:"matches"`
	Table      *standing.Table `json:"table,omitempty"`
}

type matchStrategy struct {
	name    string
	extract func(doc *goquery.Document) ([]fixture.Match, error)
}

type tableStrategy struct {
	name    string
	extract func(doc *goquery.Document, l league.League) (standing.Table, error)
}

// ScoresService runs the extraction pipeline: fetch a page, then try each
// strategy in order and keep the first one that yields records.
type ScoresService struct {
	registry  *league.Registry
	fetcher   PageFetcher
	validator *fixture.Validator
	observer  ExtractionObserver
	cfg       ScoresServiceConfig
	logger    *logging.Logger

	matchStrategies []matchStrategy
	tableStrategies []tableStrategy
}

func NewScoresService(
	registry *league.Registry,
	fetcher PageFetcher,
	extractor Extractor,
	observer ExtractionObserver,
	cfg ScoresServiceConfig,
	logger *logging.Logger,
) *ScoresService {
	if registry == nil || fetcher == nil || extractor == nil {
		panic("usecase: scores service requires a registry, a fetcher and an extractor")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.TableWorkers <= 0 {
		cfg.TableWorkers = defaultTableWorkers
	}

	return &ScoresService{
		registry:  registry,
		fetcher:   fetcher,
		validator: fixture.NewValidator(registry),
		observer:  observer,
		cfg:       cfg,
		logger:    logger,
		matchStrategies: []matchStrategy{
			{name: "json", extract: extractor.MatchesFromJSON},
			{name: "containers", extract: extractor.MatchesFromContainers},
			{name: "text", extract: extractor.MatchesFromText},
		},
		tableStrategies: []tableStrategy{
			{name: "json", extract: extractor.TableFromJSON},
			{name: "css_patterns", extract: extractor.TableFromCSSPatterns},
			{name: "html_table", extract: extractor.TableFromHTML},
		},
	}
}

func (s *ScoresService) Registry() *league.Registry {
	return s.registry
}

// ResolveLeague accepts a canonical name, slug or synonym.
func (s *ScoresService) ResolveLeague(name string) (league.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return league.League{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}
	l, ok := s.registry.Resolve(name)
	if !ok {
		return league.League{}, fmt.Errorf("%w: league %q is not tracked", ErrNotFound, name)
	}
	return l, nil
}

// Matches returns the day's matches grouped by league in registry order.
func (s *ScoresService) Matches(ctx context.Context, query MatchQuery) (MatchesResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoresService.Matches")
	defer span.End()

	if query.DateOffset < -MaxDateOffset || query.DateOffset > MaxDateOffset {
		return MatchesResult{}, fmt.Errorf("%w: date offset must be within -%d..%d", ErrInvalidInput, MaxDateOffset, MaxDateOffset)
	}
	filter := ""
	if strings.TrimSpace(query.League) != "" {
		l, err := s.ResolveLeague(query.League)
		if err != nil {
			return MatchesResult{}, err
		}
		filter = l.Name
	}

	doc, err := s.fetcher.FetchScoresPage(ctx, query.DateOffset)
	if err != nil {
		return MatchesResult{}, s.fetchFailure(ctx, "scores", err)
	}

	strategy, matches := s.extractMatches(ctx, doc)
	s.observeExtraction(ExtractionKindScores, strategy)

	result := MatchesResult{
		DateOffset: query.DateOffset,
		Strategy:   strategy,
		Leagues:    s.groupByLeague(matches, filter),
	}
	for _, group := range result.Leagues {
		if s.observer != nil {
			s.observer.ObserveMatches(group.League, len(group.Matches))
		}
	}
	if len(result.Leagues) == 0 {
		if filter != "" {
			return MatchesResult{}, fmt.Errorf("%w: no %s matches for date offset %d", ErrNoData, filter, query.DateOffset)
		}
		return MatchesResult{}, fmt.Errorf("%w: no tracked matches for date offset %d", ErrNoData, query.DateOffset)
	}
	return result, nil
}

// Table fetches and extracts one league's standings.
func (s *ScoresService) Table(ctx context.Context, leagueName string) (TableResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoresService.Table")
	defer span.End()

	l, err := s.ResolveLeague(leagueName)
	if err != nil {
		return TableResult{}, err
	}
	result := s.table(ctx, l)
	if result.Err != nil {
		return TableResult{}, result.Err
	}
	return result, nil
}

// Overview fetches a league's matches and table concurrently. A partial result
// is returned when only one side has data.
func (s *ScoresService) Overview(ctx context.Context, leagueName string, dateOffset int) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoresService.Overview")
	defer span.End()

	l, err := s.ResolveLeague(leagueName)
	if err != nil {
		return LeagueOverview{}, err
	}

	var (
		matches    MatchesResult
		matchesErr error
		table      TableResult
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		matches, matchesErr = s.Matches(ctx, MatchQuery{League: l.Name, DateOffset: dateOffset})
	})
	wg.Go(func() {
		table = s.table(ctx, l)
	})
	wg.Wait()

	if matchesErr != nil && !crerr.Is(matchesErr, ErrNoData) {
		return LeagueOverview{}, matchesErr
	}
	if table.Err != nil && !crerr.Is(table.Err, ErrNoData) {
		return LeagueOverview{}, table.Err
	}
	if matchesErr != nil && table.Err != nil {
		return LeagueOverview{}, fmt.Errorf("%w: nothing available for %s", ErrNoData, l.Name)
	}

	overview := LeagueOverview{League: l.Name, DateOffset: dateOffset, Matches: []fixture.Match{}}
	for _, group := range matches.Leagues {
		if group.League == l.Name {
			overview.Matches = group.Matches
		}
	}
	if table.Err == nil {
		t := table.Table
		overview.Table = &t
	}
	return overview, nil
}

func (s *ScoresService) fetchFailure(ctx context.Context, kind string, err error) error {
	if crerr.Is(err, ErrDependencyUnavailable) || crerr.Is(err, ErrInvalidInput) {
		return err
	}
	s.logger.WarnContext(ctx, "page fetch failed", "kind", kind, "error", err)
	return fmt.Errorf("%w: %s page unavailable", ErrNoData, kind)
}

// extractMatches runs the fixture strategies in order. Records that break the
// Match invariants are dropped; a strategy counts only if something survives.
func (s *ScoresService) extractMatches(ctx context.Context, doc *goquery.Document) (string, []fixture.Match) {
	for _, strategy := range s.matchStrategies {
		matches, err := strategy.extract(doc)
		if err != nil {
			s.logStrategyMiss(ctx, ExtractionKindScores, strategy.name, "", err)
			continue
		}
		valid := make([]fixture.Match, 0, len(matches))
		for _, m := range matches {
			if err := s.validator.Validate(m); err != nil {
				s.logger.WarnContext(ctx, "drop invalid match", "strategy", strategy.name, "home", m.HomeTeam, "away", m.AwayTeam, "error", err)
				continue
			}
			valid = append(valid, m)
		}
		if len(valid) > 0 {
			return strategy.name, valid
		}
	}
	return StrategyNone, nil
}

func (s *ScoresService) table(ctx context.Context, l league.League) TableResult {
	result := TableResult{League: l.Name}
	doc, err := s.fetcher.FetchTablePage(ctx, l)
	if err != nil {
		result.Err = s.fetchFailure(ctx, "table", err)
		return result
	}

	for _, strategy := range s.tableStrategies {
		table, err := strategy.extract(doc, l)
		if err != nil {
			s.logStrategyMiss(ctx, ExtractionKindTable, strategy.name, l.Name, err)
			continue
		}
		if table.IsEmpty() {
			continue
		}
		s.observeExtraction(ExtractionKindTable, strategy.name)
		result.Strategy = strategy.name
		result.Table = table
		return result
	}

	s.observeExtraction(ExtractionKindTable, StrategyNone)
	result.Err = fmt.Errorf("%w: no table for %s", ErrNoData, l.Name)
	return result
}

func (s *ScoresService) logStrategyMiss(ctx context.Context, kind, strategy, leagueName string, err error) {
	if crerr.Is(err, ErrMalformedPayload) {
		s.logger.WarnContext(ctx, "malformed provider payload", "kind", kind, "strategy", strategy, "league", leagueName, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "strategy yielded nothing", "kind", kind, "strategy", strategy, "league", leagueName, "error", err)
}

// groupByLeague orders groups by registry order. A non-empty filter keeps only
// that league.
func (s *ScoresService) groupByLeague(matches []fixture.Match, filter string) []LeagueMatches {
	byLeague := make(map[string][]fixture.Match)
	for _, m := range matches {
		if filter != "" && m.League != filter {
			continue
		}
		byLeague[m.League] = append(byLeague[m.League], m)
	}

	out := make([]LeagueMatches, 0, len(byLeague))
	for _, name := range s.registry.Names() {
		if items, ok := byLeague[name]; ok {
			out = append(out, LeagueMatches{League: name, Matches: items})
		}
	}
	return out
}

func (s *ScoresService) observeExtraction(kind, strategy string) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveExtraction(kind, strategy)
}
