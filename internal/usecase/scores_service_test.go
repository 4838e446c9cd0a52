package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
	usecasemock "github.com/riskibarqy/football-scores/internal/mocks/usecase"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

var errAbsent = errors.New("nothing here")

func emptyDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func finished(leagueName, home, away string, homeScore, awayScore int) fixture.Match {
	return fixture.Match{
		League:      leagueName,
		HomeTeam:    home,
		AwayTeam:    away,
		HomeScore:   homeScore,
		AwayScore:   awayScore,
		Status:      fixture.StatusFinished,
		HomeScorers: []string{},
		AwayScorers: []string{},
		HomeCards:   []string{},
		AwayCards:   []string{},
	}
}

func newTestScoresService(fetcher PageFetcher, extractor Extractor, observer ExtractionObserver) *ScoresService {
	return NewScoresService(league.Default(), fetcher, extractor, observer, ScoresServiceConfig{TableWorkers: 3}, logging.NewNop())
}

func TestScoresService_Matches_JSONStrategyGroupsByRegistryOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)
	observer := usecasemock.NewExtractionObserver(t)

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(doc, nil).Once()
	extractor.On("MatchesFromJSON", doc).Return([]fixture.Match{
		finished("La Liga", "Real Madrid", "Barcelona", 2, 1),
		finished("Premier League", "Arsenal", "Chelsea", 3, 1),
		finished("Premier League", "Everton", "Fulham", 0, 0),
	}, nil).Once()
	observer.On("ObserveExtraction", ExtractionKindScores, "json").Once()
	observer.On("ObserveMatches", "Premier League", 2).Once()
	observer.On("ObserveMatches", "La Liga", 1).Once()

	service := newTestScoresService(fetcher, extractor, observer)
	got, err := service.Matches(ctx, MatchQuery{})
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if got.Strategy != "json" {
		t.Fatalf("unexpected strategy: %s", got.Strategy)
	}
	if len(got.Leagues) != 2 || got.Leagues[0].League != "Premier League" || got.Leagues[1].League != "La Liga" {
		t.Fatalf("unexpected league grouping: %+v", got.Leagues)
	}
	if got.MatchCount() != 3 {
		t.Fatalf("unexpected match count: %d", got.MatchCount())
	}
}

func TestScoresService_Matches_FallsBackPastInvalidRecords(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	invalid := finished("Scottish Premiership", "Celtic", "Rangers", 1, 0)
	negative := finished("Premier League", "Arsenal", "Chelsea", -1, 0)

	fetcher.On("FetchScoresPage", mock.Anything, -1).Return(doc, nil).Once()
	extractor.On("MatchesFromJSON", doc).Return(nil, crerr.Mark(errAbsent, ErrMalformedPayload)).Once()
	extractor.On("MatchesFromContainers", doc).Return([]fixture.Match{invalid, negative}, nil).Once()
	extractor.On("MatchesFromText", doc).Return([]fixture.Match{finished("Serie A", "Napoli", "Inter Milan", 1, 1)}, nil).Once()

	service := newTestScoresService(fetcher, extractor, nil)
	got, err := service.Matches(context.Background(), MatchQuery{DateOffset: -1})
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if got.Strategy != "text" || got.DateOffset != -1 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(got.Leagues) != 1 || got.Leagues[0].League != "Serie A" {
		t.Fatalf("unexpected leagues: %+v", got.Leagues)
	}
}

func TestScoresService_Matches_LeagueFilter(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(doc, nil).Twice()
	extractor.On("MatchesFromJSON", doc).Return([]fixture.Match{
		finished("La Liga", "Real Madrid", "Barcelona", 2, 1),
		finished("Premier League", "Arsenal", "Chelsea", 3, 1),
	}, nil).Twice()

	service := newTestScoresService(fetcher, extractor, nil)
	got, err := service.Matches(context.Background(), MatchQuery{League: "epl"})
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(got.Leagues) != 1 || got.Leagues[0].League != "Premier League" {
		t.Fatalf("filter not applied: %+v", got.Leagues)
	}

	_, err = service.Matches(context.Background(), MatchQuery{League: "Bundesliga"})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for a league without matches, got %v", err)
	}
}

func TestScoresService_Matches_RejectsBadQueries(t *testing.T) {
	t.Parallel()

	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)
	service := newTestScoresService(fetcher, extractor, nil)

	if _, err := service.Matches(context.Background(), MatchQuery{DateOffset: 9}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := service.Matches(context.Background(), MatchQuery{League: "Eredivisie"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoresService_Matches_FetchFailures(t *testing.T) {
	t.Parallel()

	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(nil, errors.New("dial tcp: timeout")).Once()
	fetcher.On("FetchScoresPage", mock.Anything, 1).
		Return(nil, crerr.Wrap(ErrDependencyUnavailable, "circuit open")).
		Once()

	service := newTestScoresService(fetcher, extractor, nil)

	_, err := service.Matches(context.Background(), MatchQuery{})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("transport failure should surface as ErrNoData, got %v", err)
	}
	if strings.Contains(err.Error(), "dial tcp") {
		t.Fatalf("transport detail leaked to the caller: %v", err)
	}

	_, err = service.Matches(context.Background(), MatchQuery{DateOffset: 1})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestScoresService_Matches_NoStrategySucceeds(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)
	observer := usecasemock.NewExtractionObserver(t)

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(doc, nil).Once()
	extractor.On("MatchesFromJSON", doc).Return(nil, errAbsent).Once()
	extractor.On("MatchesFromContainers", doc).Return(nil, errAbsent).Once()
	extractor.On("MatchesFromText", doc).Return([]fixture.Match{}, nil).Once()
	observer.On("ObserveExtraction", ExtractionKindScores, StrategyNone).Once()

	service := newTestScoresService(fetcher, extractor, observer)
	_, err := service.Matches(context.Background(), MatchQuery{})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestScoresService_Table_FallbackChain(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)
	observer := usecasemock.NewExtractionObserver(t)

	isLaLiga := mock.MatchedBy(func(l league.League) bool { return l.Name == "La Liga" })
	want := standing.Table{League: "La Liga", Rows: []standing.TableRow{{Position: 1, Team: "Barcelona", Points: 30, Form: []string{}}}}

	fetcher.On("FetchTablePage", mock.Anything, isLaLiga).Return(doc, nil).Once()
	extractor.On("TableFromJSON", doc, isLaLiga).Return(standing.Table{}, errAbsent).Once()
	extractor.On("TableFromCSSPatterns", doc, isLaLiga).Return(standing.Table{League: "La Liga"}, nil).Once()
	extractor.On("TableFromHTML", doc, isLaLiga).Return(want, nil).Once()
	observer.On("ObserveExtraction", ExtractionKindTable, "html_table").Once()

	service := newTestScoresService(fetcher, extractor, observer)
	got, err := service.Table(context.Background(), "spanish-la-liga")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if got.Strategy != "html_table" || got.League != "La Liga" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if len(got.Table.Rows) != 1 || got.Table.Rows[0].Team != "Barcelona" {
		t.Fatalf("unexpected rows: %+v", got.Table.Rows)
	}
}

func TestScoresService_Tables_IndependentLeagues(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	isMLS := mock.MatchedBy(func(l league.League) bool { return l.Name == "MLS" })
	notMLS := mock.MatchedBy(func(l league.League) bool { return l.Name != "MLS" })

	fetcher.On("FetchTablePage", mock.Anything, isMLS).Return(nil, errors.New("connection reset")).Once()
	fetcher.On("FetchTablePage", mock.Anything, notMLS).Return(doc, nil)
	extractor.On("TableFromJSON", doc, notMLS).Return(func(_ *goquery.Document, l league.League) (standing.Table, error) {
		return standing.Table{League: l.Name, Rows: []standing.TableRow{{Position: 1, Team: l.Roster.Teams[0], Form: []string{}}}}, nil
	})

	service := newTestScoresService(fetcher, extractor, nil)
	results, err := service.Tables(context.Background(), nil)
	if err != nil {
		t.Fatalf("tables: %v", err)
	}

	names := league.Default().Names()
	if len(results) != len(names) {
		t.Fatalf("unexpected result count: got=%d want=%d", len(results), len(names))
	}
	for i, result := range results {
		if result.League != names[i] {
			t.Fatalf("result %d out of order: got=%s want=%s", i, result.League, names[i])
		}
		if result.League == "MLS" {
			if !errors.Is(result.Err, ErrNoData) {
				t.Fatalf("expected ErrNoData for MLS, got %v", result.Err)
			}
			continue
		}
		if result.Err != nil || result.Table.League != result.League {
			t.Fatalf("unexpected table for %s: %+v", result.League, result)
		}
	}
}

func TestScoresService_Tables_UnknownLeague(t *testing.T) {
	t.Parallel()

	service := newTestScoresService(usecasemock.NewPageFetcher(t), usecasemock.NewExtractor(t), nil)
	if _, err := service.Tables(context.Background(), []string{"Premier League", "Eredivisie"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoresService_Overview_PartialResult(t *testing.T) {
	t.Parallel()

	scoresDoc := emptyDoc(t)
	tableDoc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	isPL := mock.MatchedBy(func(l league.League) bool { return l.Name == "Premier League" })
	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(scoresDoc, nil).Once()
	extractor.On("MatchesFromJSON", scoresDoc).Return([]fixture.Match{finished("La Liga", "Real Madrid", "Barcelona", 2, 1)}, nil).Once()
	fetcher.On("FetchTablePage", mock.Anything, isPL).Return(tableDoc, nil).Once()
	extractor.On("TableFromJSON", tableDoc, isPL).
		Return(standing.Table{League: "Premier League", Rows: []standing.TableRow{{Position: 1, Team: "Liverpool", Form: []string{}}}}, nil).
		Once()

	service := newTestScoresService(fetcher, extractor, nil)
	got, err := service.Overview(context.Background(), "Premier League", 0)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(got.Matches) != 0 {
		t.Fatalf("expected no Premier League matches, got %+v", got.Matches)
	}
	if got.Table == nil || got.Table.Rows[0].Team != "Liverpool" {
		t.Fatalf("expected the table to be present: %+v", got.Table)
	}
}

func TestScoresService_Overview_NothingAvailable(t *testing.T) {
	t.Parallel()

	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(nil, errors.New("timeout")).Once()
	fetcher.On("FetchTablePage", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	service := newTestScoresService(fetcher, extractor, nil)
	if _, err := service.Overview(context.Background(), "Serie A", 0); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestScoresService_Matches_KeepsStoppageTimeMatches(t *testing.T) {
	t.Parallel()

	doc := emptyDoc(t)
	fetcher := usecasemock.NewPageFetcher(t)
	extractor := usecasemock.NewExtractor(t)

	live := finished("Serie A", "Napoli", "Inter Milan", 1, 1)
	live.Status = "90'+4'"
	early := finished("Serie A", "Juventus", "AC Milan", 0, 0)
	early.Status = "45'+2"

	fetcher.On("FetchScoresPage", mock.Anything, 0).Return(doc, nil).Once()
	extractor.On("MatchesFromJSON", doc).Return([]fixture.Match{live, early}, nil).Once()

	got, err := newTestScoresService(fetcher, extractor, nil).Matches(context.Background(), MatchQuery{League: "Serie A"})
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if got.MatchCount() != 2 {
		t.Fatalf("expected both stoppage-time matches, got %+v", got.Leagues)
	}
	if got.Leagues[0].Matches[0].Status != "90'+4'" {
		t.Fatalf("status not kept verbatim: %q", got.Leagues[0].Matches[0].Status)
	}
}
