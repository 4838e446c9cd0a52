package bbcsport

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
)

type ExtractorConfig struct {
	Registry *league.Registry
	// Location renders kickoff times; UTC when nil.
	Location *time.Location
	Logger   *logging.Logger
}

// Extractor turns fetched pages into matches and tables. Each method is one
// strategy: it returns records, or an error marked ErrNotFound or ErrMalformed.
type Extractor struct {
	registry *league.Registry
	matches  matchNormalizer
	tables   tableNormalizer
	logger   *logging.Logger
}

func NewExtractor(cfg ExtractorConfig) *Extractor {
	if cfg.Registry == nil {
		panic("bbcsport: extractor requires a league registry")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Extractor{
		registry: cfg.Registry,
		matches:  matchNormalizer{location: location},
		tables:   tableNormalizer{registry: cfg.Registry},
		logger:   logger,
	}
}

// MatchesFromJSON reads fixtures from the embedded initial data. Groups whose
// label is not a tracked league are skipped, and so is any event that fails to
// normalize.
func (e *Extractor) MatchesFromJSON(doc *goquery.Document) ([]fixture.Match, error) {
	p, err := e.payload(doc)
	if err != nil {
		return nil, err
	}
	groups, err := p.fixtureGroups()
	if err != nil {
		return nil, err
	}

	var out []fixture.Match
	for _, group := range groups {
		leagueName, ok := e.registry.FromDisplayLabel(group.label)
		if !ok {
			continue
		}
		for _, event := range group.events {
			m, err := e.matches.normalize(event, leagueName)
			if err != nil {
				e.logger.Debug("discard provider event", "league", leagueName, "error", err)
				continue
			}
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, notFoundf("no tracked fixtures in initial data")
	}
	return out, nil
}

// MatchesFromContainers reads fixture blocks from the page markup. League
// attribution requires both teams to belong to the same roster.
func (e *Extractor) MatchesFromContainers(doc *goquery.Document) ([]fixture.Match, error) {
	if doc == nil {
		return nil, notFoundf("no document")
	}
	var out []fixture.Match
	doc.Find(fixtureContainerSelector).Each(func(_ int, s *goquery.Selection) {
		// Containers nest; the innermost block carries the match.
		if s.Find(fixtureContainerSelector).Length() > 0 {
			return
		}
		cm, ok := readContainer(s)
		if !ok {
			return
		}
		home := league.CleanTeamName(cm.home)
		away := league.CleanTeamName(cm.away)
		leagueName, ok := e.registry.IdentifyLeague(home, away)
		if !ok {
			e.logger.Debug("reject fixture block", "home", home, "away", away)
			return
		}
		out = append(out, fixture.Match{
			League:      leagueName,
			HomeTeam:    truncateName(home),
			AwayTeam:    truncateName(away),
			HomeScore:   cm.homeScore,
			AwayScore:   cm.awayScore,
			Status:      cm.status,
			HomeScorers: []string{},
			AwayScorers: []string{},
			HomeCards:   []string{},
			AwayCards:   []string{},
			Time:        cm.kickoff,
		})
	})
	if len(out) == 0 {
		return nil, notFoundf("no fixture containers with tracked teams")
	}
	return out, nil
}

// MatchesFromText scans page text for score lines. A league heading must have
// been seen before a line is considered, but the accepted league always comes
// from the team rosters.
func (e *Extractor) MatchesFromText(doc *goquery.Document) ([]fixture.Match, error) {
	if doc == nil {
		return nil, notFoundf("no document")
	}
	return e.matchesFromLines(textLines(doc))
}

func (e *Extractor) matchesFromLines(lines []string) ([]fixture.Match, error) {
	var (
		out     []fixture.Match
		current string
	)
	for _, line := range lines {
		if hint, ok := e.registry.LeagueFromText(line); ok {
			current = hint
			continue
		}
		if current == "" {
			continue
		}
		lm, pattern, ok := parseScoreLine(line)
		if !ok {
			continue
		}
		lm.home = league.CleanTeamName(lm.home)
		lm.away = league.CleanTeamName(lm.away)
		if !validTeamName(lm.home) || !validTeamName(lm.away) || !plausibleScore(lm.homeScore) || !plausibleScore(lm.awayScore) {
			continue
		}
		leagueName, ok := e.registry.IdentifyLeague(lm.home, lm.away)
		if !ok {
			e.logger.Debug("reject score line", "pattern", pattern, "heading", current, "home", lm.home, "away", lm.away)
			continue
		}
		out = append(out, finalizeTextMatch(lm, leagueName, line))
	}
	if len(out) == 0 {
		return nil, notFoundf("no score lines with tracked teams")
	}
	return out, nil
}

// TableFromJSON reads standings from the embedded initial data.
func (e *Extractor) TableFromJSON(doc *goquery.Document, l league.League) (standing.Table, error) {
	p, err := e.payload(doc)
	if err != nil {
		return standing.Table{}, err
	}
	groups, err := p.tableGroups()
	if err != nil {
		return standing.Table{}, err
	}
	return e.assembleTable(l, groups)
}

// TableFromCSSPatterns reads rows marked up with table-row class names.
func (e *Extractor) TableFromCSSPatterns(doc *goquery.Document, l league.League) (standing.Table, error) {
	if doc == nil {
		return standing.Table{}, notFoundf("no document")
	}
	entries := cssPatternEntries(doc)
	if len(entries) == 0 {
		return standing.Table{}, notFoundf("no table-row elements")
	}
	return e.assembleTable(l, []standingsGroup{{entries: entries}})
}

// TableFromHTML reads the first <table> with a team column.
func (e *Extractor) TableFromHTML(doc *goquery.Document, l league.League) (standing.Table, error) {
	if doc == nil {
		return standing.Table{}, notFoundf("no document")
	}
	entries := htmlTableEntries(doc)
	if len(entries) == 0 {
		return standing.Table{}, notFoundf("no standings table")
	}
	return e.assembleTable(l, []standingsGroup{{entries: entries}})
}

func (e *Extractor) payload(doc *goquery.Document) (payload, error) {
	blob, err := LocateBlob(doc)
	if err != nil {
		return payload{}, err
	}
	return decodePayload(blob)
}

// assembleTable normalizes entries into rows. Conference leagues keep (or
// derive) their named groups; other leagues keep provider groups only when
// there is more than one.
func (e *Extractor) assembleTable(l league.League, groups []standingsGroup) (standing.Table, error) {
	table := standing.Table{League: l.Name}

	normalized := make([]standing.Group, 0, len(groups))
	for i, g := range groups {
		rows := e.groupRows(l.Name, g.entries)
		if len(rows) == 0 {
			continue
		}
		name := g.name
		if name == "" && l.IsConference() && i < len(l.Groups) {
			name = l.Groups[i].Name
		}
		normalized = append(normalized, standing.Group{Name: name, Rows: rows})
	}
	if len(normalized) == 0 {
		return standing.Table{}, notFoundf("no usable standings rows for %s", l.Name)
	}

	switch {
	case len(normalized) > 1:
		for i := range normalized {
			if normalized[i].Name == "" {
				normalized[i].Name = groupFallbackName(i)
			}
		}
		table.Groups = normalized
	case l.IsConference():
		table.Groups, table.Rows = e.splitConference(l, normalized[0].Rows)
	default:
		table.Rows = normalized[0].Rows
	}
	return table, nil
}

// groupRows normalizes one group's entries. Rows repeating an earlier position
// are dropped so positions stay unique.
func (e *Extractor) groupRows(leagueName string, entries []map[string]any) []standing.TableRow {
	rows := make([]standing.TableRow, 0, len(entries))
	seen := make(map[int]struct{}, len(entries))
	for i, entry := range entries {
		row := e.tables.row(entry, leagueName, i+1)
		if _, dup := seen[row.Position]; dup {
			e.logger.Debug("drop duplicate table position", "league", leagueName, "position", row.Position, "team", row.Team)
			continue
		}
		seen[row.Position] = struct{}{}
		rows = append(rows, row)
	}
	standing.SortRows(rows)
	return rows
}

// splitConference assigns flat rows to the league's groups by roster membership.
// Rows that match no group are returned separately.
func (e *Extractor) splitConference(l league.League, rows []standing.TableRow) ([]standing.Group, []standing.TableRow) {
	groups := make([]standing.Group, len(l.Groups))
	index := make(map[string]int, len(l.Groups))
	for i, g := range l.Groups {
		groups[i] = standing.Group{Name: g.Name}
		index[g.Name] = i
	}
	var unassigned []standing.TableRow
	for _, row := range rows {
		name, ok := e.registry.GroupOf(l.Name, row.Team)
		if !ok {
			unassigned = append(unassigned, row)
			continue
		}
		i := index[name]
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups, unassigned
}

func groupFallbackName(i int) string {
	return "Group " + string(rune('A'+i%26))
}
