package bbcsport

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
)

var (
	teamIDKeys      = []string{"teamId", "team_id", "participantId", "participant_id", "teamUrn", "urn"}
	nestedTeamKeys  = []string{"team", "participant", "club"}
	nestedIDKeys    = []string{"id", "urn", "teamId"}
	nestedNameKeys  = []string{"fullName", "name", "displayName", "shortName"}
	flatNameKeys    = []string{"teamName", "team_name", "name", "fullName", "displayName", "shortName", "team"}
	statsKeys       = []string{"stats", "statistics", "overall"}
	formKeys        = []string{"form", "recentForm", "formGuide"}
	heuristicIgnore = []string{
		"id", "url", "form", "position", "status", "key", "slug", "code", "href", "image", "logo",
		"qualification", "movement", "description", "note", "comment", "zone", "outcome",
	}
)

// teamNameStrategy is one way to find a row's team name; the first valid name wins.
type teamNameStrategy func(t tableNormalizer, entry map[string]any, leagueName string) string

var teamNameStrategies = []teamNameStrategy{
	teamNameFromID,
	teamNameFromNested,
	teamNameFromFlatKeys,
	teamNameFromHeuristicScan,
}

type tableNormalizer struct {
	registry *league.Registry
}

// row converts one standings entry. fallbackPosition is used when the entry
// carries no rank of its own.
func (t tableNormalizer) row(entry map[string]any, leagueName string, fallbackPosition int) standing.TableRow {
	sources := []map[string]any{entry}
	for _, key := range statsKeys {
		if nested, ok := entry[key].(map[string]any); ok {
			sources = append(sources, nested)
		}
	}

	position, ok := intAny(sources, "position", "rank", "pos")
	if !ok || position <= 0 {
		position = fallbackPosition
	}

	row := standing.TableRow{Position: position}
	row.Played, _ = intAny(sources, "played", "matchesPlayed", "matches_played", "gamesPlayed", "games_played")
	row.Won, _ = intAny(sources, "won", "wins")
	row.Drawn, _ = intAny(sources, "drawn", "draws", "draw")
	row.Lost, _ = intAny(sources, "lost", "losses", "loss", "defeats")
	row.GoalsFor, _ = intAny(sources, "goalsFor", "goals_for", "goalsScoredFor", "goalsScored", "goals_scored")
	row.GoalsAgainst, _ = intAny(sources, "goalsAgainst", "goals_against", "goalsScoredAgainst", "goalsConceded", "goals_conceded")
	var gdKnown bool
	row.GoalDifference, gdKnown = intAny(sources, "goalDifference", "goal_difference", "goalDiff")
	row.ReconcileGoalDifference(gdKnown)
	row.Points, _ = intAny(sources, "points", "pts")

	row.Form = []string{}
	for _, key := range formKeys {
		if raw, ok := entry[key]; ok && raw != nil {
			row.Form = standing.DecodeForm(raw)
			break
		}
	}

	row.Team = t.teamName(entry, leagueName, position)
	return row
}

func (t tableNormalizer) teamName(entry map[string]any, leagueName string, position int) string {
	for _, strategy := range teamNameStrategies {
		if name := league.CleanTeamName(strategy(t, entry, leagueName)); validTeamName(name) {
			return name
		}
	}
	return t.repairName(leagueName, position)
}

// repairName substitutes the roster name at the row's rank.
func (t tableNormalizer) repairName(leagueName string, position int) string {
	if t.registry != nil {
		if name, ok := t.registry.PositionalName(leagueName, position); ok {
			return name
		}
	}
	return fmt.Sprintf("Team %d", position)
}

func teamNameFromID(t tableNormalizer, entry map[string]any, leagueName string) string {
	if t.registry == nil {
		return ""
	}
	for _, key := range teamIDKeys {
		if id := lenientString(entry, key); id != "" {
			if name, ok := t.registry.TeamByID(leagueName, id); ok {
				return name
			}
		}
	}
	return ""
}

func teamNameFromNested(t tableNormalizer, entry map[string]any, leagueName string) string {
	for _, key := range nestedTeamKeys {
		nested, ok := entry[key].(map[string]any)
		if !ok {
			continue
		}
		if t.registry != nil {
			for _, idKey := range nestedIDKeys {
				if id := lenientString(nested, idKey); id != "" {
					if name, ok := t.registry.TeamByID(leagueName, id); ok {
						return name
					}
				}
			}
		}
		if name := lenientString(nested, nestedNameKeys...); validTeamName(name) {
			return name
		}
	}
	return ""
}

func teamNameFromFlatKeys(_ tableNormalizer, entry map[string]any, _ string) string {
	for _, key := range flatNameKeys {
		if s, ok := entry[key].(string); ok && validTeamName(strings.TrimSpace(s)) {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// teamNameFromHeuristicScan takes the first plausible string field, skipping keys
// that look like identifiers, stats or annotations. When the league has a
// roster the candidate must match it.
func teamNameFromHeuristicScan(t tableNormalizer, entry map[string]any, leagueName string) string {
	for _, key := range sortedKeys(entry) {
		lower := strings.ToLower(key)
		if containsAny(lower, heuristicIgnore) {
			continue
		}
		s, ok := entry[key].(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); validTeamName(s) && t.onRoster(leagueName, s) {
			return s
		}
	}
	return ""
}

func (t tableNormalizer) onRoster(leagueName, name string) bool {
	if t.registry == nil {
		return true
	}
	matched, checked := t.registry.TeamInLeague(leagueName, name)
	return matched || !checked
}

// validTeamName rejects "Unknown", purely numeric names and names of two
// characters or fewer.
func validTeamName(name string) bool {
	if utf8.RuneCountInString(name) <= 2 || strings.EqualFold(name, unknownTeam) {
		return false
	}
	return !isNumeric(name)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
