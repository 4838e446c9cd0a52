package bbcsport

import (
	"regexp"
	"strings"
	"time"

	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/league"
)

const unknownTeam = "Unknown"

var clockRegex = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)

// matchNormalizer converts provider events into Match records.
type matchNormalizer struct {
	location *time.Location
}

// normalize builds a Match from one event. Any field of the wrong type, or a
// missing side, discards the whole event with an ErrMalformed error.
func (n matchNormalizer) normalize(event map[string]any, leagueName string) (fixture.Match, error) {
	home, ok, err := mapAt(event, "home")
	if err != nil {
		return fixture.Match{}, err
	}
	if !ok {
		return fixture.Match{}, malformedf("event has no home side")
	}
	away, ok, err := mapAt(event, "away")
	if err != nil {
		return fixture.Match{}, err
	}
	if !ok {
		return fixture.Match{}, malformedf("event has no away side")
	}

	m := fixture.Match{League: leagueName}
	if m.HomeTeam, err = sideName(home); err != nil {
		return fixture.Match{}, err
	}
	if m.AwayTeam, err = sideName(away); err != nil {
		return fixture.Match{}, err
	}
	if m.HomeScore, _, err = countAt(home, "score"); err != nil {
		return fixture.Match{}, err
	}
	if m.AwayScore, _, err = countAt(away, "score"); err != nil {
		return fixture.Match{}, err
	}
	if m.Status, err = eventStatus(event); err != nil {
		return fixture.Match{}, err
	}
	if m.HomeScorers, m.HomeCards, err = sideActions(home); err != nil {
		return fixture.Match{}, err
	}
	if m.AwayScorers, m.AwayCards, err = sideActions(away); err != nil {
		return fixture.Match{}, err
	}
	if m.Time, err = n.kickoff(event); err != nil {
		return fixture.Match{}, err
	}
	if err := applyAggregate(&m, event, home, away); err != nil {
		return fixture.Match{}, err
	}
	return m, nil
}

func sideName(side map[string]any) (string, error) {
	name, ok, err := firstString(side, []string{"fullName"}, []string{"shortName"})
	if err != nil {
		return "", err
	}
	if !ok {
		return unknownTeam, nil
	}
	if cleaned := league.CleanTeamName(name); cleaned != "" {
		return cleaned, nil
	}
	return unknownTeam, nil
}

// eventStatus resolves the display status. A legacy eventProgress.state that
// signals live play or half time wins; otherwise status is combined with the
// period label and status comment.
func eventStatus(event map[string]any) (string, error) {
	state, _, err := stringAt(event, "eventProgress", "state")
	if err != nil {
		return "", err
	}
	switch strings.ToUpper(strings.ReplaceAll(state, " ", "")) {
	case "HT", "HALFTIME", "HALF_TIME":
		return fixture.StatusHalfTime, nil
	case "LIVE", "INPROGRESS", "IN_PROGRESS", "MIDEVENT":
		return fixture.StatusLive, nil
	}

	status, hasStatus, err := stringAt(event, "status")
	if err != nil {
		return "", err
	}
	label, hasLabel, err := stringAt(event, "periodLabel", "value")
	if err != nil {
		return "", err
	}
	comment, _, err := stringAt(event, "statusComment", "value")
	if err != nil {
		return "", err
	}

	switch status {
	case "MidEvent":
		if strings.Contains(label, "'") {
			return label, nil
		}
		if mapped, ok := periodStatus(label); ok {
			return mapped, nil
		}
		return fixture.StatusLive, nil
	case "PreEvent":
		if mentionsPostponed(label, comment) {
			return fixture.StatusPostponed, nil
		}
		return fixture.StatusNotStarted, nil
	case "PostEvent":
		return finishedStatus(label, comment), nil
	}

	if mapped, ok := periodStatus(label); ok {
		return mapped, nil
	}
	if !hasStatus && !hasLabel && state == "" {
		return fixture.StatusFinished, nil
	}
	return finishedStatus(label, comment), nil
}

func periodStatus(label string) (string, bool) {
	switch strings.ToUpper(label) {
	case "HT", "HALF TIME":
		return fixture.StatusHalfTime, true
	case "ET", "EXTRA TIME":
		return fixture.StatusExtraTime, true
	}
	return "", false
}

func finishedStatus(label, comment string) string {
	upperLabel := strings.ToUpper(label)
	if upperLabel == "PENS" || strings.Contains(upperLabel, "PENALTIES") || strings.Contains(strings.ToUpper(comment), "PENALTIES") {
		return fixture.StatusPenalties
	}
	if mentionsPostponed(label, comment) {
		return fixture.StatusPostponed
	}
	return fixture.StatusFinished
}

func mentionsPostponed(values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), "postponed") {
			return true
		}
	}
	return false
}

// sideActions collects goal and sending-off entries as "Player 23'" strings.
func sideActions(side map[string]any) (scorers, cards []string, err error) {
	actions, _, err := listAt(side, "actions")
	if err != nil {
		return nil, nil, err
	}
	scorers = []string{}
	cards = []string{}
	for _, rawAction := range actions {
		action, ok := rawAction.(map[string]any)
		if !ok {
			return nil, nil, malformedf("action is %T", rawAction)
		}
		actionType, _, err := stringAt(action, "actionType")
		if err != nil {
			return nil, nil, err
		}
		player, ok, err := stringAt(action, "playerName")
		if err != nil {
			return nil, nil, err
		}
		if !ok || player == "" {
			player = unknownTeam
		}
		details, _, err := listAt(action, "actions")
		if err != nil {
			return nil, nil, err
		}

		for _, rawDetail := range details {
			detail, ok := rawDetail.(map[string]any)
			if !ok {
				return nil, nil, malformedf("action detail is %T", rawDetail)
			}
			kind, _, err := stringAt(detail, "type")
			if err != nil {
				return nil, nil, err
			}
			minute, _, err := stringAt(detail, "timeLabel", "value")
			if err != nil {
				return nil, nil, err
			}

			switch strings.ToLower(actionType) {
			case "goal":
				if !isGoalType(kind) {
					continue
				}
				scorers = append(scorers, actionEntry(player, minute)+goalSuffix(kind))
			case "card":
				if kind == "Red Card" || kind == "Two Yellow Cards" {
					cards = append(cards, actionEntry(player, minute))
				}
			}
		}
	}
	return scorers, cards, nil
}

func isGoalType(kind string) bool {
	switch kind {
	case "Goal", "Penalty", "Own Goal":
		return true
	}
	return strings.Contains(strings.ToLower(kind), "goal")
}

func goalSuffix(kind string) string {
	switch kind {
	case "Penalty":
		return " (pen)"
	case "Own Goal":
		return " (og)"
	}
	return ""
}

func actionEntry(player, minute string) string {
	return strings.TrimSpace(player + " " + minute)
}

// kickoff renders startDateTime as HH:MM in the configured zone.
func (n matchNormalizer) kickoff(event map[string]any) (string, error) {
	raw, ok, err := stringAt(event, "startDateTime")
	if err != nil || !ok || raw == "" {
		return "", err
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		loc := n.location
		if loc == nil {
			loc = time.UTC
		}
		return ts.In(loc).Format("15:04"), nil
	}
	if match := clockRegex.FindStringSubmatch(raw); match != nil {
		return match[1], nil
	}
	return "", nil
}

// applyAggregate sets multi-leg aggregates. Aggregates are kept only when both
// sides are known.
func applyAggregate(m *fixture.Match, event, home, away map[string]any) error {
	marker, ok := valueAt(event, "multiLeg")
	if !ok {
		return nil
	}
	if flag, isBool := marker.(bool); isBool && !flag {
		return nil
	}
	m.IsMultiLeg = true

	homeAgg, hasHome, err := countAt(home, "runningScores", "aggregate")
	if err != nil {
		return err
	}
	awayAgg, hasAway, err := countAt(away, "runningScores", "aggregate")
	if err != nil {
		return err
	}
	if !hasHome || !hasAway {
		homeAgg, hasHome, awayAgg, hasAway, err = participantAggregates(event)
		if err != nil {
			return err
		}
	}
	if hasHome && hasAway {
		m.HomeAgg = &homeAgg
		m.AwayAgg = &awayAgg
	}
	return nil
}

func participantAggregates(event map[string]any) (homeAgg int, hasHome bool, awayAgg int, hasAway bool, err error) {
	participants, _, err := listAt(event, "participants")
	if err != nil {
		return 0, false, 0, false, err
	}
	for _, raw := range participants {
		p, ok := raw.(map[string]any)
		if !ok {
			return 0, false, 0, false, malformedf("participant is %T", raw)
		}
		alignment, _, err := stringAt(p, "alignment")
		if err != nil {
			return 0, false, 0, false, err
		}
		agg, ok, err := countAt(p, "aggregateScore")
		if err != nil {
			return 0, false, 0, false, err
		}
		if !ok {
			continue
		}
		switch strings.ToLower(alignment) {
		case "home":
			homeAgg, hasHome = agg, true
		case "away":
			awayAgg, hasAway = agg, true
		}
	}
	return homeAgg, hasHome, awayAgg, hasAway, nil
}
