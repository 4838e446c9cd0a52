package bbcsport

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
)

const (
	fixtureContainerSelector = `[class*="HeadToHead"], [data-testid*="match-block"], li[class*="fixture"], article[class*="fixture"]`
	teamNameSelector         = `[class*="team-name"], abbr[title], [class*="TeamName"]`
	scoreSelector            = `[class*="number"], [class*="Score"]`
)

var (
	firstNumberRegex = regexp.MustCompile(`\d+`)

	containerStatuses = []struct {
		regex  *regexp.Regexp
		status string
	}{
		{regexp.MustCompile(`(?i)\b(FT|Full time)\b`), fixture.StatusFinished},
		{regexp.MustCompile(`(?i)\b(HT|Half time)\b`), fixture.StatusHalfTime},
		{regexp.MustCompile(`(?i)\bLIVE\b`), fixture.StatusLive},
	}
)

type containerMatch struct {
	home, away           string
	homeScore, awayScore int
	status               string
	kickoff              string
}

// readContainer pulls two team names and two scores out of a fixture block.
func readContainer(s *goquery.Selection) (containerMatch, bool) {
	var teams []string
	s.Find(teamNameSelector).Each(func(_ int, el *goquery.Selection) {
		name, ok := el.Attr("title")
		if !ok || strings.TrimSpace(name) == "" {
			name = el.Text()
		}
		name = strings.Join(strings.Fields(name), " ")
		if len(name) <= 1 || isNumeric(name) {
			return
		}
		// Nested name elements repeat the same team.
		if n := len(teams); n > 0 && strings.EqualFold(teams[n-1], name) {
			return
		}
		teams = append(teams, name)
	})
	if len(teams) < 2 {
		return containerMatch{}, false
	}

	var scores []int
	s.Find(scoreSelector).Each(func(_ int, el *goquery.Selection) {
		if el.Find(scoreSelector).Length() > 0 {
			return
		}
		digits := firstNumberRegex.FindString(el.Text())
		if digits == "" {
			return
		}
		if v, err := strconv.Atoi(digits); err == nil {
			scores = append(scores, v)
		}
	})
	if len(scores) < 2 {
		return containerMatch{}, false
	}

	text := strings.Join(strings.Fields(s.Text()), " ")
	return containerMatch{
		home:      teams[0],
		away:      teams[1],
		homeScore: scores[0],
		awayScore: scores[1],
		status:    containerStatus(text),
		kickoff:   lineKickoff(text),
	}, true
}

// containerStatus reads a status keyword; a block with scores and no keyword is finished.
func containerStatus(text string) string {
	for _, candidate := range containerStatuses {
		if candidate.regex.MatchString(text) {
			return candidate.status
		}
	}
	return fixture.StatusFinished
}
