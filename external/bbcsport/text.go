package bbcsport

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	minLineLength  = 10
	maxTeamNameLen = 30
	maxPlausible   = 20
)

// scoreLayout says which captured groups hold teams and scores.
type scoreLayout int

const (
	layoutTeamScoreTeamScore scoreLayout = iota // home, homeScore, away, awayScore
	layoutTeamScoreScoreTeam                    // home, homeScore, awayScore, away
	layoutTeamsThenScores                       // home, away, homeScore, awayScore
	layoutScoresThenTeams                       // homeScore, awayScore, home, away
)

type linePattern struct {
	name   string
	regex  *regexp.Regexp
	layout scoreLayout
}

// Tried in order; the first pattern that matches decides the line.
var linePatterns = []linePattern{
	{"comma at", regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s*,\s*(.+?)\s+(\d+)\s+at\s+`), layoutTeamScoreTeamScore},
	{"dash", regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s*-\s*(\d+)\s+(.+?)(?:\s+FT|\s+Full time|$)`), layoutTeamScoreScoreTeam},
	{"versus then score", regexp.MustCompile(`(?i)^(.+?)\s+vs?\s+(.+?)\s+(\d+)\s*-\s*(\d+)`), layoutTeamsThenScores},
	{"spaced", regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s+(.+?)\s+(\d+)(?:\s+FT|\s+Full time|\s+at\s+|$)`), layoutTeamScoreTeamScore},
	{"colon", regexp.MustCompile(`(?i)(.+?)\s+(\d+)\s*:\s*(\d+)\s+(.+?)(?:\s+FT|\s+Full time|$)`), layoutTeamScoreScoreTeam},
	{"v separated", regexp.MustCompile(`(?i)(.+?)\s+(\d+)\s+v\s+(\d+)\s+(.+?)(?:\s+FT|\s+Full time|$)`), layoutTeamScoreScoreTeam},
	{"beat", regexp.MustCompile(`(?i)(.+?)\s+beat\s+(.+?)\s+(\d+)\s*-\s*(\d+)`), layoutTeamsThenScores},
	{"defeated", regexp.MustCompile(`(?i)(.+?)\s+defeated\s+(.+?)\s+(\d+)\s*-\s*(\d+)`), layoutTeamsThenScores},
	{"drew with", regexp.MustCompile(`(?i)(.+?)\s+drew\s+with\s+(.+?)\s+(\d+)\s*-\s*(\d+)`), layoutTeamsThenScores},
	{"score first dash", regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s+(.+?)\s+vs?\s+(.+?)(?:\s+FT|$)`), layoutScoresThenTeams},
	{"score first colon", regexp.MustCompile(`(?i)(\d+)\s*:\s*(\d+)\s+(.+?)\s+vs?\s+(.+?)(?:\s+FT|$)`), layoutScoresThenTeams},
}

type lineMatch struct {
	home, away           string
	homeScore, awayScore int
}

// parseScoreLine applies linePatterns to one line of page text.
func parseScoreLine(line string) (lineMatch, string, bool) {
	if utf8.RuneCountInString(line) < minLineLength {
		return lineMatch{}, "", false
	}
	for _, p := range linePatterns {
		groups := p.regex.FindStringSubmatch(line)
		if len(groups) != 5 {
			continue
		}
		return p.layout.assign(groups[1:]), p.name, true
	}
	return lineMatch{}, "", false
}

func (l scoreLayout) assign(g []string) lineMatch {
	var m lineMatch
	switch l {
	case layoutTeamScoreScoreTeam:
		m.home, m.away = g[0], g[3]
		m.homeScore, m.awayScore = atoi(g[1]), atoi(g[2])
	case layoutTeamsThenScores:
		m.home, m.away = g[0], g[1]
		m.homeScore, m.awayScore = atoi(g[2]), atoi(g[3])
	case layoutScoresThenTeams:
		m.home, m.away = g[2], g[3]
		m.homeScore, m.awayScore = atoi(g[0]), atoi(g[1])
	default:
		m.home, m.away = g[0], g[2]
		m.homeScore, m.awayScore = atoi(g[1]), atoi(g[3])
	}
	m.home = strings.TrimSpace(m.home)
	m.away = strings.TrimSpace(m.away)
	return m
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Captured groups are \d+; only overflow lands here.
		return -1
	}
	return v
}

func plausibleScore(v int) bool {
	return v >= 0 && v <= maxPlausible
}

func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= maxTeamNameLen {
		return name
	}
	return string([]rune(name)[:maxTeamNameLen])
}

func lineKickoff(line string) string {
	if match := clockRegex.FindStringSubmatch(line); match != nil {
		return match[1]
	}
	return ""
}

// textLines returns the document's visible text, one entry per text node line,
// trimmed and without empties.
func textLines(doc *goquery.Document) []string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		if n.Type == html.TextNode {
			for _, part := range strings.Split(n.Data, "\n") {
				if line := strings.Join(strings.Fields(part), " "); line != "" {
					lines = append(lines, line)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return lines
}

func finalizeTextMatch(m lineMatch, leagueName, line string) fixture.Match {
	return fixture.Match{
		League:      leagueName,
		HomeTeam:    truncateName(m.home),
		AwayTeam:    truncateName(m.away),
		HomeScore:   m.homeScore,
		AwayScore:   m.awayScore,
		Status:      fixture.StatusFinished,
		HomeScorers: []string{},
		AwayScorers: []string{},
		HomeCards:   []string{},
		AwayCards:   []string{},
		Time:        lineKickoff(line),
	}
}
