package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

const (
	teamColumnWidth   = 30
	actionColumnWidth = 50
	headerWidth       = 70

	scorerMarker = "⚽ "
	cardMarker   = "🟥 "
	clearScreen  = "\033[H\033[2J"
)

const (
	ansiReset        = "\033[0m"
	ansiBold         = "\033[1m"
	ansiRed          = "\033[31m"
	ansiYellow       = "\033[33m"
	ansiMagenta      = "\033[35m"
	ansiCyan         = "\033[36m"
	ansiBrightGreen  = "\033[92m"
	ansiBrightYellow = "\033[93m"
	ansiBrightBlue   = "\033[94m"
	ansiBrightCyan   = "\033[96m"
)

type RendererConfig struct {
	// Color enables ANSI colors.
	Color bool
	// Location is used for header dates; defaults to UTC.
	Location *time.Location
	Now      func() time.Time
}

// Renderer writes normalized records as terminal text.
type Renderer struct {
	out io.Writer
	cfg RendererConfig
}

func NewRenderer(out io.Writer, cfg RendererConfig) *Renderer {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Renderer{out: out, cfg: cfg}
}

func (r *Renderer) Clear() {
	fmt.Fprint(r.out, clearScreen)
}

// Updated prints the refresh banner.
func (r *Renderer) Updated() {
	stamp := r.cfg.Now().In(r.cfg.Location).Format("2006-01-02 15:04:05")
	fmt.Fprintln(r.out, r.paint(ansiBold+ansiBrightBlue, "Last updated: "+stamp))
}

// Next prints the countdown footer of a watch pass.
func (r *Renderer) Next(interval time.Duration) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(ansiCyan, fmt.Sprintf("Next update in %s... (Ctrl+C to quit)", interval)))
}

// Matches prints every league group in result order.
func (r *Renderer) Matches(result usecase.MatchesResult) {
	if result.MatchCount() == 0 {
		fmt.Fprintln(r.out, r.paint(ansiYellow, "No matches found for any league"))
		return
	}
	day := r.cfg.Now().In(r.cfg.Location).AddDate(0, 0, result.DateOffset).Format("2006-01-02")
	for _, group := range result.Leagues {
		r.header(strings.ToUpper(group.League) + " - " + day)
		for i, m := range group.Matches {
			r.match(i+1, m)
		}
	}
}

func (r *Renderer) match(n int, m fixture.Match) {
	fmt.Fprintf(r.out, "%s %s\n", r.paint(ansiCyan, fmt.Sprintf("Match %d:", n)), r.paint(ansiBrightYellow, m.Time))

	homeColor, awayColor := ansiYellow, ansiYellow
	switch {
	case m.HomeScore > m.AwayScore:
		homeColor, awayColor = ansiBrightGreen, ansiRed
	case m.AwayScore > m.HomeScore:
		homeColor, awayColor = ansiRed, ansiBrightGreen
	}

	line := fmt.Sprintf("  %s %s %s %s",
		r.paint(homeColor, pad(m.HomeTeam, teamColumnWidth)),
		r.paint(ansiBold, fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore)),
		r.paint(awayColor, pad(m.AwayTeam, teamColumnWidth)),
		r.paint(ansiMagenta, "["+statusLabel(m.Status)+"]"),
	)
	if m.HasAggregate() {
		line += " " + r.paint(ansiCyan, fmt.Sprintf("(agg %d-%d)", *m.HomeAgg, *m.AwayAgg))
	}
	fmt.Fprintln(r.out, line)

	home := r.actions(m.HomeScorers, m.HomeCards)
	away := r.actions(m.AwayScorers, m.AwayCards)
	rows := len(home)
	if len(away) > rows {
		rows = len(away)
	}
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(home) {
			left = home[i]
		}
		if i < len(away) {
			right = away[i]
		}
		fmt.Fprintf(r.out, "    %s%s\n", left, right)
	}
	fmt.Fprintln(r.out)
}

// actions pads every entry to the action column so away entries line up.
func (r *Renderer) actions(scorers, cards []string) []string {
	out := make([]string, 0, len(scorers)+len(cards))
	for _, s := range scorers {
		out = append(out, r.paint(ansiBrightYellow, pad(scorerMarker+s, actionColumnWidth)))
	}
	for _, c := range cards {
		out = append(out, r.paint(ansiRed, pad(cardMarker+c, actionColumnWidth)))
	}
	return out
}

// Table prints a league table, one section per conference group.
func (r *Renderer) Table(result usecase.TableResult) {
	name := result.Table.League
	if name == "" {
		name = result.League
	}
	r.header(strings.ToUpper(name) + " TABLE")
	if len(result.Table.Rows) > 0 {
		r.tableRows(result.Table.Rows)
	}
	for _, g := range result.Table.Groups {
		fmt.Fprintln(r.out, r.paint(ansiBold+ansiCyan, g.Name))
		r.tableRows(g.Rows)
	}
}

func (r *Renderer) tableRows(rows []standing.TableRow) {
	fmt.Fprintln(r.out, r.paint(ansiBold, fmt.Sprintf("%3s  %s %3s %3s %3s %3s %4s %4s %4s %4s  %s",
		"Pos", pad("Team", teamColumnWidth), "P", "W", "D", "L", "GF", "GA", "GD", "Pts", "Form")))
	for _, row := range rows {
		fmt.Fprintf(r.out, "%3d  %s %3d %3d %3d %3d %4d %4d %4s %4d  %s\n",
			row.Position, pad(row.Team, teamColumnWidth), row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, signed(row.GoalDifference), row.Points, r.form(row.Form))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) form(results []string) string {
	parts := make([]string, 0, len(results))
	for _, res := range results {
		switch res {
		case "W":
			parts = append(parts, r.paint(ansiBrightGreen, res))
		case "L":
			parts = append(parts, r.paint(ansiRed, res))
		default:
			parts = append(parts, r.paint(ansiYellow, res))
		}
	}
	return strings.Join(parts, " ")
}

// Error prints a user-facing explanation for a pipeline failure.
func (r *Renderer) Error(err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrInvalidInput):
		fmt.Fprintln(r.out, r.paint(ansiRed, err.Error()))
	case errors.Is(err, usecase.ErrNoData):
		fmt.Fprintln(r.out, r.paint(ansiYellow, "No data available from BBC Sport for this selection."))
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		fmt.Fprintln(r.out, r.paint(ansiRed, "BBC Sport is failing repeatedly; requests are paused for a while."))
	default:
		fmt.Fprintln(r.out, r.paint(ansiRed, "Failed to fetch data from BBC Sport: "+err.Error()))
	}
}

func (r *Renderer) header(title string) {
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.paint(ansiBold+ansiBrightCyan, rule))
	fmt.Fprintln(r.out, r.paint(ansiBold+ansiBrightBlue, " "+title))
	fmt.Fprintln(r.out, r.paint(ansiBrightCyan, rule))
	fmt.Fprintln(r.out)
}

func (r *Renderer) paint(code, text string) string {
	if !r.cfg.Color || text == "" {
		return text
	}
	return code + text + ansiReset
}

func statusLabel(status string) string {
	if status == fixture.StatusNotStarted {
		return "KO"
	}
	return status
}

func pad(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
