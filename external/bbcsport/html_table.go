package bbcsport

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	tableRowSelector  = `[class*="TableRow"], [class*="table-row"], [data-testid*="table-row"]`
	rowCellSelector   = `td, th, [class*="Cell"], [role="cell"]`
	rowTeamSelector   = `abbr[title], [class*="TeamName"], [class*="team-name"]`
	rowFormSelector   = `[class*="Form"] [class*="Result"], [class*="form"] li, [class*="FormGuide"] span`
	headerRowSelector = `thead tr, tr:has(th)`
)

// Column order for rows that only carry numbers after the team cell.
var positionalStatColumns = []string{"played", "won", "drawn", "lost", "goalsFor", "goalsAgainst", "goalDifference", "points"}

// headerColumns maps lowercased header captions to entry keys.
var headerColumns = map[string]string{
	"pos": "position", "position": "position", "#": "position", "rank": "position",
	"team": "teamName", "club": "teamName", "name": "teamName",
	"p": "played", "pl": "played", "mp": "played", "played": "played", "matches played": "played",
	"w": "won", "won": "won", "wins": "won",
	"d": "drawn", "drawn": "drawn", "draw": "drawn", "draws": "drawn",
	"l": "lost", "lost": "lost", "losses": "lost",
	"f": "goalsFor", "gf": "goalsFor", "for": "goalsFor", "goals for": "goalsFor",
	"a": "goalsAgainst", "ga": "goalsAgainst", "against": "goalsAgainst", "goals against": "goalsAgainst",
	"gd": "goalDifference", "goal difference": "goalDifference", "+/-": "goalDifference", "diff": "goalDifference",
	"pts": "points", "points": "points",
	"form": "form", "last 5": "form", "form, last 6 games, oldest first": "form",
}

// cssPatternEntries converts class-matched table rows into standings entries.
func cssPatternEntries(doc *goquery.Document) []map[string]any {
	var entries []map[string]any
	doc.Find(tableRowSelector).Each(func(_ int, row *goquery.Selection) {
		if entry, ok := cssRowEntry(row); ok {
			entries = append(entries, entry)
		}
	})
	return entries
}

func cssRowEntry(row *goquery.Selection) (map[string]any, bool) {
	cells := row.Find(rowCellSelector).FilterFunction(func(_ int, cell *goquery.Selection) bool {
		return cell.Find(rowCellSelector).Length() == 0
	})

	team := ""
	if el := row.Find(rowTeamSelector).First(); el.Length() > 0 {
		team = el.AttrOr("title", "")
		if strings.TrimSpace(team) == "" {
			team = el.Text()
		}
	}

	var (
		numbers  []string
		position string
		seenTeam bool
	)
	cells.Each(func(_ int, cell *goquery.Selection) {
		text := strings.Join(strings.Fields(cell.Text()), " ")
		switch {
		case text == "":
		case isSignedNumber(text):
			if seenTeam {
				numbers = append(numbers, text)
			} else if position == "" {
				position = text
			}
		case !seenTeam:
			seenTeam = true
			if strings.TrimSpace(team) == "" {
				team = text
			}
		}
	})
	if !seenTeam || len(numbers) == 0 {
		return nil, false
	}

	entry := map[string]any{"teamName": strings.TrimSpace(team)}
	if position != "" {
		entry["position"] = position
	}
	if len(numbers) >= len(positionalStatColumns) {
		for i, key := range positionalStatColumns {
			entry[key] = numbers[i]
		}
	} else {
		entry["played"] = numbers[0]
		entry["points"] = numbers[len(numbers)-1]
	}

	var form []any
	row.Find(rowFormSelector).Each(func(_ int, el *goquery.Selection) {
		form = append(form, strings.TrimSpace(el.Text()))
	})
	if len(form) > 0 {
		entry["form"] = form
	}
	return entry, true
}

// htmlTableEntries reads the first <table> whose header names a team column.
func htmlTableEntries(doc *goquery.Document) []map[string]any {
	var entries []map[string]any
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		columns := tableColumns(table)
		if !hasColumn(columns, "teamName") {
			return true
		}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return
			}
			entry := make(map[string]any, len(columns))
			cells.Each(func(i int, cell *goquery.Selection) {
				if i >= len(columns) || columns[i] == "" {
					return
				}
				entry[columns[i]] = cellValue(cell, columns[i])
			})
			if len(entry) > 0 {
				entries = append(entries, entry)
			}
		})
		return len(entries) == 0
	})
	return entries
}

func tableColumns(table *goquery.Selection) []string {
	header := table.Find(headerRowSelector).First()
	if header.Length() == 0 {
		return nil
	}
	var columns []string
	header.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		caption := strings.ToLower(strings.Join(strings.Fields(cell.Text()), " "))
		if caption == "" {
			caption = strings.ToLower(strings.TrimSpace(cell.AttrOr("aria-label", "")))
		}
		columns = append(columns, headerColumns[caption])
	})
	return columns
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func cellValue(cell *goquery.Selection, column string) any {
	switch column {
	case "teamName":
		if el := cell.Find(rowTeamSelector).First(); el.Length() > 0 {
			if title := strings.TrimSpace(el.AttrOr("title", "")); title != "" {
				return title
			}
		}
	case "form":
		var results []any
		cell.Find("li, span, abbr").Each(func(_ int, el *goquery.Selection) {
			if el.Children().Length() == 0 {
				results = append(results, strings.TrimSpace(el.Text()))
			}
		})
		if len(results) > 0 {
			return results
		}
	}
	return strings.Join(strings.Fields(cell.Text()), " ")
}

func isSignedNumber(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	return isNumeric(s)
}
