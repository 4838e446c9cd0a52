package standing

import (
	"sort"
)

// TableRow represents one team's line in a league table.
type TableRow struct {
	Position       int
	Team           string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	// Form holds at most five W/D/L results, oldest first.
	Form []string
}

// Group is a named section of a conference-style table.
type Group struct {
	Name string
	Rows []TableRow
}

// Table holds either flat Rows or, for conference-style leagues, Groups.
type Table struct {
	League string
	Rows   []TableRow
	Groups []Group
}

func (t Table) IsEmpty() bool {
	if len(t.Rows) > 0 {
		return false
	}
	for _, g := range t.Groups {
		if len(g.Rows) > 0 {
			return false
		}
	}
	return true
}

// AllRows flattens grouped tables in group order.
func (t Table) AllRows() []TableRow {
	if len(t.Groups) == 0 {
		return t.Rows
	}
	out := make([]TableRow, 0, len(t.Rows))
	out = append(out, t.Rows...)
	for _, g := range t.Groups {
		out = append(out, g.Rows...)
	}
	return out
}

// ReconcileGoalDifference fills GoalDifference from goals when the source omitted it.
// Values the source supplied are kept as-is even when inconsistent.
func (r *TableRow) ReconcileGoalDifference(known bool) {
	if known {
		return
	}
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
}

// SortRows orders rows by position, then points, then name.
func SortRows(rows []TableRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Team < rows[j].Team
	})
}
