package standing

import (
	"reflect"
	"testing"
)

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{name: "placeholders dropped", raw: []any{"W", "-", "D", "L", "-", "W"}, want: []string{"W", "D", "L", "W"}},
		{name: "string with dashes", raw: "WD-LW", want: []string{"W", "D", "L", "W"}},
		{name: "comma separated", raw: "W, L, D", want: []string{"W", "L", "D"}},
		{name: "keeps last five", raw: "LLWWDDW", want: []string{"W", "W", "D", "D", "W"}},
		{name: "tagged objects", raw: []any{
			map[string]any{"result": "WIN"},
			map[string]any{"outcome": "draw"},
			map[string]any{"result": ""},
			map[string]any{"value": "L"},
		}, want: []string{"W", "D", "L"}},
		{name: "nested data", raw: map[string]any{"data": "WWL"}, want: []string{"W", "W", "L"}},
		{name: "absent", raw: nil, want: []string{}},
		{name: "wrong type", raw: 42.0, want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DecodeForm(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodeForm(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSortRowsAndGoalDifference(t *testing.T) {
	t.Parallel()

	rows := []TableRow{
		{Position: 3, Team: "C"},
		{Position: 1, Team: "A", GoalsFor: 10, GoalsAgainst: 4},
		{Position: 2, Team: "B", GoalsFor: 5, GoalsAgainst: 5, GoalDifference: 7},
	}
	rows[1].ReconcileGoalDifference(false)
	rows[2].ReconcileGoalDifference(true)
	SortRows(rows)

	if rows[0].Team != "A" || rows[1].Team != "B" || rows[2].Team != "C" {
		t.Fatalf("rows not sorted by position: %+v", rows)
	}
	if rows[0].GoalDifference != 6 {
		t.Fatalf("expected computed goal difference 6, got %d", rows[0].GoalDifference)
	}
	if rows[1].GoalDifference != 7 {
		t.Fatalf("source goal difference must be kept, got %d", rows[1].GoalDifference)
	}
}

func TestTable_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Table{League: "MLS", Groups: []Group{{Name: "Eastern Conference"}}}).IsEmpty() {
		t.Fatalf("table with empty groups should be empty")
	}
	grouped := Table{Groups: []Group{{Name: "East", Rows: []TableRow{{Position: 1, Team: "X"}}}}}
	if grouped.IsEmpty() || len(grouped.AllRows()) != 1 {
		t.Fatalf("grouped table should expose its rows")
	}
}
