package league

import (
	"testing"
)

func TestDefaultRegistry_Order(t *testing.T) {
	t.Parallel()

	want := []string{"Premier League", "La Liga", "Serie A", "Bundesliga", "Ligue 1", "Primeira Liga", "Champions League", "MLS"}
	got := Default().Names()
	if len(got) != len(want) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected league at %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestRegistry_IdentifyLeague(t *testing.T) {
	t.Parallel()

	r := Default()
	cases := []struct {
		home, away string
		want       string
		ok         bool
	}{
		{"Real Madrid", "Barcelona", "La Liga", true},
		{"real madrid", "BARCELONA", "La Liga", true},
		{"Man City", "Chelsea", "Premier League", true},
		{"Manchester City FC", "Arsenal", "Premier League", true},
		{"Dortmund", "Bayern Munich", "Bundesliga", true},
		{"Arsenal", "Real Madrid", "", false},
		{"Random FC", "Other FC", "", false},
		{"", "Chelsea", "", false},
		{"Inter Miami CF", "LA Galaxy", "", false},
	}
	for _, tc := range cases {
		got, ok := r.IdentifyLeague(tc.home, tc.away)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("IdentifyLeague(%q, %q) = (%q, %v), want (%q, %v)", tc.home, tc.away, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRegistry_IdentifyLeagueRejectsCrossLeaguePairs(t *testing.T) {
	t.Parallel()

	r := Default()
	var rostered []League
	for _, l := range r.Leagues() {
		if !l.LabelOnly {
			rostered = append(rostered, l)
		}
	}

	for _, left := range rostered {
		for _, right := range rostered {
			if left.Name == right.Name {
				continue
			}
			for _, home := range left.Roster.Names() {
				for _, away := range right.Roster.Names() {
					if got, ok := r.IdentifyLeague(home, away); ok {
						t.Fatalf("cross-league pair %q (%s) vs %q (%s) resolved to %q", home, left.Name, away, right.Name, got)
					}
				}
			}
		}
	}
}

func TestRegistry_Labels(t *testing.T) {
	t.Parallel()

	r := Default()
	labels := map[string]string{
		"Spanish La Liga":          "La Liga",
		"German Bundesliga":        "Bundesliga",
		"Premier League":           "Premier League",
		"UEFA Champions League":    "Champions League",
		"Portuguese Primeira Liga": "Primeira Liga",
	}
	for label, want := range labels {
		got, ok := r.FromDisplayLabel(label)
		if !ok || got != want {
			t.Fatalf("FromDisplayLabel(%q) = (%q, %v), want %q", label, got, ok, want)
		}
	}
	if _, ok := r.FromDisplayLabel("Scottish Premiership"); ok {
		t.Fatalf("untracked label should not resolve")
	}
}

func TestRegistry_LeagueFromText(t *testing.T) {
	t.Parallel()

	r := Default()
	if got, ok := r.LeagueFromText("English Premier League - Saturday fixtures"); !ok || got != "Premier League" {
		t.Fatalf("expected Premier League heading, got (%q, %v)", got, ok)
	}
	if got, ok := r.LeagueFromText("SPANISH LA LIGA"); !ok || got != "La Liga" {
		t.Fatalf("expected La Liga heading, got (%q, %v)", got, ok)
	}
	if _, ok := r.LeagueFromText("Watch the replay here"); ok {
		t.Fatalf("phrase inside a word must not count as a heading")
	}
}

func TestRegistry_PositionalNames(t *testing.T) {
	t.Parallel()

	r := Default()
	if got, ok := r.PositionalName("La Liga", 5); !ok || got != "Real Sociedad" {
		t.Fatalf("expected 5th La Liga name Real Sociedad, got (%q, %v)", got, ok)
	}

	names := r.PositionalNames("Premier League")
	if len(names) != 23 {
		t.Fatalf("expected 20 canonical names plus 3 distinct aliases, got %d", len(names))
	}
	for _, name := range names {
		if name == "Brighton" || name == "Newcastle" {
			t.Fatalf("alias %q contained in a canonical name should be dropped", name)
		}
	}
	if _, ok := r.PositionalName("La Liga", 0); ok {
		t.Fatalf("position 0 is invalid")
	}
}

func TestRegistry_TeamByID(t *testing.T) {
	t.Parallel()

	r := Default()
	if got, ok := r.TeamByID("La Liga", TeamURN("Atlético Madrid")); !ok || got != "Atlético Madrid" {
		t.Fatalf("expected URN lookup to resolve, got (%q, %v)", got, ok)
	}
	if TeamURN("Atlético Madrid") != "urn:bbc:sportsdata:football:team:atletico-madrid" {
		t.Fatalf("unexpected urn: %s", TeamURN("Atlético Madrid"))
	}
	if _, ok := r.TeamByID("La Liga", "real-madrid"); ok {
		t.Fatalf("bare slug is not a known identifier")
	}
}

func TestRegistry_TeamInLeague(t *testing.T) {
	t.Parallel()

	r := Default()
	if matched, checked := r.TeamInLeague("premier league", "Man City"); !matched || !checked {
		t.Fatalf("expected a roster hit, got (%v, %v)", matched, checked)
	}
	if matched, checked := r.TeamInLeague("Premier League", "Champions League"); matched || !checked {
		t.Fatalf("expected a checked miss, got (%v, %v)", matched, checked)
	}
	if _, checked := r.TeamInLeague("Eredivisie", "Ajax"); checked {
		t.Fatalf("unknown leagues cannot be checked")
	}
}

func TestRegistry_ResolveAndGroups(t *testing.T) {
	t.Parallel()

	r := Default()
	for _, alias := range []string{"spanish-la-liga", "epl", "Premier League", "mls"} {
		if _, ok := r.Resolve(alias); !ok {
			t.Fatalf("expected %q to resolve", alias)
		}
	}
	if got, ok := r.GroupOf("MLS", "LA Galaxy"); !ok || got != "Western Conference" {
		t.Fatalf("expected LA Galaxy in Western Conference, got (%q, %v)", got, ok)
	}
	mls, _ := r.Lookup("mls")
	if !mls.IsConference() {
		t.Fatalf("MLS should be conference-style")
	}
}

func TestNewRegistry_RejectsInvalid(t *testing.T) {
	t.Parallel()

	valid := League{Name: "A", Slug: "a", Roster: Roster{Teams: []string{"Team A"}}}
	if _, err := NewRegistry([]League{valid, valid}); err == nil {
		t.Fatalf("expected duplicate league error")
	}
	if _, err := NewRegistry([]League{{Name: "B", Slug: "b"}}); err == nil {
		t.Fatalf("expected empty roster error")
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	t.Parallel()

	r := Default()
	l, _ := r.Lookup("La Liga")
	l.Roster.Teams[0] = "Mutated"
	again, _ := r.Lookup("La Liga")
	if again.Roster.Teams[0] != "Real Madrid" {
		t.Fatalf("registry state leaked through returned league")
	}
}
