package league

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const teamURNPrefix = "urn:bbc:sportsdata:football:team:"

// Registry is the immutable set of tracked leagues. Iteration order is the order
// leagues were registered in and decides ties during disambiguation.
type Registry struct {
	leagues    []League
	index      map[string]int
	labels     map[string]int
	matchNames [][]string
	phrases    [][]string
	teamIDs    []map[string]string
	positional [][]string
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(builtinLeagues())
	if err != nil {
		panic(fmt.Sprintf("league: built-in registry is invalid: %v", err))
	}
	return r
})

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry()
}

func NewRegistry(leagues []League) (*Registry, error) {
	r := &Registry{
		leagues:    make([]League, 0, len(leagues)),
		index:      make(map[string]int, len(leagues)*8),
		labels:     make(map[string]int, len(leagues)*3),
		matchNames: make([][]string, 0, len(leagues)),
		phrases:    make([][]string, 0, len(leagues)),
		teamIDs:    make([]map[string]string, 0, len(leagues)),
		positional: make([][]string, 0, len(leagues)),
	}

	for _, item := range leagues {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		key := fold(item.Name)
		if _, exists := r.index[key]; exists {
			return nil, fmt.Errorf("duplicate league %q", item.Name)
		}

		idx := len(r.leagues)
		l := item.clone()
		r.leagues = append(r.leagues, l)

		aliases := make([]string, 0, 2+len(l.URLKeywords)+len(l.DisplayLabels)+len(l.TextPhrases))
		aliases = append(aliases, l.Name, l.Slug)
		aliases = append(aliases, l.URLKeywords...)
		aliases = append(aliases, l.DisplayLabels...)
		aliases = append(aliases, l.TextPhrases...)
		for _, alias := range aliases {
			if k := fold(alias); k != "" {
				if _, taken := r.index[k]; !taken {
					r.index[k] = idx
				}
			}
		}
		for _, label := range append([]string{l.Name}, l.DisplayLabels...) {
			if k := fold(label); k != "" {
				r.labels[k] = idx
			}
		}

		names := l.Roster.Names()
		folded := make([]string, 0, len(names))
		for _, name := range names {
			if k := fold(name); k != "" {
				folded = append(folded, k)
			}
		}
		r.matchNames = append(r.matchNames, folded)

		phrases := make([]string, 0, len(l.TextPhrases))
		for _, phrase := range l.TextPhrases {
			if k := fold(phrase); k != "" {
				phrases = append(phrases, k)
			}
		}
		r.phrases = append(r.phrases, phrases)

		ids := make(map[string]string, len(l.Roster.Teams)+len(l.TeamIDs))
		for _, team := range l.Roster.Teams {
			ids[TeamURN(team)] = team
		}
		for id, team := range l.TeamIDs {
			ids[strings.TrimSpace(id)] = team
		}
		r.teamIDs = append(r.teamIDs, ids)
		r.positional = append(r.positional, positionalNames(l.Roster))
	}

	return r, nil
}

// Leagues returns copies of the registered leagues in registry order.
func (r *Registry) Leagues() []League {
	out := make([]League, len(r.leagues))
	for i, l := range r.leagues {
		out[i] = l.clone()
	}
	return out
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.leagues))
	for i, l := range r.leagues {
		out[i] = l.Name
	}
	return out
}

// Lookup finds a league by canonical name, ignoring case.
func (r *Registry) Lookup(name string) (League, bool) {
	idx, ok := r.indexOf(name)
	if !ok {
		return League{}, false
	}
	return r.leagues[idx].clone(), true
}

func (r *Registry) Has(name string) bool {
	_, ok := r.indexOf(name)
	return ok
}

// Resolve accepts a canonical name, slug, URL keyword, display label or heading phrase.
func (r *Registry) Resolve(value string) (League, bool) {
	idx, ok := r.index[fold(value)]
	if !ok {
		return League{}, false
	}
	return r.leagues[idx].clone(), true
}

// FromDisplayLabel maps a provider league label to a canonical league name.
func (r *Registry) FromDisplayLabel(label string) (string, bool) {
	idx, ok := r.labels[fold(label)]
	if !ok {
		return "", false
	}
	return r.leagues[idx].Name, true
}

// LeagueFromText reports the league whose heading phrase appears as whole words in line.
func (r *Registry) LeagueFromText(line string) (string, bool) {
	text := fold(line)
	if text == "" {
		return "", false
	}
	for idx, phrases := range r.phrases {
		for _, phrase := range phrases {
			if containsWords(text, phrase) {
				return r.leagues[idx].Name, true
			}
		}
	}
	return "", false
}

// TeamByID resolves a provider team identifier within a league.
func (r *Registry) TeamByID(leagueName, id string) (string, bool) {
	idx, ok := r.indexOf(leagueName)
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", false
	}
	name, ok := r.teamIDs[idx][id]
	return name, ok
}

// PositionalNames is the roster used for rank-based name repair.
func (r *Registry) PositionalNames(leagueName string) []string {
	idx, ok := r.indexOf(leagueName)
	if !ok {
		return nil
	}
	return append([]string(nil), r.positional[idx]...)
}

func (r *Registry) PositionalName(leagueName string, position int) (string, bool) {
	idx, ok := r.indexOf(leagueName)
	if !ok || position < 1 || position > len(r.positional[idx]) {
		return "", false
	}
	return r.positional[idx][position-1], true
}

// GroupOf returns the conference group a team belongs to.
func (r *Registry) GroupOf(leagueName, team string) (string, bool) {
	idx, ok := r.indexOf(leagueName)
	if !ok {
		return "", false
	}
	candidate := fold(team)
	if candidate == "" {
		return "", false
	}
	for _, group := range r.leagues[idx].Groups {
		for _, member := range group.Teams {
			if nameMatches(candidate, fold(member)) {
				return group.Name, true
			}
		}
	}
	return "", false
}

func (r *Registry) indexOf(name string) (int, bool) {
	key := fold(name)
	for i, l := range r.leagues {
		if fold(l.Name) == key {
			return i, true
		}
	}
	return 0, false
}

// TeamURN builds the provider-style identifier for a canonical team name.
func TeamURN(name string) string {
	return teamURNPrefix + Slugify(name)
}

// Slugify lowercases, strips diacritics and joins words with hyphens.
func Slugify(value string) string {
	plain, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), value)
	if err != nil {
		plain = value
	}
	plain = fold(plain)

	var b strings.Builder
	b.Grow(len(plain))
	pendingDash := false
	for _, ch := range plain {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(ch)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// positionalNames keeps canonical names in order and appends only aliases that are
// not contained in a longer canonical name.
func positionalNames(roster Roster) []string {
	out := append([]string(nil), roster.Teams...)
	for _, alias := range roster.Aliases {
		a := fold(alias)
		redundant := false
		for _, team := range roster.Teams {
			t := fold(team)
			if len(t) > len(a) && strings.Contains(t, a) {
				redundant = true
				break
			}
		}
		if !redundant {
			out = append(out, alias)
		}
	}
	return out
}

func fold(value string) string {
	return cases.Fold().String(strings.Join(strings.Fields(value), " "))
}

func containsWords(text, phrase string) bool {
	for offset := 0; offset <= len(text)-len(phrase); {
		i := strings.Index(text[offset:], phrase)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(phrase)
		if isBoundary(text, start, true) && isBoundary(text, end, false) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isBoundary(text string, pos int, before bool) bool {
	var r rune
	if before {
		if pos == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(text[:pos])
	} else {
		if pos >= len(text) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(text[pos:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
