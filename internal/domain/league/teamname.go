package league

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	leadingArtifactRegex  = regexp.MustCompile(`(?i)^(show scorers|scroll|full time|ft|live|ht|at)\s+`)
	trailingArtifactRegex = regexp.MustCompile(`(?i)\s+(full time|ft|live|ht|at)\b.*$`)
)

type clubPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Known page concatenation artifacts, checked in order.
var concatenationFixes = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)BournemouthAFC Bournemouth`), "AFC Bournemouth"},
	{regexp.MustCompile(`(?i)BrentfordBrentford.*`), "Brentford"},
	{regexp.MustCompile(`(?i)ArsenalArsenal.*`), "Arsenal"},
	{regexp.MustCompile(`(?i)ChelseaChelsea.*`), "Chelsea"},
	{regexp.MustCompile(`(?i)LiverpoolLiverpool.*`), "Liverpool"},
	{regexp.MustCompile(`(?i)(?:manchester|man)\s*city.*(?:manchester|man).*city.*`), "Manchester City"},
	{regexp.MustCompile(`(?i)(?:manchester|man)\s*united.*(?:manchester|man).*united.*`), "Manchester United"},
}

var clubPatterns = []clubPattern{
	{"Arsenal", regexp.MustCompile(`(?i)Arsenal.*Arsenal`)},
	{"Chelsea", regexp.MustCompile(`(?i)Chelsea.*Chelsea`)},
	{"Liverpool", regexp.MustCompile(`(?i)Liverpool.*Liverpool`)},
	{"Manchester City", regexp.MustCompile(`(?i)(Man City|Manchester City).*Manchester.*City`)},
	{"Manchester United", regexp.MustCompile(`(?i)(Man United|Manchester United).*Manchester.*United`)},
	{"Tottenham Hotspur", regexp.MustCompile(`(?i)Tottenham.*Tottenham|Spurs.*Spurs`)},
	{"Brighton & Hove Albion", regexp.MustCompile(`(?i)Brighton.*Brighton`)},
	{"Newcastle United", regexp.MustCompile(`(?i)Newcastle.*Newcastle`)},
	{"West Ham United", regexp.MustCompile(`(?i)West Ham.*West Ham`)},
	{"Leicester City", regexp.MustCompile(`(?i)Leicester.*Leicester`)},
	{"Aston Villa", regexp.MustCompile(`(?i)Aston Villa.*Aston Villa`)},
	{"Crystal Palace", regexp.MustCompile(`(?i)Crystal Palace.*Crystal Palace`)},
	{"Wolverhampton Wanderers", regexp.MustCompile(`(?i)Wolves.*Wolves|Wolverhampton.*Wolverhampton`)},
	{"AFC Bournemouth", regexp.MustCompile(`(?i)Bournemouth.*Bournemouth|AFC Bournemouth.*Bournemouth`)},
	{"Brentford", regexp.MustCompile(`(?i)Brentford.*Brentford`)},
	{"Everton", regexp.MustCompile(`(?i)Everton.*Everton`)},
	{"Fulham", regexp.MustCompile(`(?i)Fulham.*Fulham`)},
	{"Southampton", regexp.MustCompile(`(?i)Southampton.*Southampton`)},
	{"Nottingham Forest", regexp.MustCompile(`(?i)Nottingham Forest.*Forest|Forest.*Forest`)},
	{"Burnley", regexp.MustCompile(`(?i)Burnley.*Burnley`)},
}

var clubNames = func() map[string]struct{} {
	out := make(map[string]struct{}, len(clubPatterns))
	for _, c := range clubPatterns {
		out[c.name] = struct{}{}
	}
	return out
}()

// CleanTeamName strips page artifacts and duplicated fragments from a raw team name.
// CleanTeamName(CleanTeamName(s)) == CleanTeamName(s) for every s.
func CleanTeamName(raw string) string {
	current := raw
	// Every pass either maps to a fixed club name or shortens the string.
	for i := 0; i <= len(raw)+1; i++ {
		next := cleanOnce(current)
		if next == current {
			return next
		}
		current = next
	}
	return current
}

func cleanOnce(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}

	name = leadingArtifactRegex.ReplaceAllString(name, "")
	name = trailingArtifactRegex.ReplaceAllString(name, "")
	name = collapseRepeatedTokens(name)

	for _, fix := range concatenationFixes {
		name = fix.pattern.ReplaceAllString(name, fix.replacement)
	}

	for _, club := range clubPatterns {
		if club.pattern.MatchString(name) {
			return club.name
		}
	}
	if _, ok := clubNames[name]; ok {
		return name
	}

	return collapseDuplicateWords(name)
}

// collapseRepeatedTokens turns a word made of one unit repeated back to back,
// such as "BrentfordBrentford", into the unit.
func collapseRepeatedTokens(name string) string {
	words := strings.Fields(name)
	changed := false
	for i, word := range words {
		if unit, ok := repeatedUnit(word); ok {
			words[i] = unit
			changed = true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(words, " ")
}

func repeatedUnit(word string) (string, bool) {
	n := utf8.RuneCountInString(word)
	if n < 6 {
		return "", false
	}
	runes := []rune(word)
	for size := 3; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		unit := string(runes[:size])
		if !isWordUnit(unit) {
			continue
		}
		if strings.EqualFold(strings.Repeat(unit, n/size), word) {
			return unit, true
		}
	}
	return "", false
}

func isWordUnit(unit string) bool {
	for _, r := range unit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func collapseDuplicateWords(name string) string {
	words := strings.Fields(name)
	if len(words) < 2 {
		return name
	}
	out := words[:1]
	for _, word := range words[1:] {
		if strings.EqualFold(word, out[len(out)-1]) {
			continue
		}
		out = append(out, word)
	}
	return strings.Join(out, " ")
}
