package league

import "strings"

// IdentifyLeague returns the first league whose roster matches both team names.
// A name matches a roster entry on case-insensitive equality, or when either
// contains the other. Pairs that only match across different leagues are rejected.
// LabelOnly leagues are skipped.
func (r *Registry) IdentifyLeague(home, away string) (string, bool) {
	h := fold(home)
	a := fold(away)
	if h == "" || a == "" {
		return "", false
	}

	for idx, names := range r.matchNames {
		if r.leagues[idx].LabelOnly {
			continue
		}
		if rosterMatches(names, h) && rosterMatches(names, a) {
			return r.leagues[idx].Name, true
		}
	}
	return "", false
}

// TeamInAnyLeague reports whether a name matches at least one roster.
func (r *Registry) TeamInAnyLeague(name string) bool {
	n := fold(name)
	if n == "" {
		return false
	}
	for idx, names := range r.matchNames {
		if r.leagues[idx].LabelOnly {
			continue
		}
		if rosterMatches(names, n) {
			return true
		}
	}
	return false
}

// TeamInLeague reports whether a name matches the named league's roster. The
// second result is false when the league is unknown or has no roster to check.
func (r *Registry) TeamInLeague(leagueName, team string) (matched bool, checked bool) {
	idx, ok := r.indexOf(leagueName)
	if !ok || len(r.matchNames[idx]) == 0 {
		return false, false
	}
	n := fold(team)
	if n == "" {
		return false, true
	}
	return rosterMatches(r.matchNames[idx], n), true
}

func rosterMatches(names []string, candidate string) bool {
	for _, name := range names {
		if nameMatches(candidate, name) {
			return true
		}
	}
	return false
}

func nameMatches(candidate, name string) bool {
	return candidate == name || strings.Contains(candidate, name) || strings.Contains(name, candidate)
}
