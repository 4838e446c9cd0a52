package league

import (
	"fmt"
	"strings"
)

// League is one competition the scraper tracks.
type League struct {
	Name string
	// Slug is the provider URL keyword used for the league's table page.
	Slug          string
	URLKeywords   []string
	DisplayLabels []string
	// TextPhrases mark a league heading in page text.
	TextPhrases []string
	Roster      Roster
	// TeamIDs maps provider team identifiers to canonical names.
	TeamIDs  map[string]string
	Groups   []Group
	MultiLeg bool
	// LabelOnly leagues are attributed from provider labels and never from rosters.
	LabelOnly bool
}

// Roster lists a league's canonical team names in table order followed by known aliases.
type Roster struct {
	Teams   []string
	Aliases []string
}

// Group is a named subdivision of a conference-style league.
type Group struct {
	Name  string
	Teams []string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.Slug) == "" {
		return fmt.Errorf("league %q slug is required", l.Name)
	}
	if len(l.Roster.Teams) == 0 {
		return fmt.Errorf("league %q roster is empty", l.Name)
	}
	for _, group := range l.Groups {
		if strings.TrimSpace(group.Name) == "" {
			return fmt.Errorf("league %q has an unnamed group", l.Name)
		}
	}
	return nil
}

// IsConference reports whether the league's table is split into named groups.
func (l League) IsConference() bool {
	return len(l.Groups) > 1
}

// Names returns canonical names followed by aliases.
func (r Roster) Names() []string {
	out := make([]string, 0, len(r.Teams)+len(r.Aliases))
	out = append(out, r.Teams...)
	out = append(out, r.Aliases...)
	return out
}

func (l League) clone() League {
	out := l
	out.URLKeywords = append([]string(nil), l.URLKeywords...)
	out.DisplayLabels = append([]string(nil), l.DisplayLabels...)
	out.TextPhrases = append([]string(nil), l.TextPhrases...)
	out.Roster = Roster{
		Teams:   append([]string(nil), l.Roster.Teams...),
		Aliases: append([]string(nil), l.Roster.Aliases...),
	}
	if l.TeamIDs != nil {
		out.TeamIDs = make(map[string]string, len(l.TeamIDs))
		for k, v := range l.TeamIDs {
			out.TeamIDs[k] = v
		}
	}
	if l.Groups != nil {
		out.Groups = make([]Group, len(l.Groups))
		for i, g := range l.Groups {
			out.Groups[i] = Group{Name: g.Name, Teams: append([]string(nil), g.Teams...)}
		}
	}
	return out
}
