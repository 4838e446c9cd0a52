package bbcsport

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

const fixturesInfix = "sport-data-scores-fixtures"

// Table payload keys, in preference order.
var tableInfixes = []string{"football-table", "sport-data-table", "standings", "table"}

// Keys that may directly hold standings entries.
var standingsListKeys = []string{"participants", "standings", "tableRows", "rows", "teams", "entries", "table"}

// payload is the decoded initial-data object together with the order of the
// keys in its opaque data map.
type payload struct {
	data map[string]any
	keys []string
}

func decodePayload(blob string) (payload, error) {
	root, err := sonic.GetFromString(blob)
	if err != nil {
		return payload{}, malformed(err, "decode initial data")
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return payload{}, malformedf("initial data is not an object")
	}

	node := root.Get("data")
	if node == nil {
		return payload{}, notFoundf("initial data has no data map")
	}
	if err := node.Check(); err != nil {
		return payload{}, malformed(err, "decode initial data")
	}
	switch node.TypeSafe() {
	case ast.V_NULL:
		return payload{}, notFoundf("initial data has no data map")
	case ast.V_OBJECT:
	default:
		return payload{}, malformedf("initial data: data is not an object")
	}

	// One pass over the data node yields both the key order and the values.
	p := payload{data: map[string]any{}}
	var decodeErr error
	if err := node.ForEach(func(path ast.Sequence, value *ast.Node) bool {
		if path.Key == nil {
			return true
		}
		v, err := value.Interface()
		if err != nil {
			decodeErr = malformed(err, "decode data["+*path.Key+"]")
			return false
		}
		if _, seen := p.data[*path.Key]; !seen {
			p.keys = append(p.keys, *path.Key)
		}
		p.data[*path.Key] = v
		return true
	}); err != nil {
		return payload{}, malformed(err, "scan data keys")
	}
	if decodeErr != nil {
		return payload{}, decodeErr
	}
	return p, nil
}

// section returns the first data entry, in document order, whose key contains infix.
func (p payload) section(infix string) (string, map[string]any, error) {
	for _, key := range p.keys {
		if !strings.Contains(key, infix) {
			continue
		}
		raw := p.data[key]
		m, ok := raw.(map[string]any)
		if !ok {
			return key, nil, malformedf("data[%s] is %T", key, raw)
		}
		return key, m, nil
	}
	return "", nil, notFoundf("no data key containing %q", infix)
}

type eventGroup struct {
	label  string
	events []map[string]any
}

// fixtureGroups walks data[<fixtures key>].data.eventGroups[].secondaryGroups[].events[].
func (p payload) fixtureGroups() ([]eventGroup, error) {
	key, sec, err := p.section(fixturesInfix)
	if err != nil {
		return nil, err
	}
	groups, ok, err := listAt(sec, "data", "eventGroups")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundf("data[%s] has no eventGroups", key)
	}

	out := make([]eventGroup, 0, len(groups))
	for _, rawGroup := range groups {
		group, ok := rawGroup.(map[string]any)
		if !ok {
			return nil, malformedf("eventGroups entry is %T", rawGroup)
		}
		label, _, err := stringAt(group, "displayLabel")
		if err != nil {
			return nil, err
		}
		secondaries, _, err := listAt(group, "secondaryGroups")
		if err != nil {
			return nil, err
		}
		eg := eventGroup{label: label}
		for _, rawSecondary := range secondaries {
			secondary, ok := rawSecondary.(map[string]any)
			if !ok {
				return nil, malformedf("secondaryGroups entry is %T", rawSecondary)
			}
			events, _, err := listAt(secondary, "events")
			if err != nil {
				return nil, err
			}
			for _, rawEvent := range events {
				event, ok := rawEvent.(map[string]any)
				if !ok {
					// Not an event object; the event is skipped like any malformed event.
					continue
				}
				eg.events = append(eg.events, event)
			}
		}
		out = append(out, eg)
	}
	return out, nil
}

type standingsGroup struct {
	name    string
	entries []map[string]any
}

// tableGroups finds standings entries under the first table-shaped data key.
// Tournament payloads yield one group per round (or stage when a stage has a
// single round).
func (p payload) tableGroups() ([]standingsGroup, error) {
	var lastErr error
	for _, infix := range tableInfixes {
		_, sec, err := p.section(infix)
		if err != nil {
			lastErr = err
			continue
		}
		if groups := standingsIn(sec); len(groups) > 0 {
			return groups, nil
		}
		if inner, ok := sec["data"].(map[string]any); ok {
			if groups := standingsIn(inner); len(groups) > 0 {
				return groups, nil
			}
		}
	}
	if lastErr == nil {
		lastErr = notFoundf("no standings entries")
	}
	return nil, lastErr
}

func standingsIn(obj map[string]any) []standingsGroup {
	if groups := tournamentGroups(obj); len(groups) > 0 {
		return groups
	}
	if groups := namedGroups(obj); len(groups) > 0 {
		return groups
	}
	for _, key := range standingsListKeys {
		list, ok := obj[key].([]any)
		if !ok {
			continue
		}
		if entries := asMaps(list); len(entries) > 0 {
			return []standingsGroup{{entries: entries}}
		}
	}
	return nil
}

func tournamentGroups(obj map[string]any) []standingsGroup {
	tournaments, ok := obj["tournaments"].([]any)
	if !ok || len(tournaments) == 0 {
		return nil
	}
	tournament, ok := tournaments[0].(map[string]any)
	if !ok {
		return nil
	}
	stages, _ := tournament["stages"].([]any)

	var out []standingsGroup
	for _, stage := range asMaps(stages) {
		stageName := lenientString(stage, "name", "displayName")
		rounds := asMaps(asList(stage["rounds"]))
		for _, round := range rounds {
			entries := asMaps(asList(round["participants"]))
			if len(entries) == 0 {
				continue
			}
			name := lenientString(round, "name", "displayName")
			if name == "" || len(rounds) == 1 {
				name = firstNonEmpty(stageName, name)
			}
			out = append(out, standingsGroup{name: name, entries: entries})
		}
	}
	return out
}

func namedGroups(obj map[string]any) []standingsGroup {
	groups, ok := obj["groups"].([]any)
	if !ok {
		return nil
	}
	var out []standingsGroup
	for _, group := range asMaps(groups) {
		for _, key := range standingsListKeys {
			entries := asMaps(asList(group[key]))
			if len(entries) > 0 {
				out = append(out, standingsGroup{name: lenientString(group, "name", "displayName", "title"), entries: entries})
				break
			}
		}
	}
	return out
}

func asList(raw any) []any {
	list, _ := raw.([]any)
	return list
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
