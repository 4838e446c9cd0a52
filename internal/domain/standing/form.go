package standing

import (
	"strings"
	"unicode"
)

const maxFormResults = 5

// DecodeForm turns a raw form guide into at most the five most recent W/D/L
// results, oldest first. raw may be a string ("WDL-W", "W,D,L" or "W D L") or a
// list of strings or tagged result objects. Placeholders are dropped.
func DecodeForm(raw any) []string {
	var tokens []string
	switch typed := raw.(type) {
	case string:
		tokens = splitFormString(typed)
	case []string:
		tokens = typed
	case []any:
		tokens = make([]string, 0, len(typed))
		for _, item := range typed {
			switch v := item.(type) {
			case string:
				tokens = append(tokens, v)
			case map[string]any:
				tokens = append(tokens, formEntryValue(v))
			}
		}
	case map[string]any:
		if nested, ok := typed["data"]; ok {
			return DecodeForm(nested)
		}
		tokens = splitFormString(formEntryValue(typed))
	default:
		return []string{}
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if result, ok := formResult(token); ok {
			out = append(out, result)
		}
	}
	if len(out) > maxFormResults {
		out = out[len(out)-maxFormResults:]
	}
	return out
}

func formEntryValue(entry map[string]any) string {
	for _, key := range []string{"result", "form", "value", "outcome"} {
		if v, ok := entry[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func splitFormString(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, ", |") {
		return strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == '|' || unicode.IsSpace(r)
		})
	}
	out := make([]string, 0, len(value))
	for _, r := range value {
		out = append(out, string(r))
	}
	return out
}

func formResult(token string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "W", "WIN", "WON":
		return "W", true
	case "D", "DRAW", "DRAWN":
		return "D", true
	case "L", "LOSS", "LOSE", "LOST":
		return "L", true
	default:
		return "", false
	}
}
