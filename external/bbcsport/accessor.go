package bbcsport

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Strict accessors: a missing key reports ok=false, a value of the wrong type
// reports an ErrMalformed error. JSON null counts as missing.

func valueAt(obj map[string]any, path ...string) (any, bool) {
	var current any = obj
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

func mapAt(obj map[string]any, path ...string) (map[string]any, bool, error) {
	raw, ok := valueAt(obj, path...)
	if !ok {
		return nil, false, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false, malformedf("%s: expected object, got %T", strings.Join(path, "."), raw)
	}
	return m, true, nil
}

func listAt(obj map[string]any, path ...string) ([]any, bool, error) {
	raw, ok := valueAt(obj, path...)
	if !ok {
		return nil, false, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, false, malformedf("%s: expected list, got %T", strings.Join(path, "."), raw)
	}
	return list, true, nil
}

func stringAt(obj map[string]any, path ...string) (string, bool, error) {
	raw, ok := valueAt(obj, path...)
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, malformedf("%s: expected string, got %T", strings.Join(path, "."), raw)
	}
	return strings.TrimSpace(s), true, nil
}

// firstString returns the first present, non-empty string among paths.
func firstString(obj map[string]any, paths ...[]string) (string, bool, error) {
	for _, path := range paths {
		s, ok, err := stringAt(obj, path...)
		if err != nil {
			return "", false, err
		}
		if ok && s != "" {
			return s, true, nil
		}
	}
	return "", false, nil
}

// countAt reads a non-negative integer that may be encoded as a number or a
// numeric string. Empty strings count as missing.
func countAt(obj map[string]any, path ...string) (int, bool, error) {
	raw, ok := valueAt(obj, path...)
	if !ok {
		return 0, false, nil
	}
	var value int
	switch typed := raw.(type) {
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false, malformedf("%s: non-integer %v", strings.Join(path, "."), typed)
		}
		value = int(typed)
	case int:
		value = typed
	case int64:
		value = int(typed)
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return 0, false, nil
		}
		parsed, err := strconv.Atoi(text)
		if err != nil {
			return 0, false, malformed(err, strings.Join(path, "."))
		}
		value = parsed
	default:
		return 0, false, malformedf("%s: expected number, got %T", strings.Join(path, "."), raw)
	}
	if value < 0 {
		return 0, false, malformedf("%s: negative value %d", strings.Join(path, "."), value)
	}
	return value, true, nil
}

// Lenient accessors used by the table normalizer, where a bad cell defaults to
// zero instead of discarding the row.

func lenientInt(raw any) (int, bool) {
	switch typed := raw.(type) {
	case float64:
		return int(typed), true
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case string:
		text := strings.TrimPrefix(strings.TrimSpace(typed), "+")
		v, err := strconv.Atoi(text)
		if err != nil {
			return 0, false
		}
		return v, true
	case map[string]any:
		for _, key := range []string{"value", "total", "all", "overall"} {
			if v, ok := lenientInt(typed[key]); ok {
				return v, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// intAny returns the first key whose value parses as an integer, searching each
// source map in order.
func intAny(sources []map[string]any, keys ...string) (int, bool) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, key := range keys {
			if v, ok := lenientInt(src[key]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func lenientString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch typed := obj[key].(type) {
		case string:
			if s := strings.TrimSpace(typed); s != "" {
				return s
			}
		case float64:
			return strconv.FormatInt(int64(typed), 10)
		}
	}
	return ""
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func asMaps(list []any) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
