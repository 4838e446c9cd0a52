package bbcsport

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const initialDataMarker = "__INITIAL_DATA__"

var initialDataRegex = regexp.MustCompile(`(?s)window\.__INITIAL_DATA__="((?:[^"\\]|\\.)*)"\s*(?:;|$)`)

// LocateBlob returns the unescaped JSON text embedded in the page's initial-data
// script. The JSON is not validated here.
func LocateBlob(doc *goquery.Document) (string, error) {
	if doc == nil {
		return "", notFoundf("no document")
	}

	var (
		blob  string
		found bool
	)
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, initialDataMarker) {
			return true
		}
		match := initialDataRegex.FindStringSubmatch(strings.TrimSpace(text))
		if match == nil {
			return true
		}
		blob = UnescapeBlob(match[1])
		found = true
		return false
	})
	if !found {
		return "", notFoundf("no %s script", initialDataMarker)
	}
	return blob, nil
}

// UnescapeBlob undoes the escaping applied to the embedded JSON string:
// escaped quotes first, then escaped backslashes.
func UnescapeBlob(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}

// EscapeBlob is the inverse of UnescapeBlob.
func EscapeBlob(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
