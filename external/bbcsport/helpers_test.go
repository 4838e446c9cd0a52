package bbcsport

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
)

func newTestExtractor() *Extractor {
	return NewExtractor(ExtractorConfig{Registry: league.Default(), Logger: logging.NewNop()})
}

func docFromHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// pageWithBlob embeds raw JSON the way the provider does.
func pageWithBlob(t *testing.T, rawJSON string) *goquery.Document {
	t.Helper()
	return docFromHTML(t, `<html><head><script>window.__INITIAL_DATA__="`+EscapeBlob(rawJSON)+`";</script></head><body></body></html>`)
}

func pageWithData(t *testing.T, data map[string]any) *goquery.Document {
	t.Helper()
	raw, err := sonic.MarshalString(map[string]any{"data": data})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return pageWithBlob(t, raw)
}

func fixturesPayload(label string, events ...map[string]any) map[string]any {
	list := make([]any, 0, len(events))
	for _, e := range events {
		list = append(list, e)
	}
	return map[string]any{
		"sport-data-scores-fixtures?date=today": map[string]any{
			"data": map[string]any{
				"eventGroups": []any{
					map[string]any{
						"displayLabel":    label,
						"secondaryGroups": []any{map[string]any{"events": list}},
					},
				},
			},
		},
	}
}
