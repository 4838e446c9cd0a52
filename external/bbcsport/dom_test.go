package bbcsport

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
)

func TestMatchesFromContainers(t *testing.T) {
	t.Parallel()

	doc := docFromHTML(t, `<html><body>
<ul>
  <li class="fixture-row">
    <div data-testid="match-block-1">
      <span class="team-name">Arsenal</span>
      <span class="Score">2</span>
      <span class="Score">0</span>
      <span class="team-name">Chelsea</span>
      <span>FT</span>
    </div>
  </li>
  <li class="fixture-row">
    <div data-testid="match-block-2">
      <span class="team-name">Real Madrid</span>
      <span class="Score"><span class="number">1</span></span>
      <span class="Score"><span class="number">1</span></span>
      <span class="team-name">Barcelona</span>
      <span>LIVE</span>
    </div>
  </li>
  <li class="fixture-row">
    <div data-testid="match-block-3">
      <span class="team-name">Random FC</span>
      <span class="Score">3</span>
      <span class="Score">3</span>
      <span class="team-name">Other Town</span>
    </div>
  </li>
  <li class="fixture-row">
    <div data-testid="match-block-4">
      <span class="team-name">Everton</span>
      <span class="team-name">Fulham</span>
      <span>20:00</span>
    </div>
  </li>
</ul>
</body></html>`)

	matches, err := newTestExtractor().MatchesFromContainers(doc)
	if err != nil {
		t.Fatalf("MatchesFromContainers returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected two tracked blocks, got %+v", matches)
	}

	pl := matches[0]
	if pl.League != "Premier League" || pl.HomeTeam != "Arsenal" || pl.AwayTeam != "Chelsea" {
		t.Fatalf("unexpected first block: %+v", pl)
	}
	if pl.HomeScore != 2 || pl.AwayScore != 0 || pl.Status != fixture.StatusFinished {
		t.Fatalf("unexpected first block score: %+v", pl)
	}

	clasico := matches[1]
	if clasico.League != "La Liga" || clasico.HomeScore != 1 || clasico.AwayScore != 1 || clasico.Status != fixture.StatusLive {
		t.Fatalf("unexpected second block: %+v", clasico)
	}
}

func TestMatchesFromContainers_NoBlocks(t *testing.T) {
	t.Parallel()

	_, err := newTestExtractor().MatchesFromContainers(docFromHTML(t, `<div class="nothing"></div>`))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContainerStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Arsenal 1 0 Chelsea Half time": fixture.StatusHalfTime,
		"Arsenal 1 0 Chelsea HT":        fixture.StatusHalfTime,
		"Arsenal 1 0 Chelsea LIVE":      fixture.StatusLive,
		"Arsenal 1 0 Chelsea":           fixture.StatusFinished,
	}
	for text, want := range cases {
		if got := containerStatus(text); got != want {
			t.Fatalf("containerStatus(%q) = %q, want %q", text, got, want)
		}
	}
}
