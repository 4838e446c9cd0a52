package fixture

import (
	"strings"
)

const (
	StatusNotStarted = ""
	StatusLive       = "LIVE"
	StatusHalfTime   = "HT"
	StatusExtraTime  = "ET"
	StatusFinished   = "FT"
	StatusPenalties  = "PENS"
	StatusPostponed  = "POSTPONED"
)

// Match is one normalized fixture. Scorer and card entries are display strings
// such as "Kane 23'" or "Saka 45' (pen)".
type Match struct {
	League      string `validate:"required"`
	HomeTeam    string `validate:"required"`
	AwayTeam    string `validate:"required"`
	HomeScore   int    `validate:"gte=0"`
	AwayScore   int    `validate:"gte=0"`
	Status      string `validate:"match_status"`
	HomeScorers []string
	AwayScorers []string
	HomeCards   []string
	AwayCards   []string
	Time        string
	IsMultiLeg  bool
	HomeAgg     *int `validate:"omitempty,gte=0"`
	AwayAgg     *int `validate:"omitempty,gte=0"`
}

// HasAggregate reports whether both aggregate scores are known.
func (m Match) HasAggregate() bool {
	return m.IsMultiLeg && m.HomeAgg != nil && m.AwayAgg != nil
}

// NormalizeStatus maps provider status spellings onto the match status set.
// A live-minute token such as "67'" or "45'+2" is kept verbatim.
func NormalizeStatus(value string) string {
	status := strings.TrimSpace(value)
	if IsMinuteStatus(status) {
		return status
	}
	switch strings.ToUpper(status) {
	case "":
		return StatusNotStarted
	case "LIVE", "IN_PLAY", "INPLAY", "1H", "2H":
		return StatusLive
	case "HT", "HALF TIME", "HALF-TIME", "HALFTIME":
		return StatusHalfTime
	case "ET", "EXTRA TIME", "AET":
		return StatusExtraTime
	case "FT", "FULL TIME", "FULL-TIME", "FULLTIME", "FINISHED":
		return StatusFinished
	case "PENS", "PEN", "PENALTIES":
		return StatusPenalties
	case "POSTPONED", "PPD":
		return StatusPostponed
	default:
		return strings.ToUpper(status)
	}
}

// IsMinuteStatus reports whether status is a live-minute token. Any label
// with an apostrophe counts, so stoppage-time spellings like "45'+2" and
// "90'+4'" are kept.
func IsMinuteStatus(status string) bool {
	return len(status) >= 2 && strings.Contains(status, "'")
}

func IsLiveStatus(status string) bool {
	if IsMinuteStatus(status) {
		return true
	}
	switch NormalizeStatus(status) {
	case StatusLive, StatusHalfTime, StatusExtraTime:
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, StatusPenalties:
		return true
	default:
		return false
	}
}

func IsKnownStatus(status string) bool {
	if IsMinuteStatus(status) {
		return true
	}
	switch status {
	case StatusNotStarted, StatusLive, StatusHalfTime, StatusExtraTime, StatusFinished, StatusPenalties, StatusPostponed:
		return true
	default:
		return false
	}
}
