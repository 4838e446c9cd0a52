package httpapi

import (
	"github.com/riskibarqy/football-scores/internal/domain/fixture"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/domain/standing"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

type leagueDTO struct {
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Groups     []string `json:"groups,omitempty"`
	MultiLeg   bool     `json:"multiLeg"`
	Conference bool     `json:"conference"`
}

type matchDTO struct {
	League      string   `json:"league"`
	HomeTeam    string   `json:"homeTeam"`
	AwayTeam    string   `json:"awayTeam"`
	HomeScore   int      `json:"homeScore"`
	AwayScore   int      `json:"awayScore"`
	Status      string   `json:"status"`
	Live        bool     `json:"live"`
	Time        string   `json:"time,omitempty"`
	HomeScorers []string `json:"homeScorers"`
	AwayScorers []string `json:"awayScorers"`
	HomeCards   []string `json:"homeCards"`
	AwayCards   []string `json:"awayCards"`
	IsMultiLeg  bool     `json:"isMultiLeg"`
	HomeAgg     *int     `json:"homeAgg,omitempty"`
	AwayAgg     *int     `json:"awayAgg,omitempty"`
}

type leagueMatchesDTO struct {
	League  string     `json:"league"`
	Matches []matchDTO `json:"matches"`
}

type matchesDTO struct {
	DateOffset int                `json:"dateOffset"`
	Strategy   string             `json:"strategy"`
	MatchCount int                `json:"matchCount"`
	Leagues    []leagueMatchesDTO `json:"leagues"`
}

type tableRowDTO struct {
	Position       int      `json:"position"`
	Team           string   `json:"team"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
}

type tableGroupDTO struct {
	Name string        `json:"name"`
	Rows []tableRowDTO `json:"rows"`
}

type tableDTO struct {
	League   string          `json:"league"`
	Strategy string          `json:"strategy,omitempty"`
	Rows     []tableRowDTO   `json:"rows"`
	Groups   []tableGroupDTO `json:"groups,omitempty"`
}

type overviewDTO struct {
	League     string     `json:"league"`
	DateOffset int        `json:"dateOffset"`
	Matches    []matchDTO `json:"matches"`
	Table      *tableDTO  `json:"table,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	out := leagueDTO{
		Name:       v.Name,
		Slug:       v.Slug,
		MultiLeg:   v.MultiLeg,
		Conference: v.IsConference(),
	}
	for _, g := range v.Groups {
		out.Groups = append(out.Groups, g.Name)
	}
	return out
}

func matchToDTO(v fixture.Match) matchDTO {
	return matchDTO{
		League:      v.League,
		HomeTeam:    v.HomeTeam,
		AwayTeam:    v.AwayTeam,
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		Status:      v.Status,
		Live:        fixture.IsLiveStatus(v.Status),
		Time:        v.Time,
		HomeScorers: nonNil(v.HomeScorers),
		AwayScorers: nonNil(v.AwayScorers),
		HomeCards:   nonNil(v.HomeCards),
		AwayCards:   nonNil(v.AwayCards),
		IsMultiLeg:  v.IsMultiLeg,
		HomeAgg:     v.HomeAgg,
		AwayAgg:     v.AwayAgg,
	}
}

func matchListToDTO(items []fixture.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func matchesToDTO(v usecase.MatchesResult) matchesDTO {
	out := matchesDTO{
		DateOffset: v.DateOffset,
		Strategy:   v.Strategy,
		MatchCount: v.MatchCount(),
		Leagues:    make([]leagueMatchesDTO, 0, len(v.Leagues)),
	}
	for _, item := range v.Leagues {
		out.Leagues = append(out.Leagues, leagueMatchesDTO{
			League:  item.League,
			Matches: matchListToDTO(item.Matches),
		})
	}
	return out
}

func rowsToDTO(rows []standing.TableRow) []tableRowDTO {
	out := make([]tableRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, tableRowDTO{
			Position:       row.Position,
			Team:           row.Team,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Form:           nonNil(row.Form),
		})
	}
	return out
}

func standingToDTO(table standing.Table, strategy string) tableDTO {
	out := tableDTO{
		League:   table.League,
		Strategy: strategy,
		Rows:     rowsToDTO(table.Rows),
	}
	for _, g := range table.Groups {
		out.Groups = append(out.Groups, tableGroupDTO{Name: g.Name, Rows: rowsToDTO(g.Rows)})
	}
	return out
}

func tableToDTO(v usecase.TableResult) tableDTO {
	out := standingToDTO(v.Table, v.Strategy)
	if out.League == "" {
		out.League = v.League
	}
	return out
}

func overviewToDTO(v usecase.LeagueOverview) overviewDTO {
	out := overviewDTO{
		League:     v.League,
		DateOffset: v.DateOffset,
		Matches:    matchListToDTO(v.Matches),
	}
	if v.Table != nil {
		table := standingToDTO(*v.Table, "")
		out.Table = &table
	}
	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
