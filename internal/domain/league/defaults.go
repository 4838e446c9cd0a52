package league

// Season 2025-26 rosters. Canonical names are listed in the order the positional
// repair uses; aliases follow.
func builtinLeagues() []League {
	return []League{
		{
			Name:          "Premier League",
			Slug:          "premier-league",
			URLKeywords:   []string{"premier-league", "english-premier-league", "epl"},
			DisplayLabels: []string{"English Premier League"},
			TextPhrases:   []string{"premier league", "english premier league", "epl"},
			Roster: Roster{
				Teams: []string{
					"Arsenal", "Aston Villa", "AFC Bournemouth", "Brentford", "Brighton & Hove Albion",
					"Chelsea", "Crystal Palace", "Everton", "Fulham", "Leicester City",
					"Liverpool", "Manchester City", "Manchester United", "Newcastle United",
					"Nottingham Forest", "Southampton", "Tottenham Hotspur", "West Ham United",
					"Wolverhampton Wanderers", "Burnley",
				},
				Aliases: []string{"Brighton", "Bournemouth", "Tottenham", "West Ham", "Wolves", "Man City", "Man United", "Newcastle"},
			},
		},
		{
			Name:          "La Liga",
			Slug:          "spanish-la-liga",
			URLKeywords:   []string{"spanish-la-liga", "la-liga", "primera-division"},
			DisplayLabels: []string{"Spanish La Liga"},
			TextPhrases:   []string{"la liga", "spanish la liga", "primera division"},
			Roster: Roster{
				Teams: []string{
					"Real Madrid", "Barcelona", "Atlético Madrid", "Athletic Club", "Real Sociedad",
					"Real Betis", "Villarreal", "Valencia", "Sevilla", "Girona", "Mallorca",
					"Getafe", "Celta de Vigo", "Osasuna", "Rayo Vallecano", "Las Palmas",
					"Deportivo Alavés", "Espanyol", "Valladolid", "Leganés",
				},
				Aliases: []string{"Atletico Madrid", "Celta Vigo", "Athletic Bilbao", "Alaves", "Real Valladolid"},
			},
		},
		{
			Name:          "Serie A",
			Slug:          "italian-serie-a",
			URLKeywords:   []string{"italian-serie-a", "serie-a"},
			DisplayLabels: []string{"Italian Serie A"},
			TextPhrases:   []string{"serie a", "italian serie a"},
			Roster: Roster{
				Teams: []string{
					"Juventus", "Inter Milan", "AC Milan", "Napoli", "AS Roma", "Lazio",
					"Atalanta", "Fiorentina", "Bologna", "Torino", "Genoa", "Empoli",
					"Hellas Verona", "Cagliari", "Udinese", "Parma", "Lecce", "Como",
					"Venezia", "Monza",
				},
				Aliases: []string{"Inter", "Milan", "Roma", "Verona"},
			},
		},
		{
			Name:          "Bundesliga",
			Slug:          "german-bundesliga",
			URLKeywords:   []string{"german-bundesliga", "bundesliga"},
			DisplayLabels: []string{"German Bundesliga"},
			TextPhrases:   []string{"bundesliga", "german bundesliga"},
			Roster: Roster{
				Teams: []string{
					"Bayern Munich", "Borussia Dortmund", "RB Leipzig", "Bayer Leverkusen",
					"Eintracht Frankfurt", "VfB Stuttgart", "VfL Wolfsburg", "SC Freiburg",
					"Borussia Mönchengladbach", "Union Berlin", "Werder Bremen", "FC Augsburg",
					"TSG Hoffenheim", "FSV Mainz 05", "FC Heidenheim", "FC St. Pauli",
					"Holstein Kiel", "VfL Bochum",
				},
				Aliases: []string{
					"Dortmund", "Leipzig", "Leverkusen", "Frankfurt", "Stuttgart", "Wolfsburg",
					"Freiburg", "Gladbach", "Mönchengladbach", "Bremen", "Augsburg", "Hoffenheim", "Mainz",
					"Heidenheim", "St. Pauli", "Kiel", "Bochum",
				},
			},
		},
		{
			Name:          "Ligue 1",
			Slug:          "french-ligue-one",
			URLKeywords:   []string{"french-ligue-one", "french-ligue-1", "ligue-1"},
			DisplayLabels: []string{"French Ligue 1"},
			TextPhrases:   []string{"ligue 1", "french ligue 1"},
			Roster: Roster{
				Teams: []string{
					"Paris Saint-Germain", "AS Monaco", "Olympique Marseille", "Lille",
					"Olympique Lyonnais", "Stade Rennais", "OGC Nice", "RC Lens",
					"Stade Brestois", "Montpellier", "FC Nantes", "RC Strasbourg",
					"Stade de Reims", "Toulouse FC", "AJ Auxerre", "Angers SCO",
					"Le Havre AC", "AS Saint-Étienne",
				},
				Aliases: []string{
					"PSG", "Paris", "Monaco", "Marseille", "Lyon", "Rennes", "Nice", "Lens",
					"Brest", "Nantes", "Strasbourg", "Reims", "Toulouse", "Auxerre",
					"Angers", "Le Havre", "Saint-Etienne", "Saint-Étienne",
				},
			},
		},
		{
			Name:          "Primeira Liga",
			Slug:          "portuguese-primeira-liga",
			URLKeywords:   []string{"portuguese-primeira-liga", "primeira-liga"},
			DisplayLabels: []string{"Portuguese Primeira Liga"},
			TextPhrases:   []string{"primeira liga", "portuguese primeira liga"},
			Roster: Roster{
				Teams: []string{
					"SL Benfica", "FC Porto", "Sporting CP", "SC Braga", "Vitória SC",
					"Rio Ave FC", "Moreirense FC", "FC Famalicão", "Gil Vicente FC",
					"Boavista FC", "Estrela da Amadora", "Casa Pia AC", "FC Arouca",
					"GD Chaves", "SC Farense", "CD Nacional", "AVS", "Santa Clara",
				},
				Aliases: []string{
					"Benfica", "Porto", "Sporting", "Braga", "Vitória Guimarães", "Vitoria Guimaraes",
					"Rio Ave", "Moreirense", "Famalicão", "Famalicao", "Gil Vicente", "Boavista",
					"Casa Pia", "Arouca", "Chaves", "Farense", "Nacional",
				},
			},
		},
		{
			Name:          "Champions League",
			Slug:          "champions-league",
			URLKeywords:   []string{"champions-league", "uefa-champions-league", "ucl"},
			DisplayLabels: []string{"UEFA Champions League"},
			TextPhrases:   []string{"champions league", "uefa champions league"},
			MultiLeg:      true,
			LabelOnly:     true,
			Roster: Roster{
				Teams: []string{
					"Arsenal", "Bayern Munich", "Liverpool", "Tottenham Hotspur", "Barcelona",
					"Chelsea", "Sporting CP", "Manchester City", "Real Madrid", "Inter Milan",
					"Paris Saint-Germain", "Newcastle United", "Juventus", "Atlético Madrid",
					"Atalanta", "Bayer Leverkusen", "Borussia Dortmund", "Olympiacos",
					"Club Brugge", "Galatasaray", "AS Monaco", "Qarabağ", "Bodø/Glimt",
					"SL Benfica", "Olympique Marseille", "Pafos", "Union Saint-Gilloise",
					"PSV Eindhoven", "Athletic Club", "Napoli", "FC Copenhagen", "Ajax",
					"Eintracht Frankfurt", "Slavia Prague", "Villarreal", "Kairat Almaty",
				},
				Aliases: []string{"PSG", "Inter", "Spurs", "Man City", "Bodo/Glimt", "Copenhagen", "PSV", "Qarabag", "Benfica", "Marseille", "Monaco"},
			},
		},
		{
			Name:          "MLS",
			Slug:          "us-major-league",
			URLKeywords:   []string{"us-major-league", "mls"},
			DisplayLabels: []string{"Major League Soccer", "US Major League Soccer"},
			TextPhrases:   []string{"major league soccer", "mls"},
			LabelOnly:     true,
			Roster: Roster{
				Teams: []string{
					"Philadelphia Union", "FC Cincinnati", "Inter Miami CF", "Charlotte FC", "New York City FC",
					"Nashville SC", "Columbus Crew", "Chicago Fire", "Orlando City", "New York Red Bulls",
					"New England Revolution", "Toronto FC", "CF Montréal", "Atlanta United", "D.C. United",
					"San Diego FC", "Vancouver Whitecaps", "Los Angeles FC", "Minnesota United", "Seattle Sounders",
					"Austin FC", "FC Dallas", "Portland Timbers", "Real Salt Lake", "San Jose Earthquakes",
					"Colorado Rapids", "Houston Dynamo", "St. Louis City SC", "LA Galaxy", "Sporting Kansas City",
				},
				Aliases: []string{"Inter Miami", "NYCFC", "LAFC", "Montreal", "DC United", "St Louis City"},
			},
			Groups: []Group{
				{
					Name: "Eastern Conference",
					Teams: []string{
						"Philadelphia Union", "FC Cincinnati", "Inter Miami CF", "Charlotte FC", "New York City FC",
						"Nashville SC", "Columbus Crew", "Chicago Fire", "Orlando City", "New York Red Bulls",
						"New England Revolution", "Toronto FC", "CF Montréal", "Atlanta United", "D.C. United",
					},
				},
				{
					Name: "Western Conference",
					Teams: []string{
						"San Diego FC", "Vancouver Whitecaps", "Los Angeles FC", "Minnesota United", "Seattle Sounders",
						"Austin FC", "FC Dallas", "Portland Timbers", "Real Salt Lake", "San Jose Earthquakes",
						"Colorado Rapids", "Houston Dynamo", "St. Louis City SC", "LA Galaxy", "Sporting Kansas City",
					},
				},
			},
		},
	}
}
