package players

import "strings"

// Team is a supported national team.
type Team struct {
	Code          string `json:"code" yaml:"code"`
	Name          string `json:"name" yaml:"name"`
	NameLocal     string `json:"nameLocal" yaml:"nameLocal"`
	Federation    string `json:"federation" yaml:"federation"`
	Confederation string `json:"confederation" yaml:"confederation"`
}

// teams is ordered as the overview and all-squads tokens list them.
var teams = []Team{
	{"spain", "Spain", "España", "ESP", "UEFA"},
	{"france", "France", "France", "FRA", "UEFA"},
	{"germany", "Germany", "Deutschland", "GER", "UEFA"},
	{"england", "England", "England", "ENG", "UEFA"},
	{"brazil", "Brazil", "Brasil", "BRA", "CONMEBOL"},
	{"argentina", "Argentina", "Argentina", "ARG", "CONMEBOL"},
	{"portugal", "Portugal", "Portugal", "POR", "UEFA"},
	{"italy", "Italy", "Italia", "ITA", "UEFA"},
	{"netherlands", "Netherlands", "Nederland", "NED", "UEFA"},
	{"belgium", "Belgium", "België", "BEL", "UEFA"},
	{"croatia", "Croatia", "Hrvatska", "CRO", "UEFA"},
	{"uruguay", "Uruguay", "Uruguay", "URU", "CONMEBOL"},
	{"colombia", "Colombia", "Colombia", "COL", "CONMEBOL"},
	{"denmark", "Denmark", "Danmark", "DEN", "UEFA"},
	{"usa", "USA", "United States", "USA", "CONCACAF"},
	{"morocco", "Morocco", "المغرب", "MAR", "CAF"},
	{"egypt", "Egypt", "مصر", "EGY", "CAF"},
	{"senegal", "Senegal", "Sénégal", "SEN", "CAF"},
	{"japan", "Japan", "日本", "JPN", "AFC"},
	{"qatar", "Qatar", "قطر", "QAT", "AFC"},
	{"mexico", "Mexico", "México", "MEX", "CONCACAF"},
	{"switzerland", "Switzerland", "Schweiz", "SUI", "UEFA"},
}

var (
	teamsByCode       = make(map[string]Team, len(teams))
	teamsByFederation = make(map[string]Team, len(teams))
)

func init() {
	for _, t := range teams {
		teamsByCode[t.Code] = t
		teamsByFederation[t.Federation] = t
	}
}

// Teams returns the supported teams in table order.
func Teams() []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

// LookupTeam returns the team with the given internal code.
func LookupTeam(code string) (Team, bool) {
	t, ok := teamsByCode[strings.ToLower(strings.TrimSpace(code))]
	return t, ok
}

// Federation returns the 3-letter federation code of a team.
func Federation(team string) (string, bool) {
	t, ok := LookupTeam(team)
	return t.Federation, ok
}

// TeamFor returns the internal team code of a federation code.
func TeamFor(federation string) (string, bool) {
	t, ok := teamsByFederation[strings.ToUpper(strings.TrimSpace(federation))]
	return t.Code, ok
}

// TeamIndex returns the position of a team in the table, or -1.
func TeamIndex(code string) int {
	for i, t := range teams {
		if t.Code == code {
			return i
		}
	}
	return -1
}
