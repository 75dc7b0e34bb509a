package report

import (
	"strconv"

	"github.com/mmynk/futebol/internal/models"
)

// Section names of the five league reports, in run order.
const (
	Q1 = "q1"
	Q2 = "q2"
	Q3 = "q3"
	Q4 = "q4"
	Q5 = "q5"
)

// Names lists the report section names in run order.
var Names = []string{Q1, Q2, Q3, Q4, Q5}

// Titles maps each report section to its banner title.
var Titles = map[string]string{
	Q1: "Q1: Listar todos os jogadores com seus times oficiais",
	Q2: "Q2: Listar times de usuários com seus jogadores",
	Q3: "Q3: Contar jogadores por posição em cada time oficial",
	Q4: "Q4: Listar jogadores sem time oficial",
	Q5: "Q5: Para um usuário específico, quantos jogadores do elenco dele\n    pertencem ao seu 'time preferido'",
}

func text(s string) *string { return &s }

func integer(v int64) *string { return text(strconv.FormatInt(v, 10)) }

func records[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}

// PlayersWithTeams builds the Q1 section.
func PlayersWithTeams(rows []models.PlayerWithTeam) Section {
	s := Section{
		Name:    Q1,
		Title:   Titles[Q1],
		Headers: []string{"ID", "Nome", "Posição", "Time Oficial"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{integer(r.ID), text(r.Name), text(r.Position), r.OfficialTeam})
	}
	return s
}

// UserTeamRosters builds the Q2 section.
func UserTeamRosters(rows []models.RosterEntry) Section {
	s := Section{
		Name:    Q2,
		Title:   Titles[Q2],
		Headers: []string{"Time", "Dono", "Jogador", "Posição"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{text(r.UserTeam), text(r.Owner), text(r.Player), text(r.Position)})
	}
	return s
}

// PositionCounts builds the Q3 section.
func PositionCounts(rows []models.PositionCount) Section {
	s := Section{
		Name:    Q3,
		Title:   Titles[Q3],
		Headers: []string{"Time Oficial", "Posição", "Quantidade"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{text(r.OfficialTeam), text(r.Position), integer(r.Count)})
	}
	return s
}

// UnaffiliatedPlayers builds the Q4 section.
func UnaffiliatedPlayers(rows []models.UnaffiliatedPlayer) Section {
	s := Section{
		Name:    Q4,
		Title:   Titles[Q4],
		Headers: []string{"ID", "Nome", "Posição"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{integer(r.ID), text(r.Name), text(r.Position)})
	}
	return s
}

// PreferredTeamOverlap builds the Q5 section.
func PreferredTeamOverlap(rows []models.PreferredTeamOverlap) Section {
	s := Section{
		Name:    Q5,
		Title:   Titles[Q5],
		Headers: []string{"Usuário", "Time Preferido", "Jogadores do Time Preferido"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{text(r.User), text(r.PreferredTeam), integer(r.Players)})
	}
	return s
}

// userRecord is the block rendering of a user. The password hash is left out.
type userRecord struct {
	ID            int64   `yaml:"id"`
	Name          string  `yaml:"name"`
	Email         string  `yaml:"email"`
	Sex           string  `yaml:"sex"`
	Phone         *string `yaml:"phone"`
	BirthDate     string  `yaml:"birth_date"`
	PreferredTeam *string `yaml:"preferred_team"`
}

// Users builds the user listing section.
func Users(users []models.User) Section {
	s := Section{
		Name:    "users",
		Title:   "Usuários cadastrados",
		Headers: []string{"ID", "Nome", "Email", "Sexo", "Telefone", "Nascimento", "Time Preferido"},
	}
	for _, u := range users {
		s.Records = append(s.Records, userRecord{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Sex:           u.Sex,
			Phone:         u.Phone,
			BirthDate:     u.BirthDate,
			PreferredTeam: u.PreferredTeam,
		})
		s.Rows = append(s.Rows, []*string{
			integer(u.ID), text(u.Name), text(u.Email), text(u.Sex), u.Phone, text(u.BirthDate), u.PreferredTeam,
		})
	}
	return s
}

type officialTeamRecord struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Acronym   string `yaml:"acronym"`
	ShortName string `yaml:"short_name"`
}

// OfficialTeams builds the official team listing section.
func OfficialTeams(teams []models.OfficialTeam) Section {
	s := Section{
		Name:    "teams",
		Title:   "Times oficiais",
		Headers: []string{"ID", "Nome", "Sigla", "Nome Curto"},
	}
	for _, t := range teams {
		s.Records = append(s.Records, officialTeamRecord{ID: t.ID, Name: t.Name, Acronym: t.Acronym, ShortName: t.ShortName})
		s.Rows = append(s.Rows, []*string{integer(t.ID), text(t.Name), text(t.Acronym), text(t.ShortName)})
	}
	return s
}

// Players builds the player listing section.
func Players(rows []models.PlayerWithTeam) Section {
	s := PlayersWithTeams(rows)
	s.Name = "players"
	s.Title = "Jogadores"
	return s
}

// UserTeams builds the fantasy team listing section.
func UserTeams(rows []models.UserTeamListing) Section {
	s := Section{
		Name:    "user-teams",
		Title:   "Times de usuários",
		Headers: []string{"Time", "Dono", "Jogador", "Posição"},
		Records: records(rows),
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, []*string{text(r.UserTeam), text(r.Owner), r.Player, r.Position})
	}
	return s
}
