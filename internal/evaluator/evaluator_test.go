package evaluator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mmynk/futebol/internal/fixture"
	"github.com/mmynk/futebol/internal/models"
)

func str(s string) *string { return &s }
func id(v int64) *int64    { return &v }

func TestEvaluateFixture(t *testing.T) {
	got := Evaluate(fixture.Snapshot())

	want := &Results{
		PlayersWithTeams: []models.PlayerWithTeam{
			{ID: 4, Name: "Jogador D", Position: "Goleiro"},
			{ID: 1, Name: "Jogador A", Position: "Atacante", OfficialTeam: str("Furia Esports")},
			{ID: 2, Name: "Jogador B", Position: "Meio-campo", OfficialTeam: str("Furia Esports")},
			{ID: 3, Name: "Jogador C", Position: "Defensor", OfficialTeam: str("LOUD")},
		},
		UserTeamRosters: []models.RosterEntry{
			{UserTeam: "Time da Lari", Owner: "Larissa", Player: "Jogador B", Position: "Meio-campo"},
			{UserTeam: "Time da Lari", Owner: "Larissa", Player: "Jogador C", Position: "Defensor"},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: "Jogador A", Position: "Atacante"},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: "Jogador B", Position: "Meio-campo"},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: "Jogador D", Position: "Goleiro"},
		},
		PositionCounts: []models.PositionCount{
			{OfficialTeam: "Furia Esports", Position: "Atacante", Count: 1},
			{OfficialTeam: "Furia Esports", Position: "Meio-campo", Count: 1},
			{OfficialTeam: "LOUD", Position: "Defensor", Count: 1},
		},
		UnaffiliatedPlayers: []models.UnaffiliatedPlayer{
			{ID: 4, Name: "Jogador D", Position: "Goleiro"},
		},
		PreferredTeamOverlap: []models.PreferredTeamOverlap{
			{User: "Eduardo Fontes", PreferredTeam: "FURIA", Players: 2},
			{User: "Larissa", PreferredTeam: "LOUD", Players: 1},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayersWithTeams(t *testing.T) {
	tests := []struct {
		name string
		snap *models.Snapshot
		want []models.PlayerWithTeam
	}{
		{
			name: "dangling team reference keeps null team",
			snap: &models.Snapshot{
				Players: []models.Player{{ID: 1, Name: "Ana", Position: "Atacante", OfficialTeamID: id(42)}},
			},
			want: []models.PlayerWithTeam{{ID: 1, Name: "Ana", Position: "Atacante"}},
		},
		{
			name: "nulls sort before named teams, then by player name",
			snap: &models.Snapshot{
				OfficialTeams: []models.OfficialTeam{{ID: 1, Name: "Alpha", Acronym: "ALP", ShortName: "ALPHA"}},
				Players: []models.Player{
					{ID: 1, Name: "Zeca", Position: "Goleiro", OfficialTeamID: id(1)},
					{ID: 2, Name: "Bia", Position: "Defensor", OfficialTeamID: id(1)},
					{ID: 3, Name: "Caio", Position: "Atacante"},
				},
			},
			want: []models.PlayerWithTeam{
				{ID: 3, Name: "Caio", Position: "Atacante"},
				{ID: 2, Name: "Bia", Position: "Defensor", OfficialTeam: str("Alpha")},
				{ID: 1, Name: "Zeca", Position: "Goleiro", OfficialTeam: str("Alpha")},
			},
		},
		{
			name: "empty snapshot",
			snap: &models.Snapshot{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlayersWithTeams(tt.snap)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("PlayersWithTeams() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserTeamRosters(t *testing.T) {
	snap := &models.Snapshot{
		Users:   []models.User{{ID: 1, Name: "Rui"}},
		Players: []models.Player{{ID: 1, Name: "Duda", Position: "Goleiro"}},
		UserTeams: []models.UserTeam{
			{ID: 1, Name: "Sem Jogadores", UserID: 1},
			{ID: 2, Name: "Com Jogador", UserID: 1},
			{ID: 3, Name: "Sem Dono", UserID: 9},
		},
		UserTeamPlayers: []models.UserTeamPlayer{
			{ID: 1, UserTeamID: 2, PlayerID: 1},
			{ID: 2, UserTeamID: 3, PlayerID: 1},
			{ID: 3, UserTeamID: 2, PlayerID: 7},
		},
	}

	got := UserTeamRosters(snap)
	want := []models.RosterEntry{
		{UserTeam: "Com Jogador", Owner: "Rui", Player: "Duda", Position: "Goleiro"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UserTeamRosters() mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionCounts(t *testing.T) {
	snap := &models.Snapshot{
		OfficialTeams: []models.OfficialTeam{
			{ID: 1, Name: "Beta"},
			{ID: 2, Name: "Alpha"},
		},
		Players: []models.Player{
			{ID: 1, Position: "Defensor", OfficialTeamID: id(1)},
			{ID: 2, Position: "Atacante", OfficialTeamID: id(1)},
			{ID: 3, Position: "Atacante", OfficialTeamID: id(1)},
			{ID: 4, Position: "Goleiro", OfficialTeamID: id(2)},
			{ID: 5, Position: "Goleiro"},
			{ID: 6, Position: "Goleiro", OfficialTeamID: id(3)},
		},
	}

	got := PositionCounts(snap)
	want := []models.PositionCount{
		{OfficialTeam: "Alpha", Position: "Goleiro", Count: 1},
		{OfficialTeam: "Beta", Position: "Atacante", Count: 2},
		{OfficialTeam: "Beta", Position: "Defensor", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PositionCounts() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnaffiliatedPlayers(t *testing.T) {
	snap := &models.Snapshot{
		Players: []models.Player{
			{ID: 5, Name: "E", Position: "Goleiro"},
			{ID: 2, Name: "B", Position: "Defensor"},
			{ID: 3, Name: "C", Position: "Atacante", OfficialTeamID: id(99)},
		},
	}

	got := UnaffiliatedPlayers(snap)
	want := []models.UnaffiliatedPlayer{
		{ID: 2, Name: "B", Position: "Defensor"},
		{ID: 5, Name: "E", Position: "Goleiro"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnaffiliatedPlayers() mismatch (-want +got):\n%s", diff)
	}
}

func TestPreferredTeamOverlap(t *testing.T) {
	base := func() *models.Snapshot {
		return &models.Snapshot{
			OfficialTeams: []models.OfficialTeam{
				{ID: 1, Name: "Furia Esports", Acronym: "FUR", ShortName: "FURIA"},
			},
			Players: []models.Player{
				{ID: 1, OfficialTeamID: id(1)},
				{ID: 2, OfficialTeamID: id(1)},
			},
			UserTeams: []models.UserTeam{
				{ID: 1, UserID: 1},
				{ID: 2, UserID: 1},
			},
			UserTeamPlayers: []models.UserTeamPlayer{
				{ID: 1, UserTeamID: 1, PlayerID: 1},
				{ID: 2, UserTeamID: 2, PlayerID: 1},
				{ID: 3, UserTeamID: 2, PlayerID: 2},
			},
		}
	}

	tests := []struct {
		name string
		user models.User
		want []models.PreferredTeamOverlap
	}{
		{
			name: "counts across every fantasy team of the user",
			user: models.User{ID: 1, Name: "Ana", PreferredTeam: str("FURIA")},
			want: []models.PreferredTeamOverlap{{User: "Ana", PreferredTeam: "FURIA", Players: 3}},
		},
		{
			name: "label matching no short name yields no row",
			user: models.User{ID: 1, Name: "Ana", PreferredTeam: str("FUR")},
		},
		{
			name: "no preferred team yields no row",
			user: models.User{ID: 1, Name: "Ana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base()
			snap.Users = []models.User{tt.user}
			got := PreferredTeamOverlap(snap)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("PreferredTeamOverlap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
