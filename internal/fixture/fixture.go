// Package fixture holds the literal seed data and loads it into a store.
package fixture

import (
	"context"
	"fmt"

	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/storage"
)

func ptr[T any](v T) *T { return &v }

// Snapshot returns a fresh copy of the seed records. Callers may modify the
// result freely.
func Snapshot() *models.Snapshot {
	return &models.Snapshot{
		Users: []models.User{
			{
				ID:            1,
				Name:          "Eduardo Fontes",
				Email:         "edu@example.com",
				PasswordHash:  "hash_senha",
				Sex:           models.SexMale,
				Phone:         ptr("77-99122-9637"),
				BirthDate:     "2000-08-25",
				PreferredTeam: ptr("FURIA"),
			},
			{
				ID:            2,
				Name:          "Larissa",
				Email:         "lari@example.com",
				PasswordHash:  "hash",
				Sex:           models.SexFemale,
				BirthDate:     "2001-03-10",
				PreferredTeam: ptr("LOUD"),
			},
		},
		OfficialTeams: []models.OfficialTeam{
			{ID: 1, Name: "Furia Esports", Acronym: "FUR", ShortName: "FURIA"},
			{ID: 2, Name: "LOUD", Acronym: "LOD", ShortName: "LOUD"},
		},
		Players: []models.Player{
			{ID: 1, Name: "Jogador A", Position: "Atacante", OfficialTeamID: ptr[int64](1)},
			{ID: 2, Name: "Jogador B", Position: "Meio-campo", OfficialTeamID: ptr[int64](1)},
			{ID: 3, Name: "Jogador C", Position: "Defensor", OfficialTeamID: ptr[int64](2)},
			{ID: 4, Name: "Jogador D", Position: "Goleiro"},
		},
		UserTeams: []models.UserTeam{
			{ID: 1, Name: "Time do Edu", UserID: 1},
			{ID: 2, Name: "Time da Lari", UserID: 2},
		},
		UserTeamPlayers: []models.UserTeamPlayer{
			{ID: 1, UserTeamID: 1, PlayerID: 1},
			{ID: 2, UserTeamID: 1, PlayerID: 2},
			{ID: 3, UserTeamID: 1, PlayerID: 4},
			{ID: 4, UserTeamID: 2, PlayerID: 2},
			{ID: 5, UserTeamID: 2, PlayerID: 3},
		},
	}
}

// Counts maps a collection name to the number of records inserted into it.
type Counts map[string]int

// Seed inserts the seed records, one batch per collection, in dependency
// order. The first failing batch aborts the load.
func Seed(ctx context.Context, w storage.Writer) (Counts, error) {
	return Load(ctx, w, Snapshot())
}

// Load inserts the contents of snap, one batch per collection.
func Load(ctx context.Context, w storage.Writer, snap *models.Snapshot) (Counts, error) {
	counts := make(Counts, len(storage.Collections))

	if err := w.InsertUsers(ctx, snap.Users); err != nil {
		return counts, fmt.Errorf("seed %s: %w", storage.CollectionUsers, err)
	}
	counts[storage.CollectionUsers] = len(snap.Users)

	if err := w.InsertOfficialTeams(ctx, snap.OfficialTeams); err != nil {
		return counts, fmt.Errorf("seed %s: %w", storage.CollectionOfficialTeams, err)
	}
	counts[storage.CollectionOfficialTeams] = len(snap.OfficialTeams)

	if err := w.InsertPlayers(ctx, snap.Players); err != nil {
		return counts, fmt.Errorf("seed %s: %w", storage.CollectionPlayers, err)
	}
	counts[storage.CollectionPlayers] = len(snap.Players)

	if err := w.InsertUserTeams(ctx, snap.UserTeams); err != nil {
		return counts, fmt.Errorf("seed %s: %w", storage.CollectionUserTeams, err)
	}
	counts[storage.CollectionUserTeams] = len(snap.UserTeams)

	if err := w.InsertUserTeamPlayers(ctx, snap.UserTeamPlayers); err != nil {
		return counts, fmt.Errorf("seed %s: %w", storage.CollectionUserTeamPlayers, err)
	}
	counts[storage.CollectionUserTeamPlayers] = len(snap.UserTeamPlayers)

	return counts, nil
}
