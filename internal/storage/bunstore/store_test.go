package bunstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/futebol/internal/evaluator"
	"github.com/mmynk/futebol/internal/fixture"
	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/storage"
	"github.com/mmynk/futebol/internal/storage/bunstore"
	"github.com/mmynk/futebol/internal/testutil"
)

func str(s string) *string { return &s }

func reseed(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.ResetSchema(ctx))
	_, err := fixture.Seed(ctx, store)
	require.NoError(t, err)
}

func TestSQLiteStore(t *testing.T) {
	store := testutil.NewSQLiteStore(t)
	assert.Equal(t, bunstore.BackendSQLite, store.Backend())
	runStoreSuite(t, store)
}

func TestOpenCreatesDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := bunstore.Open(context.Background(), "sqlite://"+filepath.Join(dir, "league.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestOpenRejectsUnsupportedURL(t *testing.T) {
	_, err := bunstore.Open(context.Background(), "mongodb://localhost:27017/futebol_app")
	assert.True(t, errors.Is(err, bunstore.ErrUnsupportedURL))
}

// runStoreSuite exercises a store against the seed fixture. It is shared by
// every backend.
func runStoreSuite(t *testing.T, store storage.Store) {
	ctx := context.Background()

	t.Run("seed round-trips through snapshot", func(t *testing.T) {
		reseed(t, store)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(fixture.Snapshot(), snap); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reset and seed twice leaves identical state", func(t *testing.T) {
		reseed(t, store)
		first, err := store.Snapshot(ctx)
		require.NoError(t, err)

		reseed(t, store)
		second, err := store.Snapshot(ctx)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("state differs between runs (-first +second):\n%s", diff)
		}
	})

	t.Run("reset empties every collection", func(t *testing.T) {
		reseed(t, store)
		require.NoError(t, store.ResetSchema(ctx))

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, snap.Len())
	})

	t.Run("drop tolerates missing collections", func(t *testing.T) {
		require.NoError(t, store.DropSchema(ctx))
		require.NoError(t, store.DropSchema(ctx))

		_, err := store.Snapshot(ctx)
		assert.Error(t, err)

		require.NoError(t, store.ResetSchema(ctx))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		reseed(t, store)

		err := store.InsertUsers(ctx, []models.User{{
			ID: 3, Name: "Outro Edu", Email: "edu@example.com", PasswordHash: "x", Sex: models.SexMale, BirthDate: "1999-01-01",
		}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, storage.ErrDuplicate), "got %v", err)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("duplicate acronym is rejected", func(t *testing.T) {
		reseed(t, store)

		err := store.InsertOfficialTeams(ctx, []models.OfficialTeam{{ID: 3, Name: "Furia B", Acronym: "FUR", ShortName: "FURIA B"}})
		assert.True(t, errors.Is(err, storage.ErrDuplicate), "got %v", err)
	})

	t.Run("duplicate roster pair is rejected", func(t *testing.T) {
		reseed(t, store)

		err := store.InsertUserTeamPlayers(ctx, []models.UserTeamPlayer{{ID: 6, UserTeamID: 1, PlayerID: 1}})
		assert.True(t, errors.Is(err, storage.ErrDuplicate), "got %v", err)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		reseed(t, store)

		err := store.InsertPlayers(ctx, []models.Player{{ID: 1, Name: "Clone", Position: "Goleiro"}})
		assert.True(t, errors.Is(err, storage.ErrDuplicate), "got %v", err)
	})

	t.Run("failed batch inserts nothing", func(t *testing.T) {
		reseed(t, store)

		err := store.InsertPlayers(ctx, []models.Player{
			{ID: 5, Name: "Novo", Position: "Goleiro"},
			{ID: 5, Name: "Repetido", Position: "Goleiro"},
		})
		require.Error(t, err)

		_, err = store.GetPlayer(ctx, 5)
		assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
	})

	t.Run("dangling references are accepted", func(t *testing.T) {
		reseed(t, store)

		require.NoError(t, store.InsertPlayers(ctx, []models.Player{{ID: 5, Name: "Fantasma", Position: "Atacante", OfficialTeamID: ptr(int64(99))}}))

		rows, err := store.PlayersWithTeams(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Nil(t, rows[0].OfficialTeam)
		assert.Nil(t, rows[1].OfficialTeam)

		free, err := store.UnaffiliatedPlayers(ctx)
		require.NoError(t, err)
		assert.Len(t, free, 1)
	})

	t.Run("next id", func(t *testing.T) {
		reseed(t, store)

		tests := []struct {
			collection string
			want       int64
		}{
			{storage.CollectionUsers, 3},
			{storage.CollectionOfficialTeams, 3},
			{storage.CollectionPlayers, 5},
			{storage.CollectionUserTeams, 3},
			{storage.CollectionUserTeamPlayers, 6},
		}
		for _, tt := range tests {
			got, err := store.NextID(ctx, tt.collection)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, tt.collection)
		}

		_, err := store.NextID(ctx, "jogador")
		assert.True(t, errors.Is(err, storage.ErrUnknownCollection))

		require.NoError(t, store.ResetSchema(ctx))
		got, err := store.NextID(ctx, storage.CollectionUsers)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})

	t.Run("get by id", func(t *testing.T) {
		reseed(t, store)

		user, err := store.GetUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Larissa", user.Name)
		assert.Nil(t, user.Phone)

		team, err := store.GetOfficialTeam(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "FUR", team.Acronym)

		player, err := store.GetPlayer(ctx, 4)
		require.NoError(t, err)
		assert.Nil(t, player.OfficialTeamID)

		userTeam, err := store.GetUserTeam(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userTeam.UserID)

		_, err = store.GetUser(ctx, 42)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
		_, err = store.GetOfficialTeam(ctx, 42)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
		_, err = store.GetPlayer(ctx, 42)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
		_, err = store.GetUserTeam(ctx, 42)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("roster contains", func(t *testing.T) {
		reseed(t, store)

		ok, err := store.RosterContains(ctx, 1, 4)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.RosterContains(ctx, 2, 4)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("listings", func(t *testing.T) {
		reseed(t, store)
		require.NoError(t, store.InsertUserTeams(ctx, []models.UserTeam{{ID: 3, Name: "Reserva", UserID: 2}}))

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Eduardo Fontes", users[0].Name)

		teams, err := store.ListOfficialTeams(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Furia Esports", teams[0].Name)

		players, err := store.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 4)
		assert.Equal(t, []string{"Jogador A", "Jogador B", "Jogador C", "Jogador D"},
			[]string{players[0].Name, players[1].Name, players[2].Name, players[3].Name})

		userTeams, err := store.ListUserTeams(ctx)
		require.NoError(t, err)
		want := []models.UserTeamListing{
			{UserTeam: "Reserva", Owner: "Larissa"},
			{UserTeam: "Time da Lari", Owner: "Larissa", Player: str("Jogador B"), Position: str("Meio-campo")},
			{UserTeam: "Time da Lari", Owner: "Larissa", Player: str("Jogador C"), Position: str("Defensor")},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: str("Jogador A"), Position: str("Atacante")},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: str("Jogador B"), Position: str("Meio-campo")},
			{UserTeam: "Time do Edu", Owner: "Eduardo Fontes", Player: str("Jogador D"), Position: str("Goleiro")},
		}
		if diff := cmp.Diff(want, userTeams); diff != "" {
			t.Errorf("ListUserTeams mismatch (-want +got):\n%s", diff)
		}

		rosters, err := store.UserTeamRosters(ctx)
		require.NoError(t, err)
		assert.Len(t, rosters, 5, "empty fantasy team must not appear in rosters")
	})

	t.Run("reports on seed data", func(t *testing.T) {
		reseed(t, store)

		q1, err := store.PlayersWithTeams(ctx)
		require.NoError(t, err)
		require.Len(t, q1, 4)
		assert.Equal(t, int64(4), q1[0].ID)
		assert.Nil(t, q1[0].OfficialTeam)

		q2, err := store.UserTeamRosters(ctx)
		require.NoError(t, err)
		require.Len(t, q2, 5)
		for _, r := range q2 {
			assert.NotEmpty(t, r.UserTeam)
			assert.NotEmpty(t, r.Player)
		}

		q3, err := store.PositionCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.PositionCount{
			{OfficialTeam: "Furia Esports", Position: "Atacante", Count: 1},
			{OfficialTeam: "Furia Esports", Position: "Meio-campo", Count: 1},
			{OfficialTeam: "LOUD", Position: "Defensor", Count: 1},
		}, q3)

		q4, err := store.UnaffiliatedPlayers(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.UnaffiliatedPlayer{{ID: 4, Name: "Jogador D", Position: "Goleiro"}}, q4)

		q5, err := store.PreferredTeamOverlap(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.PreferredTeamOverlap{
			{User: "Eduardo Fontes", PreferredTeam: "FURIA", Players: 2},
			{User: "Larissa", PreferredTeam: "LOUD", Players: 1},
		}, q5)
	})

	t.Run("reports match in-memory evaluation", func(t *testing.T) {
		reseed(t, store)
		require.NoError(t, store.InsertOfficialTeams(ctx, []models.OfficialTeam{{ID: 3, Name: "LOUD Academy", Acronym: "LDA", ShortName: "LOUD"}}))
		require.NoError(t, store.InsertPlayers(ctx, []models.Player{
			{ID: 5, Name: "Jogador E", Position: "Atacante", OfficialTeamID: ptr(int64(1))},
			{ID: 6, Name: "Jogador F", Position: "Atacante", OfficialTeamID: ptr(int64(3))},
		}))
		require.NoError(t, store.InsertUserTeams(ctx, []models.UserTeam{{ID: 3, Name: "Time Vazio", UserID: 1}}))
		require.NoError(t, store.InsertUserTeamPlayers(ctx, []models.UserTeamPlayer{
			{ID: 6, UserTeamID: 2, PlayerID: 6},
			{ID: 7, UserTeamID: 1, PlayerID: 5},
		}))

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		want := evaluator.Evaluate(snap)

		got := &evaluator.Results{}
		got.PlayersWithTeams, err = store.PlayersWithTeams(ctx)
		require.NoError(t, err)
		got.UserTeamRosters, err = store.UserTeamRosters(ctx)
		require.NoError(t, err)
		got.PositionCounts, err = store.PositionCounts(ctx)
		require.NoError(t, err)
		got.UnaffiliatedPlayers, err = store.UnaffiliatedPlayers(ctx)
		require.NoError(t, err)
		got.PreferredTeamOverlap, err = store.PreferredTeamOverlap(ctx)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("store and evaluator disagree (-memory +store):\n%s", diff)
		}
	})
}

func ptr[T any](v T) *T { return &v }
