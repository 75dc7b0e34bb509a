package bunstore

import (
	"context"

	"github.com/mmynk/futebol/internal/models"
)

// InsertUsers inserts users in a single batch.
func (s *Store) InsertUsers(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	if _, err := s.db.NewInsert().Model(&users).Exec(ctx); err != nil {
		return wrapWriteErr("failed to insert users", err)
	}
	return nil
}

// InsertOfficialTeams inserts official teams in a single batch.
func (s *Store) InsertOfficialTeams(ctx context.Context, teams []models.OfficialTeam) error {
	if len(teams) == 0 {
		return nil
	}
	if _, err := s.db.NewInsert().Model(&teams).Exec(ctx); err != nil {
		return wrapWriteErr("failed to insert official teams", err)
	}
	return nil
}

// InsertPlayers inserts players in a single batch.
func (s *Store) InsertPlayers(ctx context.Context, players []models.Player) error {
	if len(players) == 0 {
		return nil
	}
	if _, err := s.db.NewInsert().Model(&players).Exec(ctx); err != nil {
		return wrapWriteErr("failed to insert players", err)
	}
	return nil
}

// InsertUserTeams inserts fantasy teams in a single batch.
func (s *Store) InsertUserTeams(ctx context.Context, teams []models.UserTeam) error {
	if len(teams) == 0 {
		return nil
	}
	if _, err := s.db.NewInsert().Model(&teams).Exec(ctx); err != nil {
		return wrapWriteErr("failed to insert user teams", err)
	}
	return nil
}

// InsertUserTeamPlayers inserts roster slots in a single batch.
func (s *Store) InsertUserTeamPlayers(ctx context.Context, entries []models.UserTeamPlayer) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := s.db.NewInsert().Model(&entries).Exec(ctx); err != nil {
		return wrapWriteErr("failed to insert user team players", err)
	}
	return nil
}
