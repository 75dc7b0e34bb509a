package bunstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/uptrace/bun"

	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/storage"
)

// NextID returns MAX(id)+1 for the collection, or 1 when it is empty.
func (s *Store) NextID(ctx context.Context, collection string) (int64, error) {
	if !slices.Contains(storage.Collections, collection) {
		return 0, fmt.Errorf("%w: %s", storage.ErrUnknownCollection, collection)
	}

	var maxID int64
	err := s.db.NewSelect().
		TableExpr("?", bun.Ident(collection)).
		ColumnExpr("COALESCE(MAX(id), 0)").
		Scan(ctx, &maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get next %s id: %w", collection, err)
	}
	return maxID + 1, nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	if err := s.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, wrapGetErr(fmt.Sprintf("failed to get user %d", id), err)
	}
	return user, nil
}

// GetOfficialTeam retrieves an official team by ID.
func (s *Store) GetOfficialTeam(ctx context.Context, id int64) (*models.OfficialTeam, error) {
	team := new(models.OfficialTeam)
	if err := s.db.NewSelect().Model(team).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, wrapGetErr(fmt.Sprintf("failed to get official team %d", id), err)
	}
	return team, nil
}

// GetPlayer retrieves a player by ID.
func (s *Store) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	player := new(models.Player)
	if err := s.db.NewSelect().Model(player).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, wrapGetErr(fmt.Sprintf("failed to get player %d", id), err)
	}
	return player, nil
}

// GetUserTeam retrieves a fantasy team by ID.
func (s *Store) GetUserTeam(ctx context.Context, id int64) (*models.UserTeam, error) {
	team := new(models.UserTeam)
	if err := s.db.NewSelect().Model(team).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, wrapGetErr(fmt.Sprintf("failed to get user team %d", id), err)
	}
	return team, nil
}

// RosterContains reports whether the player already has a slot on the team.
func (s *Store) RosterContains(ctx context.Context, userTeamID, playerID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*models.UserTeamPlayer)(nil)).
		Where("user_team_id = ?", userTeamID).
		Where("player_id = ?", playerID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check roster: %w", err)
	}
	return exists, nil
}

// ListUsers returns all users ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.NewSelect().Model(&users).Order("name", "id").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListOfficialTeams returns all official teams ordered by name.
func (s *Store) ListOfficialTeams(ctx context.Context) ([]models.OfficialTeam, error) {
	var teams []models.OfficialTeam
	if err := s.db.NewSelect().Model(&teams).Order("name", "id").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list official teams: %w", err)
	}
	return teams, nil
}

// ListPlayers returns all players with their official team name, ordered by
// player name.
func (s *Store) ListPlayers(ctx context.Context) ([]models.PlayerWithTeam, error) {
	var rows []models.PlayerWithTeam
	err := s.playersWithTeamQuery().
		OrderExpr("p.name ASC, p.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return rows, nil
}

// ListUserTeams returns every fantasy team with its owner and roster. The
// roster side is left-joined so empty fantasy teams are still listed.
func (s *Store) ListUserTeams(ctx context.Context) ([]models.UserTeamListing, error) {
	var rows []models.UserTeamListing
	err := s.db.NewSelect().
		Model((*models.UserTeam)(nil)).
		ColumnExpr("ut.name AS user_team").
		ColumnExpr("u.name AS owner").
		ColumnExpr("p.name AS player").
		ColumnExpr("p.position AS position").
		Join("JOIN users AS u ON u.id = ut.user_id").
		Join("LEFT JOIN user_team_players AS utp ON utp.user_team_id = ut.id").
		Join("LEFT JOIN players AS p ON p.id = utp.player_id").
		OrderExpr("ut.name ASC, p.name ASC NULLS FIRST").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	return rows, nil
}

// Snapshot returns every record of every collection ordered by ID.
func (s *Store) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	targets := []struct {
		name string
		dest any
	}{
		{storage.CollectionUsers, &snap.Users},
		{storage.CollectionOfficialTeams, &snap.OfficialTeams},
		{storage.CollectionPlayers, &snap.Players},
		{storage.CollectionUserTeams, &snap.UserTeams},
		{storage.CollectionUserTeamPlayers, &snap.UserTeamPlayers},
	}
	for _, t := range targets {
		if err := s.db.NewSelect().Model(t.dest).Order("id").Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", t.name, err)
		}
	}
	return snap, nil
}
