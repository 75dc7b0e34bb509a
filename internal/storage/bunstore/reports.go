package bunstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/mmynk/futebol/internal/models"
)

// playersWithTeamQuery selects every player with its official team name,
// left-joined so free agents keep a NULL team.
func (s *Store) playersWithTeamQuery() *bun.SelectQuery {
	return s.db.NewSelect().
		Model((*models.Player)(nil)).
		ColumnExpr("p.id, p.name, p.position").
		ColumnExpr("t.name AS official_team").
		Join("LEFT JOIN official_teams AS t ON t.id = p.official_team_id")
}

// PlayersWithTeams lists every player with its official team, free agents
// first.
func (s *Store) PlayersWithTeams(ctx context.Context) ([]models.PlayerWithTeam, error) {
	var rows []models.PlayerWithTeam
	err := s.playersWithTeamQuery().
		OrderExpr("t.name ASC NULLS FIRST, p.name ASC, p.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query players with teams: %w", err)
	}
	return rows, nil
}

// UserTeamRosters lists each rostered player per fantasy team with the
// team's owner. Empty rosters are dropped by the inner joins.
func (s *Store) UserTeamRosters(ctx context.Context) ([]models.RosterEntry, error) {
	var rows []models.RosterEntry
	err := s.db.NewSelect().
		Model((*models.UserTeam)(nil)).
		ColumnExpr("ut.name AS user_team").
		ColumnExpr("u.name AS owner").
		ColumnExpr("p.name AS player").
		ColumnExpr("p.position AS position").
		Join("JOIN users AS u ON u.id = ut.user_id").
		Join("JOIN user_team_players AS utp ON utp.user_team_id = ut.id").
		Join("JOIN players AS p ON p.id = utp.player_id").
		OrderExpr("ut.name ASC, p.name ASC, utp.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query user team rosters: %w", err)
	}
	return rows, nil
}

// PositionCounts counts affiliated players per official team and position.
func (s *Store) PositionCounts(ctx context.Context) ([]models.PositionCount, error) {
	var rows []models.PositionCount
	err := s.db.NewSelect().
		Model((*models.Player)(nil)).
		ColumnExpr("t.name AS official_team").
		ColumnExpr("p.position AS position").
		ColumnExpr("COUNT(*) AS player_count").
		Join("JOIN official_teams AS t ON t.id = p.official_team_id").
		Where("p.official_team_id IS NOT NULL").
		GroupExpr("t.name, p.position").
		OrderExpr("t.name ASC, player_count DESC, p.position ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query position counts: %w", err)
	}
	return rows, nil
}

// UnaffiliatedPlayers lists players with no official team reference.
func (s *Store) UnaffiliatedPlayers(ctx context.Context) ([]models.UnaffiliatedPlayer, error) {
	var rows []models.UnaffiliatedPlayer
	err := s.db.NewSelect().
		Model((*models.Player)(nil)).
		ColumnExpr("p.id, p.name, p.position").
		Where("p.official_team_id IS NULL").
		OrderExpr("p.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query unaffiliated players: %w", err)
	}
	return rows, nil
}

// PreferredTeamOverlap counts, per user, the rostered players that play for
// the user's preferred team. The preferred label is resolved through
// official_teams.short_name and compared by acronym.
func (s *Store) PreferredTeamOverlap(ctx context.Context) ([]models.PreferredTeamOverlap, error) {
	var rows []models.PreferredTeamOverlap
	err := s.db.NewSelect().
		Model((*models.User)(nil)).
		ColumnExpr("u.name AS user_name").
		ColumnExpr("u.preferred_team AS preferred_team").
		ColumnExpr("COUNT(*) AS player_count").
		Join("JOIN user_teams AS ut ON ut.user_id = u.id").
		Join("JOIN user_team_players AS utp ON utp.user_team_id = ut.id").
		Join("JOIN players AS p ON p.id = utp.player_id").
		Join("JOIN official_teams AS t ON t.id = p.official_team_id").
		Join("JOIN official_teams AS pt ON pt.short_name = u.preferred_team").
		Where("t.acronym = pt.acronym").
		GroupExpr("u.name, u.preferred_team").
		OrderExpr("u.name ASC, u.preferred_team ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferred team overlap: %w", err)
	}
	return rows, nil
}
