package bunstore

import (
	"context"
	"fmt"

	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/storage"
)

// tables are the collection models in creation order. Dropping walks the
// list backwards.
var tables = []struct {
	name  string
	model any
}{
	{storage.CollectionUsers, (*models.User)(nil)},
	{storage.CollectionOfficialTeams, (*models.OfficialTeam)(nil)},
	{storage.CollectionPlayers, (*models.Player)(nil)},
	{storage.CollectionUserTeams, (*models.UserTeam)(nil)},
	{storage.CollectionUserTeamPlayers, (*models.UserTeamPlayer)(nil)},
}

// uniqueIndexes are the only constraints beyond primary keys. References
// between collections are not enforced.
var uniqueIndexes = []struct {
	model   any
	name    string
	columns []string
}{
	{(*models.User)(nil), "users_email_key", []string{"email"}},
	{(*models.OfficialTeam)(nil), "official_teams_acronym_key", []string{"acronym"}},
	{(*models.UserTeamPlayer)(nil), "user_team_players_roster_key", []string{"user_team_id", "player_id"}},
}

// ResetSchema drops and recreates every collection and its unique indexes.
func (s *Store) ResetSchema(ctx context.Context) error {
	if err := s.DropSchema(ctx); err != nil {
		return err
	}

	for _, tbl := range tables {
		if _, err := s.db.NewCreateTable().Model(tbl.model).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table %s: %w", tbl.name, err)
		}
	}

	for _, idx := range uniqueIndexes {
		_, err := s.db.NewCreateIndex().
			Model(idx.model).
			Unique().
			Index(idx.name).
			Column(idx.columns...).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// DropSchema drops every collection that exists. Indexes go with their tables.
func (s *Store) DropSchema(ctx context.Context) error {
	for i := len(tables) - 1; i >= 0; i-- {
		tbl := tables[i]
		if _, err := s.db.NewDropTable().Model(tbl.model).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tbl.name, err)
		}
	}
	return nil
}
