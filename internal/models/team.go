package models

import "github.com/uptrace/bun"

// OfficialTeam is a real-world team players can be affiliated with.
type OfficialTeam struct {
	bun.BaseModel `bun:"table:official_teams,alias:t"`

	ID int64 `bun:"id,pk"`

	// Name is the full team name, e.g. "Furia Esports".
	Name string `bun:"name,notnull"`

	// Acronym is unique across official teams, e.g. "FUR".
	Acronym string `bun:"acronym,notnull"`

	// ShortName is the display label users pick as their preferred team,
	// e.g. "FURIA".
	ShortName string `bun:"short_name,notnull"`
}

// Player is an athlete that can be picked for fantasy rosters.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID       int64  `bun:"id,pk"`
	Name     string `bun:"name,notnull"`
	Position string `bun:"position,notnull"`

	// OfficialTeamID references OfficialTeam.ID. Nil for free agents.
	OfficialTeamID *int64 `bun:"official_team_id"`
}

// UserTeam is a fantasy team owned by a user. A user may own several.
type UserTeam struct {
	bun.BaseModel `bun:"table:user_teams,alias:ut"`

	ID     int64  `bun:"id,pk"`
	Name   string `bun:"name,notnull"`
	UserID int64  `bun:"user_id,notnull"`
}

// UserTeamPlayer is one roster slot. The (UserTeamID, PlayerID) pair is
// unique: a player appears at most once per fantasy roster.
type UserTeamPlayer struct {
	bun.BaseModel `bun:"table:user_team_players,alias:utp"`

	ID         int64 `bun:"id,pk"`
	UserTeamID int64 `bun:"user_team_id,notnull"`
	PlayerID   int64 `bun:"player_id,notnull"`
}
