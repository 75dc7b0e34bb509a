package models

// PlayerWithTeam is a player joined to its official team, if any.
// OfficialTeam is nil when the player is a free agent or the reference
// points at a team that does not exist.
type PlayerWithTeam struct {
	ID           int64   `bun:"id" yaml:"id"`
	Name         string  `bun:"name" yaml:"name"`
	Position     string  `bun:"position" yaml:"position"`
	OfficialTeam *string `bun:"official_team" yaml:"official_team"`
}

// RosterEntry is one player on one fantasy team, with the team's owner.
type RosterEntry struct {
	UserTeam string `bun:"user_team" yaml:"user_team"`
	Owner    string `bun:"owner" yaml:"owner"`
	Player   string `bun:"player" yaml:"player"`
	Position string `bun:"position" yaml:"position"`
}

// UserTeamListing is a fantasy team with one of its roster slots. Player and
// Position are nil for a fantasy team with an empty roster.
type UserTeamListing struct {
	UserTeam string  `bun:"user_team" yaml:"user_team"`
	Owner    string  `bun:"owner" yaml:"owner"`
	Player   *string `bun:"player" yaml:"player"`
	Position *string `bun:"position" yaml:"position"`
}

// PositionCount is the number of affiliated players holding a position on
// one official team.
type PositionCount struct {
	OfficialTeam string `bun:"official_team" yaml:"official_team"`
	Position     string `bun:"position" yaml:"position"`
	Count        int64  `bun:"player_count" yaml:"count"`
}

// UnaffiliatedPlayer is a player without an official team.
type UnaffiliatedPlayer struct {
	ID       int64  `bun:"id" yaml:"id"`
	Name     string `bun:"name" yaml:"name"`
	Position string `bun:"position" yaml:"position"`
}

// PreferredTeamOverlap counts how many players across a user's fantasy
// rosters belong to the official team the user prefers.
type PreferredTeamOverlap struct {
	User          string `bun:"user_name" yaml:"user"`
	PreferredTeam string `bun:"preferred_team" yaml:"preferred_team"`
	Players       int64  `bun:"player_count" yaml:"players_from_preferred_team"`
}
