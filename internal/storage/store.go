// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/futebol/internal/models"
)

// Collection names, in the order they are created and seeded.
const (
	CollectionUsers           = "users"
	CollectionOfficialTeams   = "official_teams"
	CollectionPlayers         = "players"
	CollectionUserTeams       = "user_teams"
	CollectionUserTeamPlayers = "user_team_players"
)

// Collections lists every collection the store manages.
var Collections = []string{
	CollectionUsers,
	CollectionOfficialTeams,
	CollectionPlayers,
	CollectionUserTeams,
	CollectionUserTeamPlayers,
}

// Sentinel errors returned by Store implementations. They describe the
// outcome at the storage level; services decide what they mean to a caller.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates an insert violated a uniqueness constraint.
	// The wrapped error keeps the backend's native message.
	ErrDuplicate = errors.New("duplicate key")

	// ErrUnknownCollection is returned for a collection name not in Collections.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Store defines the persistence operations of the fantasy league.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	Schema
	Writer
	Reader
	Reports

	// Close releases any resources held by the store.
	Close() error
}

// Schema manages the collections themselves.
type Schema interface {
	// ResetSchema drops every collection if present, recreates them empty and
	// registers the uniqueness constraints. Prior data is lost.
	ResetSchema(ctx context.Context) error

	// DropSchema drops every collection. Missing collections are not an error.
	DropSchema(ctx context.Context) error
}

// Writer inserts records. Batch inserts are all-or-nothing per call and
// return an error wrapping ErrDuplicate on a uniqueness violation.
type Writer interface {
	InsertUsers(ctx context.Context, users []models.User) error
	InsertOfficialTeams(ctx context.Context, teams []models.OfficialTeam) error
	InsertPlayers(ctx context.Context, players []models.Player) error
	InsertUserTeams(ctx context.Context, teams []models.UserTeam) error
	InsertUserTeamPlayers(ctx context.Context, entries []models.UserTeamPlayer) error
}

// Reader looks up individual records and listings.
type Reader interface {
	// NextID returns one more than the highest ID in the collection, or 1
	// when it is empty.
	NextID(ctx context.Context, collection string) (int64, error)

	// GetUser, GetOfficialTeam, GetPlayer and GetUserTeam return ErrNotFound
	// when no record has the given ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetOfficialTeam(ctx context.Context, id int64) (*models.OfficialTeam, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	GetUserTeam(ctx context.Context, id int64) (*models.UserTeam, error)

	// RosterContains reports whether the player is already on the fantasy team.
	RosterContains(ctx context.Context, userTeamID, playerID int64) (bool, error)

	// ListUsers and ListOfficialTeams are ordered by name.
	ListUsers(ctx context.Context) ([]models.User, error)
	ListOfficialTeams(ctx context.Context) ([]models.OfficialTeam, error)

	// ListPlayers joins players to their official team, ordered by player name.
	ListPlayers(ctx context.Context) ([]models.PlayerWithTeam, error)

	// ListUserTeams lists every fantasy team with its roster. Teams with an
	// empty roster appear once with nil Player and Position.
	ListUserTeams(ctx context.Context) ([]models.UserTeamListing, error)

	// Snapshot returns every record of every collection ordered by ID.
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// Reports are the five fixed read-only queries.
type Reports interface {
	// PlayersWithTeams left-joins players to official teams. Ordered by team
	// name with nulls first, then player name.
	PlayersWithTeams(ctx context.Context) ([]models.PlayerWithTeam, error)

	// UserTeamRosters inner-joins fantasy teams to owners and roster players.
	// Fantasy teams with no roster entries produce no rows. Ordered by
	// fantasy team name, then player name.
	UserTeamRosters(ctx context.Context) ([]models.RosterEntry, error)

	// PositionCounts counts affiliated players per (team, position). Ordered
	// by team name ascending, then count descending.
	PositionCounts(ctx context.Context) ([]models.PositionCount, error)

	// UnaffiliatedPlayers lists players without an official team, in ID order.
	UnaffiliatedPlayers(ctx context.Context) ([]models.UnaffiliatedPlayer, error)

	// PreferredTeamOverlap counts, per user, the rostered players whose team
	// acronym matches the acronym of the user's preferred team. Users with no
	// match produce no row. Ordered by user name.
	PreferredTeamOverlap(ctx context.Context) ([]models.PreferredTeamOverlap, error)
}
