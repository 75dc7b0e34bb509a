// Package models defines the records of the fantasy league store.
//
// # Collections
//
// Five collections are provisioned and seeded on every run:
//   - User: a person who owns fantasy teams and has a preferred official team
//   - OfficialTeam: a real-world team identified by a unique acronym
//   - Player: an athlete, optionally affiliated with an official team
//   - UserTeam: a fantasy team owned by a user
//   - UserTeamPlayer: one roster slot joining a fantasy team to a player
//
// # References
//
// Relationships are plain integer copies of another record's ID
// (Player.OfficialTeamID, UserTeam.UserID, UserTeamPlayer.UserTeamID and
// UserTeamPlayer.PlayerID). The store enforces no referential integrity and
// nothing cascades: removing a referenced record leaves dangling IDs behind.
//
// User.PreferredTeam is not an ID at all. It is a free-text label matched
// against OfficialTeam.ShortName when the preferred-team report runs.
//
// # Report rows
//
// The remaining types in this package are the projections produced by the
// read-only reports. Nullable columns are pointers so a missing join is
// represented as nil rather than an empty string.
package models
