package models

// Snapshot holds the full contents of the five collections.
type Snapshot struct {
	Users           []User
	OfficialTeams   []OfficialTeam
	Players         []Player
	UserTeams       []UserTeam
	UserTeamPlayers []UserTeamPlayer
}

// Len returns the total number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Users) + len(s.OfficialTeams) + len(s.Players) + len(s.UserTeams) + len(s.UserTeamPlayers)
}
