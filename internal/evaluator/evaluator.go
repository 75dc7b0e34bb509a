// Package evaluator computes the five league reports in memory from a
// snapshot of the collections.
//
// Every function mirrors one store query: nested-loop joins in place of
// JOIN, maps in place of GROUP BY, and stable sorts with the same keys as
// ORDER BY. Records are visited in the order the snapshot holds them, which
// is ID order for snapshots read from a store.
package evaluator

import (
	"cmp"
	"slices"

	"github.com/mmynk/futebol/internal/models"
)

// Results holds the output of all five reports.
type Results struct {
	PlayersWithTeams     []models.PlayerWithTeam
	UserTeamRosters      []models.RosterEntry
	PositionCounts       []models.PositionCount
	UnaffiliatedPlayers  []models.UnaffiliatedPlayer
	PreferredTeamOverlap []models.PreferredTeamOverlap
}

// Evaluate runs every report against snap.
func Evaluate(snap *models.Snapshot) *Results {
	return &Results{
		PlayersWithTeams:     PlayersWithTeams(snap),
		UserTeamRosters:      UserTeamRosters(snap),
		PositionCounts:       PositionCounts(snap),
		UnaffiliatedPlayers:  UnaffiliatedPlayers(snap),
		PreferredTeamOverlap: PreferredTeamOverlap(snap),
	}
}

// compareNullable orders nil before any value, matching NULLS FIRST.
func compareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

// teamsByID returns the official teams whose ID is id. IDs are unique in a
// store, but a snapshot built by hand may repeat one and each match joins.
func teamsByID(snap *models.Snapshot, id *int64) []models.OfficialTeam {
	if id == nil {
		return nil
	}
	var out []models.OfficialTeam
	for _, t := range snap.OfficialTeams {
		if t.ID == *id {
			out = append(out, t)
		}
	}
	return out
}

func playersByID(snap *models.Snapshot, id int64) []models.Player {
	var out []models.Player
	for _, p := range snap.Players {
		if p.ID == id {
			out = append(out, p)
		}
	}
	return out
}

func usersByID(snap *models.Snapshot, id int64) []models.User {
	var out []models.User
	for _, u := range snap.Users {
		if u.ID == id {
			out = append(out, u)
		}
	}
	return out
}

// PlayersWithTeams left-joins players to official teams. A player whose
// reference is nil or dangling keeps a nil team name.
func PlayersWithTeams(snap *models.Snapshot) []models.PlayerWithTeam {
	rows := []models.PlayerWithTeam{}
	for _, p := range snap.Players {
		teams := teamsByID(snap, p.OfficialTeamID)
		if len(teams) == 0 {
			rows = append(rows, models.PlayerWithTeam{ID: p.ID, Name: p.Name, Position: p.Position})
			continue
		}
		for _, t := range teams {
			name := t.Name
			rows = append(rows, models.PlayerWithTeam{ID: p.ID, Name: p.Name, Position: p.Position, OfficialTeam: &name})
		}
	}

	slices.SortStableFunc(rows, func(a, b models.PlayerWithTeam) int {
		return cmp.Or(
			compareNullable(a.OfficialTeam, b.OfficialTeam),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return rows
}

// UserTeamRosters inner-joins fantasy teams to their owner and roster.
func UserTeamRosters(snap *models.Snapshot) []models.RosterEntry {
	type keyed struct {
		entry models.RosterEntry
		slot  int64
	}

	var rows []keyed
	for _, ut := range snap.UserTeams {
		for _, owner := range usersByID(snap, ut.UserID) {
			for _, utp := range snap.UserTeamPlayers {
				if utp.UserTeamID != ut.ID {
					continue
				}
				for _, p := range playersByID(snap, utp.PlayerID) {
					rows = append(rows, keyed{
						entry: models.RosterEntry{UserTeam: ut.Name, Owner: owner.Name, Player: p.Name, Position: p.Position},
						slot:  utp.ID,
					})
				}
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		return cmp.Or(
			cmp.Compare(a.entry.UserTeam, b.entry.UserTeam),
			cmp.Compare(a.entry.Player, b.entry.Player),
			cmp.Compare(a.slot, b.slot),
		)
	})

	out := make([]models.RosterEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
	}
	return out
}

// PositionCounts counts affiliated players per (team name, position).
// Players without a resolvable team are not counted.
func PositionCounts(snap *models.Snapshot) []models.PositionCount {
	type groupKey struct{ team, position string }

	counts := make(map[groupKey]int64)
	var order []groupKey
	for _, p := range snap.Players {
		for _, t := range teamsByID(snap, p.OfficialTeamID) {
			k := groupKey{t.Name, p.Position}
			if _, seen := counts[k]; !seen {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	rows := make([]models.PositionCount, 0, len(order))
	for _, k := range order {
		rows = append(rows, models.PositionCount{OfficialTeam: k.team, Position: k.position, Count: counts[k]})
	}

	slices.SortFunc(rows, func(a, b models.PositionCount) int {
		return cmp.Or(
			cmp.Compare(a.OfficialTeam, b.OfficialTeam),
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Position, b.Position),
		)
	})
	return rows
}

// UnaffiliatedPlayers returns players with a nil team reference in ID order.
// A dangling reference is not nil and does not qualify.
func UnaffiliatedPlayers(snap *models.Snapshot) []models.UnaffiliatedPlayer {
	rows := []models.UnaffiliatedPlayer{}
	for _, p := range snap.Players {
		if p.OfficialTeamID == nil {
			rows = append(rows, models.UnaffiliatedPlayer{ID: p.ID, Name: p.Name, Position: p.Position})
		}
	}
	slices.SortStableFunc(rows, func(a, b models.UnaffiliatedPlayer) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rows
}

// PreferredTeamOverlap counts, per (user name, preferred label), the roster
// slots whose player's team acronym equals the acronym of an official team
// whose short name is the label.
func PreferredTeamOverlap(snap *models.Snapshot) []models.PreferredTeamOverlap {
	type groupKey struct{ user, label string }

	counts := make(map[groupKey]int64)
	var order []groupKey
	for _, u := range snap.Users {
		if u.PreferredTeam == nil {
			continue
		}
		label := *u.PreferredTeam

		var preferred []models.OfficialTeam
		for _, t := range snap.OfficialTeams {
			if t.ShortName == label {
				preferred = append(preferred, t)
			}
		}
		if len(preferred) == 0 {
			continue
		}

		for _, ut := range snap.UserTeams {
			if ut.UserID != u.ID {
				continue
			}
			for _, utp := range snap.UserTeamPlayers {
				if utp.UserTeamID != ut.ID {
					continue
				}
				for _, p := range playersByID(snap, utp.PlayerID) {
					for _, t := range teamsByID(snap, p.OfficialTeamID) {
						for _, pt := range preferred {
							if t.Acronym != pt.Acronym {
								continue
							}
							k := groupKey{u.Name, label}
							if _, seen := counts[k]; !seen {
								order = append(order, k)
							}
							counts[k]++
						}
					}
				}
			}
		}
	}

	rows := make([]models.PreferredTeamOverlap, 0, len(order))
	for _, k := range order {
		rows = append(rows, models.PreferredTeamOverlap{User: k.user, PreferredTeam: k.label, Players: counts[k]})
	}
	slices.SortFunc(rows, func(a, b models.PreferredTeamOverlap) int {
		return cmp.Or(
			cmp.Compare(a.User, b.User),
			cmp.Compare(a.PreferredTeam, b.PreferredTeam),
		)
	})
	return rows
}
