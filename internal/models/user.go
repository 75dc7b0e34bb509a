package models

import "github.com/uptrace/bun"

// Sex codes accepted for User.Sex.
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "O"
)

// BirthDateLayout is the layout User.BirthDate is stored in.
const BirthDateLayout = "2006-01-02"

// User represents a registered person who can own fantasy teams.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	// ID is unique within the collection. It is assigned by the caller,
	// never by the store.
	ID int64 `bun:"id,pk"`

	// Name is the user's full name.
	Name string `bun:"name,notnull"`

	// Email is unique across all users; a duplicate insert is rejected.
	Email string `bun:"email,notnull"`

	// PasswordHash holds the stored credential. Seeded users carry literal
	// placeholder values; registered users carry a bcrypt hash.
	PasswordHash string `bun:"password_hash,notnull"`

	// Sex is one of SexMale, SexFemale or SexOther.
	Sex string `bun:"sex,notnull"`

	// Phone is optional.
	Phone *string `bun:"phone"`

	// BirthDate is formatted with BirthDateLayout.
	BirthDate string `bun:"birth_date,notnull"`

	// PreferredTeam is a free-text label compared against
	// OfficialTeam.ShortName. Optional.
	PreferredTeam *string `bun:"preferred_team"`
}

// ValidSex reports whether s is an accepted sex code.
func ValidSex(s string) bool {
	switch s {
	case SexMale, SexFemale, SexOther:
		return true
	}
	return false
}
