// AngelaMos | 2026
// entity.go

package profile

import (
	"time"
)

// User is the users row: account columns owned by auth plus the portal
// profile columns the configurator and the add-on prompt feed on.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Age          int       `db:"age"`
	Location     string    `db:"location"`
	FamilySize   int       `db:"family_size"`
	Occupation   string    `db:"occupation"`
	Avatar       string    `db:"avatar"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Seeded reports whether the portal profile fields have been filled in.
// Accounts created through registration start with zeroed profile columns;
// the first profile read seeds them with defaults.
func (u *User) Seeded() bool {
	return u.Age > 0
}

const (
	defaultAge        = 35
	defaultLocation   = "New York, NY"
	defaultFamilySize = 2
	defaultOccupation = "Software Engineer"
	defaultAvatar     = "https://placehold.co/100x100.png"
)

func applyDefaults(u *User) {
	u.Age = defaultAge
	u.Location = defaultLocation
	u.FamilySize = defaultFamilySize
	u.Occupation = defaultOccupation
	if u.Avatar == "" {
		u.Avatar = defaultAvatar
	}
}
