package models

import (
	"slices"
	"strconv"
)

// Profile is one of the fixed accounts the client can sign in as.
//
// The set of profiles is compiled into the binary; the entry code is checked
// locally before anything is sent to the remote API.
type Profile struct {
	// ID is the profile number in the range 1..4.
	ID int

	// EntryCode is the short numeric PIN that unlocks the profile.
	EntryCode string
}

// profiles is the complete, ordered profile set.
var profiles = []Profile{
	{ID: 1, EntryCode: "3221"},
	{ID: 2, EntryCode: "6969"},
	{ID: 3, EntryCode: "2626"},
	{ID: 4, EntryCode: "3859"},
}

// Profiles returns a copy of the fixed profile set ordered by ID.
func Profiles() []Profile {
	return slices.Clone(profiles)
}

// LookupProfile returns the profile with the given id.
// The second result is false when id is outside the fixed set.
func LookupProfile(id int) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// TokenKey returns the storage key under which the profile's session token
// is persisted, e.g. "token_p1".
func (p Profile) TokenKey() string {
	return TokenKey(p.ID)
}

// Label returns the short display label of the profile, e.g. "P1".
func (p Profile) Label() string {
	return "P" + strconv.Itoa(p.ID)
}

// TokenKey returns the storage key for the given profile id.
func TokenKey(profileID int) string {
	return "token_p" + strconv.Itoa(profileID)
}
