package admins

import (
	"errors"
	"strings"
	"time"
)

const (
	// GroupSeeder is the privilege tier granted to webhook-created
	// admin entries.
	GroupSeeder = "Seeder"

	// UnknownNickname is the fallback display name used when a stored
	// entry has no nickname or the profile lookup fails.
	UnknownNickname = "unknown"

	// GrantDuration is how long a newly created admin entry stays
	// valid.
	GrantDuration = 72 * time.Hour

	adminPrefix = "Admin="
	groupPrefix = "Group="
	fieldSep    = " // "

	timeFormat = time.RFC3339Nano
)

var (
	ErrNoSteamID      = errors.New("no steam ID specified")
	ErrMalformedAdmin = errors.New("malformed admin line")
	ErrInvalidExpiry  = errors.New("admin line has an unparsable expiry timestamp")
)

// Admin is a time-limited privilege entry for one Steam identity.
// Entries are append-only: re-granting an identity adds a second entry
// rather than updating the first, and the only mutation an entry ever
// sees is removal once it expires.
type Admin struct {
	SteamID   string
	Group     string
	Nickname  string
	ExpiresAt time.Time
}

// AdminList is the full contents of the store: group definition lines,
// carried verbatim and never interpreted, followed by admin entries.
// Both sequences keep their stored order across load/save cycles.
type AdminList struct {
	Groups []string
	Admins []Admin
}

// Line renders the Admin as a single line of the store's text format:
//
//	Admin=<steamID>:<group> // <nickname> // <expiry>
//
// with the expiry in RFC 3339 form. The same string doubles as the
// notification message announced when the entry is created.
func (a Admin) Line() string {
	return adminPrefix + a.SteamID + ":" + a.Group + fieldSep + a.Nickname + fieldSep + a.ExpiresAt.Format(timeFormat)
}

// ParseAdminLine decodes one Admin line of the store's text format.
// The nickname and expiry segments are optional: a missing nickname
// falls back to UnknownNickname, and a missing expiry falls back to the
// current time, so the entry is picked up by the next sweep instead of
// living forever. A line without the Admin prefix, without the
// steamID:group pair, or with an expiry segment that is present but
// unparsable is rejected.
func ParseAdminLine(line string) (Admin, error) {
	body, found := strings.CutPrefix(line, adminPrefix)
	if !found {
		return Admin{}, ErrMalformedAdmin
	}
	segments := strings.Split(body, fieldSep)
	steamID, group, found := strings.Cut(segments[0], ":")
	if !found || steamID == "" {
		return Admin{}, ErrMalformedAdmin
	}
	admin := Admin{
		SteamID:   steamID,
		Group:     group,
		Nickname:  UnknownNickname,
		ExpiresAt: time.Now(),
	}
	if len(segments) > 1 {
		admin.Nickname = segments[1]
	}
	if len(segments) > 2 {
		expires, err := time.Parse(timeFormat, segments[2])
		if err != nil {
			return Admin{}, ErrInvalidExpiry
		}
		admin.ExpiresAt = expires
	}
	return admin, nil
}

// FillAdminDefaults fills in the fields of an Admin that weren't set:
// the Seeder group, the unknown-nickname sentinel, and an expiry of
// GrantDuration from now.
func FillAdminDefaults(admin Admin) Admin {
	res := admin
	if res.Group == "" {
		res.Group = GroupSeeder
	}
	if res.Nickname == "" {
		res.Nickname = UnknownNickname
	}
	if res.ExpiresAt.IsZero() {
		res.ExpiresAt = time.Now().Add(GrantDuration)
	}
	return res
}
