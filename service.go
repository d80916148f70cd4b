package admins

import (
	"context"
	"fmt"

	yall "yall.in"
)

// ProfileResolver resolves a human-readable display name for a Steam
// identity. Lookups are best-effort; callers degrade failures to
// UnknownNickname instead of propagating them.
type ProfileResolver interface {
	PlayerName(ctx context.Context, steamID string) (string, error)
}

// Dependencies bundles the collaborators grant ingestion needs. It's
// constructed once at startup and handed to the HTTP layer; nothing in
// this package reaches for globals.
type Dependencies struct {
	Storer   Storer
	Profiles ProfileResolver
	Notifier *Notifier
	Log      *yall.Logger
}

// GrantSeeder creates a Seeder admin entry for steamID, good for the
// next three days, persists it, and announces it through the Notifier
// without waiting for delivery. The nickname comes from the profile
// lookup, falling back to UnknownNickname on any lookup failure.
// userID identifies whoever triggered the grant; it's logged and
// otherwise unused. Granting an identity that already has a live entry
// appends a second entry rather than extending the first.
func (d Dependencies) GrantSeeder(ctx context.Context, steamID, userID string) (Admin, error) {
	if steamID == "" {
		return Admin{}, ErrNoSteamID
	}
	log := d.Log.WithField("steam_id", steamID).WithField("user_id", userID)

	nickname, err := d.Profiles.PlayerName(ctx, steamID)
	if err != nil {
		log.WithError(err).Warn("Error resolving nickname, falling back")
		nickname = UnknownNickname
	}

	admin := FillAdminDefaults(Admin{
		SteamID:  steamID,
		Nickname: nickname,
	})
	err = d.Storer.CreateAdmin(ctx, admin)
	if err != nil {
		return Admin{}, fmt.Errorf("persisting admin: %w", err)
	}
	log.WithField("expires", admin.ExpiresAt).Info("Granted seeder access")

	d.Notifier.Announce(admin.Line())

	return admin, nil
}
