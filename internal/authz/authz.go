// Package authz decides whether a resolved identity may act on a loaded
// resource. Resource resolution happens before these checks run, so a missing
// resource surfaces as not-found and never reaches the guard.
package authz

import (
	"errors"

	"jukebox/internal/models"
)

// ErrForbidden indicates a valid identity acting on a resource it does not own.
var ErrForbidden = errors.New("forbidden")

// PlaylistAccess allows the action iff the playlist is owned by userID.
func PlaylistAccess(userID int64, playlist *models.Playlist) error {
	if playlist == nil || playlist.UserID != userID {
		return ErrForbidden
	}
	return nil
}

// FilterOwnedPlaylists returns exactly the playlists in the input owned by
// userID, preserving relative order. An empty result is not an error.
func FilterOwnedPlaylists(userID int64, playlists []*models.Playlist) []*models.Playlist {
	owned := make([]*models.Playlist, 0, len(playlists))
	for _, p := range playlists {
		if p != nil && p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned
}
