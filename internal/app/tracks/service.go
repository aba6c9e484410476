// Package tracks exposes the shared track catalog. Listing and lookup are
// public; the track-to-playlists view is scoped to the requesting identity.
package tracks

import (
	"context"

	"jukebox/internal/authz"
	"jukebox/internal/models"
)

// Store captures the persistence needs for track workflows.
type Store interface {
	ListTracks(ctx context.Context) ([]*models.Track, error)
	GetTrack(ctx context.Context, id int64) (*models.Track, error)
	ListPlaylistsByTrack(ctx context.Context, trackID int64) ([]*models.Playlist, error)
}

// Service coordinates track-related operations.
type Service interface {
	List(ctx context.Context) ([]*models.Track, error)
	Get(ctx context.Context, id int64) (*models.Track, error)
	PlaylistsFor(ctx context.Context, userID, trackID int64) ([]*models.Playlist, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]*models.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListTracks(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*models.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetTrack(ctx, id)
}

// PlaylistsFor resolves the track first, then narrows the playlists that
// contain it down to those owned by userID, preserving order. Zero matches is
// an empty sequence, never an error.
func (s *service) PlaylistsFor(ctx context.Context, userID, trackID int64) ([]*models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	track, err := s.store.GetTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}

	playlists, err := s.store.ListPlaylistsByTrack(ctx, track.ID)
	if err != nil {
		return nil, err
	}
	return authz.FilterOwnedPlaylists(userID, playlists), nil
}
