// Package playlists coordinates playlist workflows. Every detailed read or
// mutation of a specific playlist resolves the row first, then runs the
// ownership guard; not-found always precedes forbidden.
package playlists

import (
	"context"
	"errors"
	"strings"

	"jukebox/internal/authz"
	"jukebox/internal/models"
)

var (
	// ErrMissingFields indicates name or description is absent.
	ErrMissingFields = errors.New("name and description are required")
	// ErrTrackRequired indicates the request body carried no track id.
	ErrTrackRequired = errors.New("trackId is required")
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	ListPlaylistsByUser(ctx context.Context, userID int64) ([]*models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error)
	CreatePlaylist(ctx context.Context, name, description string, userID int64) (*models.Playlist, error)
	ListTracksByPlaylist(ctx context.Context, playlistID int64) ([]*models.Track, error)
	AddTrackToPlaylist(ctx context.Context, playlistID, trackID int64) (*models.PlaylistTrack, error)
}

// Service coordinates playlist-related operations for a resolved identity.
type Service interface {
	ListMine(ctx context.Context, userID int64) ([]*models.Playlist, error)
	Get(ctx context.Context, userID, id int64) (*models.Playlist, error)
	ListTracks(ctx context.Context, userID, id int64) ([]*models.Track, error)
	Create(ctx context.Context, userID int64, name, description string) (*models.Playlist, error)
	AddTrack(ctx context.Context, userID, playlistID, trackID int64) (*models.PlaylistTrack, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// ListMine is scoped by the identity at the query level; no post-hoc
// ownership check applies.
func (s *service) ListMine(ctx context.Context, userID int64) ([]*models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylistsByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID, id int64) (*models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	playlist, err := s.store.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.PlaylistAccess(userID, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *service) ListTracks(ctx context.Context, userID, id int64) ([]*models.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	playlist, err := s.store.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.PlaylistAccess(userID, playlist); err != nil {
		return nil, err
	}
	return s.store.ListTracksByPlaylist(ctx, playlist.ID)
}

func (s *service) Create(ctx context.Context, userID int64, name, description string) (*models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrMissingFields
	}
	return s.store.CreatePlaylist(ctx, name, description, userID)
}

// AddTrack resolves the playlist before validating the track reference, so a
// missing playlist is reported ahead of a missing trackId, which in turn
// precedes the ownership decision.
func (s *service) AddTrack(ctx context.Context, userID, playlistID, trackID int64) (*models.PlaylistTrack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if trackID <= 0 {
		return nil, ErrTrackRequired
	}
	if err := authz.PlaylistAccess(userID, playlist); err != nil {
		return nil, err
	}
	return s.store.AddTrackToPlaylist(ctx, playlist.ID, trackID)
}
