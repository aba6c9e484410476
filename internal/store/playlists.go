package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jukebox/internal/models"
)

// ListPlaylistsByUser returns all playlists owned by a user, oldest first.
func (s *Store) ListPlaylistsByUser(ctx context.Context, userID int64) ([]*models.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, user_id
		FROM playlists
		WHERE user_id = $1
		ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

// GetPlaylist returns a single playlist by id.
func (s *Store) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, user_id
		FROM playlists
		WHERE id = $1`, id).
		Scan(&playlist.ID, &playlist.Name, &playlist.Description, &playlist.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return &playlist, nil
}

// CreatePlaylist persists a new playlist owned by userID. The owner reference
// is set exactly once here and never reassigned.
func (s *Store) CreatePlaylist(ctx context.Context, name, description string, userID int64) (*models.Playlist, error) {
	var playlist models.Playlist
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (name, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, user_id`, name, description, userID).
		Scan(&playlist.ID, &playlist.Name, &playlist.Description, &playlist.UserID)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}
	return &playlist, nil
}

// AddTrackToPlaylist records a playlist-track association. The same track may
// appear in a playlist more than once; no uniqueness is enforced on the pair.
func (s *Store) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int64) (*models.PlaylistTrack, error) {
	var pt models.PlaylistTrack
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists_tracks (playlist_id, track_id)
		VALUES ($1, $2)
		RETURNING id, playlist_id, track_id`, playlistID, trackID).
		Scan(&pt.ID, &pt.PlaylistID, &pt.TrackID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrTrackNotFound
		}
		return nil, fmt.Errorf("insert playlist track: %w", err)
	}
	return &pt, nil
}

// ListPlaylistsByTrack returns every playlist containing the track, regardless
// of owner. Callers narrow the result to the requesting identity.
func (s *Store) ListPlaylistsByTrack(ctx context.Context, trackID int64) ([]*models.Playlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT p.id, p.name, p.description, p.user_id
		FROM playlists p
		JOIN playlists_tracks pt ON pt.playlist_id = p.id
		WHERE pt.track_id = $1
		ORDER BY p.id ASC`, trackID)
	if err != nil {
		return nil, fmt.Errorf("list playlists by track: %w", err)
	}
	defer rows.Close()

	return scanPlaylists(rows)
}

func scanPlaylists(rows *sql.Rows) ([]*models.Playlist, error) {
	playlists := make([]*models.Playlist, 0)
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Description, &playlist.UserID); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, &playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}
