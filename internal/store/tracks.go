package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jukebox/internal/models"
)

// ListTracks returns the shared track catalog.
func (s *Store) ListTracks(ctx context.Context) ([]*models.Track, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, duration_ms
		FROM tracks
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// GetTrack returns a single track by id.
func (s *Store) GetTrack(ctx context.Context, id int64) (*models.Track, error) {
	var track models.Track
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, duration_ms
		FROM tracks
		WHERE id = $1`, id).
		Scan(&track.ID, &track.Name, &track.DurationMS)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return &track, nil
}

// ListTracksByPlaylist returns the tracks in a playlist. Duplicate
// associations yield duplicate rows, in association order.
func (s *Store) ListTracksByPlaylist(ctx context.Context, playlistID int64) ([]*models.Track, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.duration_ms
		FROM tracks t
		JOIN playlists_tracks pt ON pt.track_id = t.id
		WHERE pt.playlist_id = $1
		ORDER BY pt.id ASC`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

func scanTracks(rows *sql.Rows) ([]*models.Track, error) {
	tracks := make([]*models.Track, 0)
	for rows.Next() {
		var track models.Track
		if err := rows.Scan(&track.ID, &track.Name, &track.DurationMS); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, &track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}
