package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"jukebox/internal/auth"
	"jukebox/internal/store"
)

// bootstrapDatabase ensures the schema exists and seeds demo data on an
// empty database. Both steps are idempotent.
func bootstrapDatabase(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	if err := ensureSchema(ctx, db); err != nil {
		return err
	}
	return seedDemoData(ctx, db, dataStore)
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			user_id BIGINT NOT NULL REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS tracks (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			duration_ms BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS playlists_tracks (
			id BIGSERIAL PRIMARY KEY,
			playlist_id BIGINT NOT NULL REFERENCES playlists(id),
			track_id BIGINT NOT NULL REFERENCES tracks(id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func seedDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	userIDs := make([]int64, 0, 2)
	for _, username := range []string{"demo1", "demo2"} {
		hash, err := auth.HashPassword("demo123")
		if err != nil {
			return fmt.Errorf("seed user %s: %w", username, err)
		}
		user, err := dataStore.CreateUser(ctx, username, hash)
		if err != nil {
			if errors.Is(err, store.ErrUserExists) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", username, err)
		}
		userIDs = append(userIDs, user.ID)
	}
	if len(userIDs) < 2 {
		return nil
	}

	names := make([]string, 0, 20)
	descriptions := make([]string, 0, 20)
	owners := make([]int64, 0, 20)
	trackNames := make([]string, 0, 20)
	durations := make([]int64, 0, 20)
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("Playlist %d", i))
		descriptions = append(descriptions, "lorem ipsum playlist description")
		owners = append(owners, userIDs[i%2])
		trackNames = append(trackNames, fmt.Sprintf("Track %d", i))
		durations = append(durations, int64(i)*50000)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO playlists (name, description, user_id)
		SELECT name, description, user_id
		FROM unnest($1::text[], $2::text[], $3::bigint[]) AS seed(name, description, user_id)`,
		pq.Array(names), pq.Array(descriptions), pq.Array(owners)); err != nil {
		return fmt.Errorf("seed playlists: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO tracks (name, duration_ms)
		SELECT name, duration_ms
		FROM unnest($1::text[], $2::bigint[]) AS seed(name, duration_ms)`,
		pq.Array(trackNames), pq.Array(durations)); err != nil {
		return fmt.Errorf("seed tracks: %w", err)
	}

	for i := int64(1); i <= 5; i++ {
		playlistID := 1 + i/2
		if _, err := dataStore.AddTrackToPlaylist(ctx, playlistID, i); err != nil {
			return fmt.Errorf("seed playlist track: %w", err)
		}
	}

	return nil
}
