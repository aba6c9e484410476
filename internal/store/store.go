// Package store provides persistence backed by Postgres. It is the data
// gateway for users, playlists, tracks, and the playlist-track association.
package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrPlaylistNotFound indicates the playlist id does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrTrackNotFound indicates the track id does not exist.
	ErrTrackNotFound = errors.New("track not found")
)

// Store issues CRUD operations against the database. Safe for concurrent use;
// each call is a single logical unit of work with no cross-call state.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
