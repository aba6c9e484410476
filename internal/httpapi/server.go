// Package httpapi wires HTTP handlers to the underlying services.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"jukebox/internal/models"
)

// UserService captures the identity operations needed by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	ListMine(ctx context.Context, userID int64) ([]*models.Playlist, error)
	Get(ctx context.Context, userID, id int64) (*models.Playlist, error)
	ListTracks(ctx context.Context, userID, id int64) ([]*models.Track, error)
	Create(ctx context.Context, userID int64, name, description string) (*models.Playlist, error)
	AddTrack(ctx context.Context, userID, playlistID, trackID int64) (*models.PlaylistTrack, error)
}

// TrackService coordinates track-level operations.
type TrackService interface {
	List(ctx context.Context) ([]*models.Track, error)
	Get(ctx context.Context, id int64) (*models.Track, error)
	PlaylistsFor(ctx context.Context, userID, trackID int64) ([]*models.Playlist, error)
}

// TokenVerifier resolves a presented bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	playlists PlaylistService
	tracks    TrackService
	verifier  TokenVerifier
}

// New configures a Server with the given services and token verifier.
func New(users UserService, playlists PlaylistService, tracks TrackService, verifier TokenVerifier) *Server {
	return &Server{
		users:     users,
		playlists: playlists,
		tracks:    tracks,
		verifier:  verifier,
	}
}

// Routes exposes the HTTP handlers for identity, playlist, and track access.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /users/register", s.handleRegister)
	mux.HandleFunc("POST /users/login", s.handleLogin)

	mux.HandleFunc("GET /playlists", s.requireUser(s.handleListPlaylists))
	mux.HandleFunc("POST /playlists", s.requireUser(s.handleCreatePlaylist))
	mux.HandleFunc("GET /playlists/{id}", s.requireUser(s.handleGetPlaylist))
	mux.HandleFunc("GET /playlists/{id}/tracks", s.requireUser(s.handleListPlaylistTracks))
	mux.HandleFunc("POST /playlists/{id}/tracks", s.requireUser(s.handleAddPlaylistTrack))

	mux.HandleFunc("GET /tracks", s.handleListTracks)
	mux.HandleFunc("GET /tracks/{id}", s.handleGetTrack)
	mux.HandleFunc("GET /tracks/{id}/playlists", s.requireUser(s.handleTrackPlaylists))

	return mux
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
