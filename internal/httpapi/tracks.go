package httpapi

import (
	"errors"
	"net/http"

	"jukebox/internal/store"
)

func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	list, err := s.tracks.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid track id"})
		return
	}

	track, err := s.tracks.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "track not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, track)
}

func (s *Server) handleTrackPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid track id"})
		return
	}

	list, err := s.tracks.PlaylistsFor(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrTrackNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "track not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}
