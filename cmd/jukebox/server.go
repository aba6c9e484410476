package main

import (
	"net/http"
	"strings"

	"jukebox/internal/app/playlists"
	"jukebox/internal/app/tracks"
	"jukebox/internal/app/users"
	"jukebox/internal/auth"
	"jukebox/internal/httpapi"
	"jukebox/internal/middleware"
	"jukebox/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store, tokens *auth.TokenManager) http.Handler {
	userSvc := users.New(dataStore, tokens)
	playlistSvc := playlists.New(dataStore)
	trackSvc := tracks.New(dataStore)

	handler := httpapi.New(userSvc, playlistSvc, trackSvc, tokens).Routes()
	handler = withCORS(cfg.AllowedOrigins, handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	return handler
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
