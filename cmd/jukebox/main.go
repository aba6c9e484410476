package main

import (
	"context"
	"net/http"

	"jukebox/internal/auth"
	"jukebox/internal/logging"
	"jukebox/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal(err, "configure token manager")
	}

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "open database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrapDatabase(context.Background(), db, dataStore); err != nil {
		logger.Fatal(err, "bootstrap database")
	}

	handler := newHTTPHandler(cfg, dataStore, tokens)

	logger.Infof("API available at http://localhost%v", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
