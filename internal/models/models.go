package models

// User is an account holder. The password is stored only as a bcrypt hash and
// never serialized in responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Playlist belongs to exactly one user. UserID is set at creation and never
// reassigned.
type Playlist struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}

// Track is part of the shared catalog; tracks have no owner.
type Track struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DurationMS int64  `json:"durationMs"`
}

// PlaylistTrack records that a track appears in a playlist.
type PlaylistTrack struct {
	ID         int64 `json:"id"`
	PlaylistID int64 `json:"playlistId"`
	TrackID    int64 `json:"trackId"`
}
