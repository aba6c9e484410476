package playlists

import (
	"context"
	"errors"
	"testing"

	"jukebox/internal/authz"
	"jukebox/internal/models"
	"jukebox/internal/store"
)

type stubStore struct {
	playlist *models.Playlist
	getErr   error

	tracks []*models.Track

	created      *models.Playlist
	addedTrackID int64
}

func (s *stubStore) ListPlaylistsByUser(ctx context.Context, userID int64) ([]*models.Playlist, error) {
	return []*models.Playlist{s.playlist}, nil
}

func (s *stubStore) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.playlist, nil
}

func (s *stubStore) CreatePlaylist(ctx context.Context, name, description string, userID int64) (*models.Playlist, error) {
	s.created = &models.Playlist{ID: 99, Name: name, Description: description, UserID: userID}
	return s.created, nil
}

func (s *stubStore) ListTracksByPlaylist(ctx context.Context, playlistID int64) ([]*models.Track, error) {
	return s.tracks, nil
}

func (s *stubStore) AddTrackToPlaylist(ctx context.Context, playlistID, trackID int64) (*models.PlaylistTrack, error) {
	s.addedTrackID = trackID
	return &models.PlaylistTrack{ID: 1, PlaylistID: playlistID, TrackID: trackID}, nil
}

func TestGetOwnership(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{"owner may read", 1, nil},
		{"non-owner is forbidden", 2, authz.ErrForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := New(&stubStore{playlist: &models.Playlist{ID: 10, UserID: 1}})

			playlist, err := svc.Get(context.Background(), tc.userID, 10)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if playlist.ID != 10 {
				t.Fatalf("unexpected playlist: %+v", playlist)
			}
		})
	}
}

func TestGetNotFoundPrecedesForbidden(t *testing.T) {
	svc := New(&stubStore{getErr: store.ErrPlaylistNotFound})

	_, err := svc.Get(context.Background(), 2, 10)
	if !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
	if errors.Is(err, authz.ErrForbidden) {
		t.Fatal("missing playlist must never surface as forbidden")
	}
}

func TestListTracksForbiddenForNonOwner(t *testing.T) {
	svc := New(&stubStore{
		playlist: &models.Playlist{ID: 10, UserID: 1},
		tracks:   []*models.Track{{ID: 1, Name: "Track 1"}},
	})

	if _, err := svc.ListTracks(context.Background(), 2, 10); !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	tracks, err := svc.ListTracks(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListTracks: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		playlist    string
		description string
		wantErr     bool
	}{
		{"valid", "Road Trip", "driving songs", false},
		{"missing name", "", "driving songs", true},
		{"missing description", "Road Trip", "", true},
		{"whitespace only", "  ", "  ", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := &stubStore{}
			svc := New(st)

			created, err := svc.Create(context.Background(), 4, tc.playlist, tc.description)
			if tc.wantErr {
				if !errors.Is(err, ErrMissingFields) {
					t.Fatalf("expected ErrMissingFields, got %v", err)
				}
				if st.created != nil {
					t.Fatal("no playlist should be persisted on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if created.UserID != 4 {
				t.Fatalf("playlist owner = %d, want 4", created.UserID)
			}
		})
	}
}

func TestAddTrackOrdering(t *testing.T) {
	// Missing playlist wins over missing trackId and over ownership.
	svc := New(&stubStore{getErr: store.ErrPlaylistNotFound})
	if _, err := svc.AddTrack(context.Background(), 2, 10, 0); !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}

	// Missing trackId is reported before the ownership decision.
	svc = New(&stubStore{playlist: &models.Playlist{ID: 10, UserID: 1}})
	if _, err := svc.AddTrack(context.Background(), 2, 10, 0); !errors.Is(err, ErrTrackRequired) {
		t.Fatalf("expected ErrTrackRequired, got %v", err)
	}

	// Non-owner with a valid trackId is forbidden.
	if _, err := svc.AddTrack(context.Background(), 2, 10, 5); !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAddTrackSuccess(t *testing.T) {
	st := &stubStore{playlist: &models.Playlist{ID: 10, UserID: 1}}
	svc := New(st)

	pt, err := svc.AddTrack(context.Background(), 1, 10, 5)
	if err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if pt.PlaylistID != 10 || pt.TrackID != 5 {
		t.Fatalf("unexpected association: %+v", pt)
	}
	if st.addedTrackID != 5 {
		t.Fatalf("store received trackID %d, want 5", st.addedTrackID)
	}
}
