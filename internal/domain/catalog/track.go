package catalog

import (
	"context"

	"github.com/google/uuid"

	"melodia-server-go/internal/platform/errors"
)

// TrackService implements track CRUD on top of the Store.
type TrackService struct {
	store Store
}

func NewTrackService(store Store) *TrackService {
	return &TrackService{store: store}
}

func (s *TrackService) FindAll(ctx context.Context) ([]*Track, error) {
	tracks, err := s.store.Tracks(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "track.find_all", "failed to list tracks", err)
	}
	return tracks, nil
}

func (s *TrackService) FindOne(ctx context.Context, id string) (*Track, error) {
	t, err := s.store.TrackByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "track.find_one", "failed to load track", err)
	}
	if t == nil {
		return nil, ErrTrackNotFound
	}
	return t, nil
}

func (s *TrackService) Create(ctx context.Context, name string, artistID, albumID *string, duration int) (*Track, error) {
	t := &Track{
		ID:       uuid.NewString(),
		Name:     name,
		ArtistID: artistID,
		AlbumID:  albumID,
		Duration: duration,
	}
	if err := s.store.InsertTrack(ctx, t); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "track.create", "failed to insert track", err)
	}
	return t, nil
}

func (s *TrackService) Update(ctx context.Context, id, name string, artistID, albumID *string, duration int) (*Track, error) {
	t, err := s.store.TrackByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "track.update", "failed to load track", err)
	}
	if t == nil {
		return nil, ErrTrackNotFound
	}

	t.Name = name
	t.ArtistID = artistID
	t.AlbumID = albumID
	t.Duration = duration
	if err := s.store.UpdateTrack(ctx, t); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "track.update", "failed to update track", err)
	}
	return t, nil
}

func (s *TrackService) Remove(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteTrack(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "track.remove", "failed to delete track", err)
	}
	if !deleted {
		return ErrTrackNotFound
	}
	return nil
}
