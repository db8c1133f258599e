package catalog

import (
	"context"

	"github.com/google/uuid"

	"melodia-server-go/internal/platform/errors"
)

// ArtistService implements artist CRUD on top of the Store.
type ArtistService struct {
	store Store
}

func NewArtistService(store Store) *ArtistService {
	return &ArtistService{store: store}
}

func (s *ArtistService) FindAll(ctx context.Context) ([]*Artist, error) {
	artists, err := s.store.Artists(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "artist.find_all", "failed to list artists", err)
	}
	return artists, nil
}

func (s *ArtistService) FindOne(ctx context.Context, id string) (*Artist, error) {
	a, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "artist.find_one", "failed to load artist", err)
	}
	if a == nil {
		return nil, ErrArtistNotFound
	}
	return a, nil
}

func (s *ArtistService) Create(ctx context.Context, name string, grammy bool) (*Artist, error) {
	a := &Artist{
		ID:     uuid.NewString(),
		Name:   name,
		Grammy: grammy,
	}
	if err := s.store.InsertArtist(ctx, a); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "artist.create", "failed to insert artist", err)
	}
	return a, nil
}

func (s *ArtistService) Update(ctx context.Context, id, name string, grammy bool) (*Artist, error) {
	a, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "artist.update", "failed to load artist", err)
	}
	if a == nil {
		return nil, ErrArtistNotFound
	}

	a.Name = name
	a.Grammy = grammy
	if err := s.store.UpdateArtist(ctx, a); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "artist.update", "failed to update artist", err)
	}
	return a, nil
}

func (s *ArtistService) Remove(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteArtist(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "artist.remove", "failed to delete artist", err)
	}
	if !deleted {
		return ErrArtistNotFound
	}
	return nil
}
