package catalog

import (
	"context"

	"github.com/google/uuid"

	"melodia-server-go/internal/platform/errors"
)

// AlbumService implements album CRUD on top of the Store.
type AlbumService struct {
	store Store
}

func NewAlbumService(store Store) *AlbumService {
	return &AlbumService{store: store}
}

func (s *AlbumService) FindAll(ctx context.Context) ([]*Album, error) {
	albums, err := s.store.Albums(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "album.find_all", "failed to list albums", err)
	}
	return albums, nil
}

func (s *AlbumService) FindOne(ctx context.Context, id string) (*Album, error) {
	a, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "album.find_one", "failed to load album", err)
	}
	if a == nil {
		return nil, ErrAlbumNotFound
	}
	return a, nil
}

func (s *AlbumService) Create(ctx context.Context, name string, year int, artistID *string) (*Album, error) {
	a := &Album{
		ID:       uuid.NewString(),
		Name:     name,
		Year:     year,
		ArtistID: artistID,
	}
	if err := s.store.InsertAlbum(ctx, a); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "album.create", "failed to insert album", err)
	}
	return a, nil
}

func (s *AlbumService) Update(ctx context.Context, id, name string, year int, artistID *string) (*Album, error) {
	a, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "album.update", "failed to load album", err)
	}
	if a == nil {
		return nil, ErrAlbumNotFound
	}

	a.Name = name
	a.Year = year
	a.ArtistID = artistID
	if err := s.store.UpdateAlbum(ctx, a); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "album.update", "failed to update album", err)
	}
	return a, nil
}

func (s *AlbumService) Remove(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteAlbum(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "album.remove", "failed to delete album", err)
	}
	if !deleted {
		return ErrAlbumNotFound
	}
	return nil
}
