package catalog

import (
	"context"

	"melodia-server-go/internal/platform/errors"
)

// FavoritesService maintains the three favorites sets. Adding requires the
// target entity to exist; ids whose entity has since disappeared are
// silently skipped during hydration.
type FavoritesService struct {
	store Store
}

func NewFavoritesService(store Store) *FavoritesService {
	return &FavoritesService{store: store}
}

func (s *FavoritesService) FindAll(ctx context.Context) (*FavoritesResponse, error) {
	favs, err := s.store.Favorites(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "favorites.find_all", "failed to load favorites", err)
	}

	resp := &FavoritesResponse{
		Artists: make([]*Artist, 0, len(favs.Artists)),
		Albums:  make([]*Album, 0, len(favs.Albums)),
		Tracks:  make([]*Track, 0, len(favs.Tracks)),
	}

	for _, id := range favs.Artists {
		a, err := s.store.ArtistByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(errors.KindStorage, "favorites.find_all", "failed to load artist", err)
		}
		if a != nil {
			resp.Artists = append(resp.Artists, a)
		}
	}
	for _, id := range favs.Albums {
		a, err := s.store.AlbumByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(errors.KindStorage, "favorites.find_all", "failed to load album", err)
		}
		if a != nil {
			resp.Albums = append(resp.Albums, a)
		}
	}
	for _, id := range favs.Tracks {
		t, err := s.store.TrackByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(errors.KindStorage, "favorites.find_all", "failed to load track", err)
		}
		if t != nil {
			resp.Tracks = append(resp.Tracks, t)
		}
	}

	return resp, nil
}

// AddArtist records the artist as a favorite. The add is idempotent.
func (s *FavoritesService) AddArtist(ctx context.Context, id string) error {
	a, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_artist", "failed to load artist", err)
	}
	if a == nil {
		return ErrArtistNotFound
	}
	if err := s.store.AddFavorite(ctx, FavoriteArtists, id); err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_artist", "failed to add favorite", err)
	}
	return nil
}

func (s *FavoritesService) RemoveArtist(ctx context.Context, id string) error {
	return s.remove(ctx, FavoriteArtists, id, "favorites.remove_artist")
}

func (s *FavoritesService) AddAlbum(ctx context.Context, id string) error {
	a, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_album", "failed to load album", err)
	}
	if a == nil {
		return ErrAlbumNotFound
	}
	if err := s.store.AddFavorite(ctx, FavoriteAlbums, id); err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_album", "failed to add favorite", err)
	}
	return nil
}

func (s *FavoritesService) RemoveAlbum(ctx context.Context, id string) error {
	return s.remove(ctx, FavoriteAlbums, id, "favorites.remove_album")
}

func (s *FavoritesService) AddTrack(ctx context.Context, id string) error {
	t, err := s.store.TrackByID(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_track", "failed to load track", err)
	}
	if t == nil {
		return ErrTrackNotFound
	}
	if err := s.store.AddFavorite(ctx, FavoriteTracks, id); err != nil {
		return errors.Wrap(errors.KindStorage, "favorites.add_track", "failed to add favorite", err)
	}
	return nil
}

func (s *FavoritesService) RemoveTrack(ctx context.Context, id string) error {
	return s.remove(ctx, FavoriteTracks, id, "favorites.remove_track")
}

func (s *FavoritesService) remove(ctx context.Context, kind FavoriteKind, id, op string) error {
	removed, err := s.store.RemoveFavorite(ctx, kind, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, op, "failed to remove favorite", err)
	}
	if !removed {
		return ErrNotInFavorites
	}
	return nil
}
