package storage

import (
	"context"
	"sync"

	"melodia-server-go/internal/domain/catalog"
)

// MemoryLibrary keeps the whole catalog in process memory behind one lock,
// which makes the cross-entity delete cascades trivially consistent.
type MemoryLibrary struct {
	mu      sync.RWMutex
	artists []*catalog.Artist
	albums  []*catalog.Album
	tracks  []*catalog.Track
	favs    map[catalog.FavoriteKind][]string
}

func NewMemoryLibrary() *MemoryLibrary {
	return &MemoryLibrary{
		favs: map[catalog.FavoriteKind][]string{
			catalog.FavoriteArtists: {},
			catalog.FavoriteAlbums:  {},
			catalog.FavoriteTracks:  {},
		},
	}
}

func (s *MemoryLibrary) Artists(_ context.Context) ([]*catalog.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Artist, len(s.artists))
	for i, a := range s.artists {
		cp := *a
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryLibrary) ArtistByID(_ context.Context, id string) (*catalog.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.artists {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryLibrary) InsertArtist(_ context.Context, a *catalog.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *a
	s.artists = append(s.artists, &cp)
	return nil
}

func (s *MemoryLibrary) UpdateArtist(_ context.Context, a *catalog.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.artists {
		if existing.ID == a.ID {
			cp := *a
			s.artists[i] = &cp
			return nil
		}
	}
	return nil
}

func (s *MemoryLibrary) DeleteArtist(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.artists {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}
	s.artists = append(s.artists[:idx], s.artists[idx+1:]...)

	for _, t := range s.tracks {
		if t.ArtistID != nil && *t.ArtistID == id {
			t.ArtistID = nil
		}
	}
	for _, a := range s.albums {
		if a.ArtistID != nil && *a.ArtistID == id {
			a.ArtistID = nil
		}
	}
	s.favs[catalog.FavoriteArtists] = removeID(s.favs[catalog.FavoriteArtists], id)

	return true, nil
}

func (s *MemoryLibrary) Albums(_ context.Context) ([]*catalog.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Album, len(s.albums))
	for i, a := range s.albums {
		cp := *a
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryLibrary) AlbumByID(_ context.Context, id string) (*catalog.Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.albums {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryLibrary) InsertAlbum(_ context.Context, a *catalog.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *a
	s.albums = append(s.albums, &cp)
	return nil
}

func (s *MemoryLibrary) UpdateAlbum(_ context.Context, a *catalog.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.albums {
		if existing.ID == a.ID {
			cp := *a
			s.albums[i] = &cp
			return nil
		}
	}
	return nil
}

func (s *MemoryLibrary) DeleteAlbum(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.albums {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}
	s.albums = append(s.albums[:idx], s.albums[idx+1:]...)

	for _, t := range s.tracks {
		if t.AlbumID != nil && *t.AlbumID == id {
			t.AlbumID = nil
		}
	}
	s.favs[catalog.FavoriteAlbums] = removeID(s.favs[catalog.FavoriteAlbums], id)

	return true, nil
}

func (s *MemoryLibrary) Tracks(_ context.Context) ([]*catalog.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Track, len(s.tracks))
	for i, t := range s.tracks {
		cp := *t
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryLibrary) TrackByID(_ context.Context, id string) (*catalog.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tracks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryLibrary) InsertTrack(_ context.Context, t *catalog.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *t
	s.tracks = append(s.tracks, &cp)
	return nil
}

func (s *MemoryLibrary) UpdateTrack(_ context.Context, t *catalog.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tracks {
		if existing.ID == t.ID {
			cp := *t
			s.tracks[i] = &cp
			return nil
		}
	}
	return nil
}

func (s *MemoryLibrary) DeleteTrack(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tracks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}
	s.tracks = append(s.tracks[:idx], s.tracks[idx+1:]...)
	s.favs[catalog.FavoriteTracks] = removeID(s.favs[catalog.FavoriteTracks], id)

	return true, nil
}

func (s *MemoryLibrary) Favorites(_ context.Context) (*catalog.Favorites, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &catalog.Favorites{
		Artists: append([]string(nil), s.favs[catalog.FavoriteArtists]...),
		Albums:  append([]string(nil), s.favs[catalog.FavoriteAlbums]...),
		Tracks:  append([]string(nil), s.favs[catalog.FavoriteTracks]...),
	}, nil
}

func (s *MemoryLibrary) AddFavorite(_ context.Context, kind catalog.FavoriteKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.favs[kind] {
		if existing == id {
			return nil
		}
	}
	s.favs[kind] = append(s.favs[kind], id)
	return nil
}

func (s *MemoryLibrary) RemoveFavorite(_ context.Context, kind catalog.FavoriteKind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.favs[kind])
	s.favs[kind] = removeID(s.favs[kind], id)
	return len(s.favs[kind]) != before, nil
}

func (s *MemoryLibrary) HasFavorite(_ context.Context, kind catalog.FavoriteKind, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.favs[kind] {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
