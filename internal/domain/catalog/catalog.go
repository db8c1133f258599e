package catalog

import "context"

// Artist, Album and Track reference each other by id only. Referential
// fields are pointers so a removed parent shows up as null, matching the
// wire format clients expect.
type Artist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Grammy bool   `json:"grammy"`
}

type Album struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	ArtistID *string `json:"artistId"`
}

type Track struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ArtistID *string `json:"artistId"`
	AlbumID  *string `json:"albumId"`
	Duration int     `json:"duration"`
}

// FavoriteKind selects one of the three favorites sets.
type FavoriteKind string

const (
	FavoriteArtists FavoriteKind = "artists"
	FavoriteAlbums  FavoriteKind = "albums"
	FavoriteTracks  FavoriteKind = "tracks"
)

// Favorites holds raw id membership; hydration happens in the service.
type Favorites struct {
	Artists []string
	Albums  []string
	Tracks  []string
}

// FavoritesResponse is the hydrated representation returned to clients.
type FavoritesResponse struct {
	Artists []*Artist `json:"artists"`
	Albums  []*Album  `json:"albums"`
	Tracks  []*Track  `json:"tracks"`
}

// Store is the catalog record store. Lookups return (nil, nil) on a miss.
// Deletes cascade: removing an artist nulls artistId on tracks and albums
// and drops the id from favorites; albums and tracks behave likewise.
type Store interface {
	Artists(ctx context.Context) ([]*Artist, error)
	ArtistByID(ctx context.Context, id string) (*Artist, error)
	InsertArtist(ctx context.Context, a *Artist) error
	UpdateArtist(ctx context.Context, a *Artist) error
	DeleteArtist(ctx context.Context, id string) (bool, error)

	Albums(ctx context.Context) ([]*Album, error)
	AlbumByID(ctx context.Context, id string) (*Album, error)
	InsertAlbum(ctx context.Context, a *Album) error
	UpdateAlbum(ctx context.Context, a *Album) error
	DeleteAlbum(ctx context.Context, id string) (bool, error)

	Tracks(ctx context.Context) ([]*Track, error)
	TrackByID(ctx context.Context, id string) (*Track, error)
	InsertTrack(ctx context.Context, t *Track) error
	UpdateTrack(ctx context.Context, t *Track) error
	DeleteTrack(ctx context.Context, id string) (bool, error)

	Favorites(ctx context.Context) (*Favorites, error)
	AddFavorite(ctx context.Context, kind FavoriteKind, id string) error
	RemoveFavorite(ctx context.Context, kind FavoriteKind, id string) (bool, error)
	HasFavorite(ctx context.Context, kind FavoriteKind, id string) (bool, error)
}
