package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia-server-go/internal/domain/catalog"
)

func strptr(s string) *string { return &s }

func TestMemoryLibraryArtistCascade(t *testing.T) {
	ctx := context.Background()
	lib := NewMemoryLibrary()

	require.NoError(t, lib.InsertArtist(ctx, &catalog.Artist{ID: "artist-1", Name: "Queen", Grammy: true}))
	require.NoError(t, lib.InsertAlbum(ctx, &catalog.Album{ID: "album-1", Name: "Innuendo", Year: 1991, ArtistID: strptr("artist-1")}))
	require.NoError(t, lib.InsertTrack(ctx, &catalog.Track{ID: "track-1", Name: "Innuendo", ArtistID: strptr("artist-1"), AlbumID: strptr("album-1"), Duration: 390}))
	require.NoError(t, lib.AddFavorite(ctx, catalog.FavoriteArtists, "artist-1"))

	deleted, err := lib.DeleteArtist(ctx, "artist-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	album, err := lib.AlbumByID(ctx, "album-1")
	require.NoError(t, err)
	assert.Nil(t, album.ArtistID)

	track, err := lib.TrackByID(ctx, "track-1")
	require.NoError(t, err)
	assert.Nil(t, track.ArtistID)

	favs, err := lib.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs.Artists)
}

func TestMemoryLibraryAlbumCascade(t *testing.T) {
	ctx := context.Background()
	lib := NewMemoryLibrary()

	require.NoError(t, lib.InsertAlbum(ctx, &catalog.Album{ID: "album-1", Name: "Innuendo", Year: 1991}))
	require.NoError(t, lib.InsertTrack(ctx, &catalog.Track{ID: "track-1", Name: "Innuendo", AlbumID: strptr("album-1"), Duration: 390}))
	require.NoError(t, lib.AddFavorite(ctx, catalog.FavoriteAlbums, "album-1"))

	deleted, err := lib.DeleteAlbum(ctx, "album-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	track, err := lib.TrackByID(ctx, "track-1")
	require.NoError(t, err)
	assert.Nil(t, track.AlbumID)

	favs, err := lib.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs.Albums)
}

func TestMemoryLibraryDeleteMissing(t *testing.T) {
	ctx := context.Background()
	lib := NewMemoryLibrary()

	deleted, err := lib.DeleteTrack(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryLibraryFavoriteAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	lib := NewMemoryLibrary()

	require.NoError(t, lib.InsertTrack(ctx, &catalog.Track{ID: "track-1", Name: "Innuendo", Duration: 390}))
	require.NoError(t, lib.AddFavorite(ctx, catalog.FavoriteTracks, "track-1"))
	require.NoError(t, lib.AddFavorite(ctx, catalog.FavoriteTracks, "track-1"))

	favs, err := lib.Favorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs.Tracks, 1)

	removed, err := lib.RemoveFavorite(ctx, catalog.FavoriteTracks, "track-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = lib.RemoveFavorite(ctx, catalog.FavoriteTracks, "track-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryLibraryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	lib := NewMemoryLibrary()

	require.NoError(t, lib.InsertArtist(ctx, &catalog.Artist{ID: "artist-1", Name: "Queen", Grammy: true}))

	got, err := lib.ArtistByID(ctx, "artist-1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := lib.ArtistByID(ctx, "artist-1")
	require.NoError(t, err)
	assert.Equal(t, "Queen", again.Name)
}
