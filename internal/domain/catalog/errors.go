package catalog

import "errors"

var (
	ErrArtistNotFound = errors.New("artist not found")
	ErrAlbumNotFound  = errors.New("album not found")
	ErrTrackNotFound  = errors.New("track not found")
	// ErrNotInFavorites is returned when removing a favorite that was
	// never added.
	ErrNotInFavorites = errors.New("not in favorites")
)
