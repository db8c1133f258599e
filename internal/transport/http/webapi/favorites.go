package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/catalog"
)

func (s *Service) handleFavsList(c *gin.Context) {
	favs, err := s.favs.FindAll(c.Request.Context())
	if err != nil {
		s.logger.ErrorTag("HTTP", "favorites list failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, favs)
}

// addFavorite maps a missing target entity to 422: the id is well formed
// but points at nothing addable.
func (s *Service) addFavorite(c *gin.Context, label string, add func(ctx *gin.Context, id string) error) {
	id, ok := pathID(c, label)
	if !ok {
		return
	}

	if err := add(c, id); err != nil {
		if errors.Is(err, catalog.ErrArtistNotFound) ||
			errors.Is(err, catalog.ErrAlbumNotFound) ||
			errors.Is(err, catalog.ErrTrackNotFound) {
			unprocessable(c, label+" does not exist")
			return
		}
		s.logger.ErrorTag("HTTP", "favorites add failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Service) removeFavorite(c *gin.Context, label string, remove func(ctx *gin.Context, id string) error) {
	id, ok := pathID(c, label)
	if !ok {
		return
	}

	if err := remove(c, id); err != nil {
		if errors.Is(err, catalog.ErrNotInFavorites) {
			notFound(c, label+" is not in favorites")
			return
		}
		s.logger.ErrorTag("HTTP", "favorites remove failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleFavsAddArtist(c *gin.Context) {
	s.addFavorite(c, "artist", func(ctx *gin.Context, id string) error {
		return s.favs.AddArtist(ctx.Request.Context(), id)
	})
}

func (s *Service) handleFavsRemoveArtist(c *gin.Context) {
	s.removeFavorite(c, "artist", func(ctx *gin.Context, id string) error {
		return s.favs.RemoveArtist(ctx.Request.Context(), id)
	})
}

func (s *Service) handleFavsAddAlbum(c *gin.Context) {
	s.addFavorite(c, "album", func(ctx *gin.Context, id string) error {
		return s.favs.AddAlbum(ctx.Request.Context(), id)
	})
}

func (s *Service) handleFavsRemoveAlbum(c *gin.Context) {
	s.removeFavorite(c, "album", func(ctx *gin.Context, id string) error {
		return s.favs.RemoveAlbum(ctx.Request.Context(), id)
	})
}

func (s *Service) handleFavsAddTrack(c *gin.Context) {
	s.addFavorite(c, "track", func(ctx *gin.Context, id string) error {
		return s.favs.AddTrack(ctx.Request.Context(), id)
	})
}

func (s *Service) handleFavsRemoveTrack(c *gin.Context) {
	s.removeFavorite(c, "track", func(ctx *gin.Context, id string) error {
		return s.favs.RemoveTrack(ctx.Request.Context(), id)
	})
}
