package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/catalog"
)

func (s *Service) handleAlbumList(c *gin.Context) {
	albums, err := s.albums.FindAll(c.Request.Context())
	if err != nil {
		s.logger.ErrorTag("HTTP", "album list failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (s *Service) handleAlbumGet(c *gin.Context) {
	id, ok := pathID(c, "album")
	if !ok {
		return
	}

	a, err := s.albums.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrAlbumNotFound) {
			notFound(c, "album not found")
			return
		}
		s.logger.ErrorTag("HTTP", "album get failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Service) handleAlbumCreate(c *gin.Context) {
	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and year are required")
		return
	}

	a, err := s.albums.Create(c.Request.Context(), req.Name, *req.Year, req.ArtistID)
	if err != nil {
		s.logger.ErrorTag("HTTP", "album create failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Service) handleAlbumUpdate(c *gin.Context) {
	id, ok := pathID(c, "album")
	if !ok {
		return
	}

	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and year are required")
		return
	}

	a, err := s.albums.Update(c.Request.Context(), id, req.Name, *req.Year, req.ArtistID)
	if err != nil {
		if errors.Is(err, catalog.ErrAlbumNotFound) {
			notFound(c, "album not found")
			return
		}
		s.logger.ErrorTag("HTTP", "album update failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Service) handleAlbumDelete(c *gin.Context) {
	id, ok := pathID(c, "album")
	if !ok {
		return
	}

	if err := s.albums.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrAlbumNotFound) {
			notFound(c, "album not found")
			return
		}
		s.logger.ErrorTag("HTTP", "album delete failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
