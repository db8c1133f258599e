package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/catalog"
)

func (s *Service) handleArtistList(c *gin.Context) {
	artists, err := s.artists.FindAll(c.Request.Context())
	if err != nil {
		s.logger.ErrorTag("HTTP", "artist list failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (s *Service) handleArtistGet(c *gin.Context) {
	id, ok := pathID(c, "artist")
	if !ok {
		return
	}

	a, err := s.artists.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrArtistNotFound) {
			notFound(c, "artist not found")
			return
		}
		s.logger.ErrorTag("HTTP", "artist get failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Service) handleArtistCreate(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and grammy are required")
		return
	}

	a, err := s.artists.Create(c.Request.Context(), req.Name, *req.Grammy)
	if err != nil {
		s.logger.ErrorTag("HTTP", "artist create failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Service) handleArtistUpdate(c *gin.Context) {
	id, ok := pathID(c, "artist")
	if !ok {
		return
	}

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and grammy are required")
		return
	}

	a, err := s.artists.Update(c.Request.Context(), id, req.Name, *req.Grammy)
	if err != nil {
		if errors.Is(err, catalog.ErrArtistNotFound) {
			notFound(c, "artist not found")
			return
		}
		s.logger.ErrorTag("HTTP", "artist update failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Service) handleArtistDelete(c *gin.Context) {
	id, ok := pathID(c, "artist")
	if !ok {
		return
	}

	if err := s.artists.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrArtistNotFound) {
			notFound(c, "artist not found")
			return
		}
		s.logger.ErrorTag("HTTP", "artist delete failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
