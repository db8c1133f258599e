package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/catalog"
)

func (s *Service) handleTrackList(c *gin.Context) {
	tracks, err := s.tracks.FindAll(c.Request.Context())
	if err != nil {
		s.logger.ErrorTag("HTTP", "track list failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, tracks)
}

func (s *Service) handleTrackGet(c *gin.Context) {
	id, ok := pathID(c, "track")
	if !ok {
		return
	}

	t, err := s.tracks.FindOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrTrackNotFound) {
			notFound(c, "track not found")
			return
		}
		s.logger.ErrorTag("HTTP", "track get failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Service) handleTrackCreate(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and duration are required")
		return
	}

	t, err := s.tracks.Create(c.Request.Context(), req.Name, req.ArtistID, req.AlbumID, *req.Duration)
	if err != nil {
		s.logger.ErrorTag("HTTP", "track create failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Service) handleTrackUpdate(c *gin.Context) {
	id, ok := pathID(c, "track")
	if !ok {
		return
	}

	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and duration are required")
		return
	}

	t, err := s.tracks.Update(c.Request.Context(), id, req.Name, req.ArtistID, req.AlbumID, *req.Duration)
	if err != nil {
		if errors.Is(err, catalog.ErrTrackNotFound) {
			notFound(c, "track not found")
			return
		}
		s.logger.ErrorTag("HTTP", "track update failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Service) handleTrackDelete(c *gin.Context) {
	id, ok := pathID(c, "track")
	if !ok {
		return
	}

	if err := s.tracks.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrTrackNotFound) {
			notFound(c, "track not found")
			return
		}
		s.logger.ErrorTag("HTTP", "track delete failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
