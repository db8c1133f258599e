package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/user"
)

func (s *Service) handleUserList(c *gin.Context) {
	users, err := s.users.FindAll(c.Request.Context())
	if err != nil {
		s.logger.ErrorTag("HTTP", "user list failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Service) handleUserGet(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	u, err := s.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c, "user not found")
			return
		}
		s.logger.ErrorTag("HTTP", "user get failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Service) handleUserCreate(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "login and password are required")
		return
	}

	created, err := s.users.Create(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.logger.ErrorTag("HTTP", "user create failed: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Service) handleUserUpdatePassword(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "oldPassword and newPassword are required")
		return
	}

	updated, err := s.users.UpdatePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			notFound(c, "user not found")
		case errors.Is(err, user.ErrWrongOldPassword):
			forbidden(c, "old password is wrong")
		default:
			s.logger.ErrorTag("HTTP", "password update failed: %v", err)
			internalError(c)
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Service) handleUserDelete(c *gin.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c, "user not found")
			return
		}
		s.logger.ErrorTag("HTTP", "user delete failed: %v", err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
