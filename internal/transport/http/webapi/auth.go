package webapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/auth"
)

func (s *Service) handleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "login and password are required")
		return
	}

	created, err := s.sessions.Signup(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateAccount) {
			badRequest(c, "login already exists")
			return
		}
		s.logger.ErrorTag("HTTP", "signup failed: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Service) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "login and password are required")
		return
	}

	pair, err := s.sessions.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			forbidden(c, "incorrect login or password")
			return
		}
		s.logger.ErrorTag("HTTP", "login failed: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (s *Service) handleRefresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// fall through with an empty token: the session manager answers 401
		req.RefreshToken = ""
	}

	pair, err := s.sessions.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingToken):
			unauthorized(c, "refresh token is missing")
		case errors.Is(err, auth.ErrInvalidRefreshToken):
			forbidden(c, "refresh token is invalid")
		case errors.Is(err, auth.ErrInvalidOrExpiredRefreshToken):
			forbidden(c, "refresh token is invalid or expired")
		case errors.Is(err, auth.ErrUserNotFound):
			forbidden(c, "user no longer exists")
		default:
			s.logger.ErrorTag("HTTP", "refresh failed: %v", err)
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, pair)
}
