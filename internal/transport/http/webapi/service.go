// Package webapi exposes the catalog and session endpoints over gin.
package webapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/auth"
	"melodia-server-go/internal/domain/catalog"
	"melodia-server-go/internal/domain/user"
	"melodia-server-go/internal/platform/config"
	"melodia-server-go/internal/platform/logging"
)

// Service holds the domain services the HTTP handlers delegate to.
type Service struct {
	logger   *logging.Logger
	config   *config.Config
	sessions *auth.Manager
	users    *user.Service
	artists  *catalog.ArtistService
	albums   *catalog.AlbumService
	tracks   *catalog.TrackService
	favs     *catalog.FavoritesService
}

type Options struct {
	Config   *config.Config
	Logger   *logging.Logger
	Sessions *auth.Manager
	Users    *user.Service
	Artists  *catalog.ArtistService
	Albums   *catalog.AlbumService
	Tracks   *catalog.TrackService
	Favs     *catalog.FavoritesService
}

func NewService(opts Options) (*Service, error) {
	return &Service{
		logger:   opts.Logger,
		config:   opts.Config,
		sessions: opts.Sessions,
		users:    opts.Users,
		artists:  opts.Artists,
		albums:   opts.Albums,
		tracks:   opts.Tracks,
		favs:     opts.Favs,
	}, nil
}

// Register mounts all routes on the given group. The group is expected to
// already carry the request guard.
func (s *Service) Register(_ context.Context, group *gin.RouterGroup) error {
	group.POST("/auth/signup", s.handleSignup)
	group.POST("/auth/login", s.handleLogin)
	group.POST("/auth/refresh", s.handleRefresh)

	group.GET("/user", s.handleUserList)
	group.GET("/user/:id", s.handleUserGet)
	group.POST("/user", s.handleUserCreate)
	group.PUT("/user/:id", s.handleUserUpdatePassword)
	group.DELETE("/user/:id", s.handleUserDelete)

	group.GET("/artist", s.handleArtistList)
	group.GET("/artist/:id", s.handleArtistGet)
	group.POST("/artist", s.handleArtistCreate)
	group.PUT("/artist/:id", s.handleArtistUpdate)
	group.DELETE("/artist/:id", s.handleArtistDelete)

	group.GET("/album", s.handleAlbumList)
	group.GET("/album/:id", s.handleAlbumGet)
	group.POST("/album", s.handleAlbumCreate)
	group.PUT("/album/:id", s.handleAlbumUpdate)
	group.DELETE("/album/:id", s.handleAlbumDelete)

	group.GET("/track", s.handleTrackList)
	group.GET("/track/:id", s.handleTrackGet)
	group.POST("/track", s.handleTrackCreate)
	group.PUT("/track/:id", s.handleTrackUpdate)
	group.DELETE("/track/:id", s.handleTrackDelete)

	group.GET("/favs", s.handleFavsList)
	group.POST("/favs/artist/:id", s.handleFavsAddArtist)
	group.DELETE("/favs/artist/:id", s.handleFavsRemoveArtist)
	group.POST("/favs/album/:id", s.handleFavsAddAlbum)
	group.DELETE("/favs/album/:id", s.handleFavsRemoveAlbum)
	group.POST("/favs/track/:id", s.handleFavsAddTrack)
	group.DELETE("/favs/track/:id", s.handleFavsRemoveTrack)

	s.logger.InfoTag("HTTP", "webapi routes registered")
	return nil
}
