package httptransport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/platform/config"
	"melodia-server-go/internal/platform/logging"
)

// Options configures the HTTP router builder.
type Options struct {
	Config *config.Config
	Logger *logging.Logger
	Guard  gin.HandlerFunc
}

// Router bundles the gin engine with the group handlers register on.
type Router struct {
	Engine *gin.Engine
	Root   *gin.RouterGroup
}

// Build constructs a gin engine pre-configured with recovery, logging,
// CORS and the request guard. Routes are mounted at the root so the
// guard's allow list sees the same paths clients send.
func Build(opts Options) (*Router, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("http router requires config")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("http router requires logger")
	}

	if opts.Config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(loggingMiddleware(opts.Logger))

	engine.SetTrustedProxies([]string{"0.0.0.0"})

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if opts.Config.Web.Enabled {
		engine.Use(static.Serve("/", static.LocalFile(opts.Config.Web.StaticDir, true)))
	}

	if opts.Guard != nil {
		engine.Use(opts.Guard)
	}

	engine.NoRoute(func(c *gin.Context) {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path), "Not Found")
	})

	return &Router{
		Engine: engine,
		Root:   &engine.RouterGroup,
	}, nil
}

func loggingMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		logger.Info(
			"[HTTP] %s %s -> %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			duration,
		)
	}
}
