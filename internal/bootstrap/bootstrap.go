// Package bootstrap wires configuration, logging, storage, the session
// manager and the HTTP transport into a running service.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	"golang.org/x/sync/errgroup"

	domainauth "melodia-server-go/internal/domain/auth"
	domaincatalog "melodia-server-go/internal/domain/catalog"
	domainuser "melodia-server-go/internal/domain/user"
	platformconfig "melodia-server-go/internal/platform/config"
	platformerrors "melodia-server-go/internal/platform/errors"
	platformlogging "melodia-server-go/internal/platform/logging"
	platformstorage "melodia-server-go/internal/platform/storage"
	httptransport "melodia-server-go/internal/transport/http"
	_ "melodia-server-go/internal/transport/http/docs"
	httpwebapi "melodia-server-go/internal/transport/http/webapi"
)

const scalarHTML = `<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8" />
		<title>Melodia API Reference</title>
		<meta name="viewport" content="width=device-width, initial-scale=1" />
	</head>
	<body>
		<script
			id="api-reference"
			data-url="/openapi.json"
			data-layout="modern"
			src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"
		></script>
	</body>
</html>`

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config     *platformconfig.Config
	configPath string
	logger     *platformlogging.Logger

	userStore domainuser.Store
	library   *platformstorage.MemoryLibrary

	users    *domainuser.Service
	sessions *domainauth.Manager
	artists  *domaincatalog.ArtistService
	albums   *domaincatalog.AlbumService
	tracks   *domaincatalog.TrackService
	favs     *domaincatalog.FavoritesService

	redisClient *redis.Client
}

// Run starts the whole service lifecycle: configuration, dependencies and
// graceful shutdown.
func Run(ctx context.Context) error {
	state := &appState{}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
		)
	}

	if state.sessions == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"session manager not initialised",
		)
	}

	defer func() {
		if state.redisClient != nil {
			if err := state.redisClient.Close(); err != nil {
				logger.WarnTag("BOOT", "redis client did not close cleanly: %v", err)
			}
		}
	}()

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if _, err := startHTTPServer(state, group, groupCtx); err != nil {
		cancel()
		return err
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.InfoTag("BOOT", "service stopped")
	logger.Close()
	return nil
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "storage:init",
			Title:     "Initialise storage",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindStorage,
			Execute:   initStorageStep,
		},
		{
			ID:        "auth:init",
			Title:     "Initialise session manager",
			DependsOn: []string{"storage:init"},
			Kind:      platformerrors.KindAuth,
			Execute:   initAuthStep,
		},
		{
			ID:        "catalog:init",
			Title:     "Initialise catalog services",
			DependsOn: []string{"storage:init"},
			Kind:      platformerrors.KindDomain,
			Execute:   initCatalogStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader().Load()
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "config:load", "failed to load configuration", err)
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state.config == nil {
		return platformerrors.New(platformerrors.KindBootstrap, "logging:init", "config not loaded")
	}

	logger, err := platformlogging.New(platformlogging.Config{
		Level:      state.config.Log.Level,
		Dir:        state.config.Log.Dir,
		Filename:   state.config.Log.File,
		ErrorFile:  state.config.Log.ErrorFile,
		MaxSizeKB:  state.config.Log.MaxSizeKB,
		MaxBackups: state.config.Log.MaxBackups,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging:init", "failed to initialise logging", err)
	}

	state.logger = logger
	logger.InfoTag("BOOT", "logging ready [%s] %s", state.config.Log.Level, state.configPath)
	return nil
}

func initStorageStep(_ context.Context, state *appState) error {
	cfg := state.config.Storage.Users

	switch cfg.Type {
	case platformconfig.UserStoreSQLite:
		db, err := platformstorage.OpenUserDB(cfg.DSN)
		if err != nil {
			return err
		}
		state.userStore = platformstorage.NewUserRepository(db)
		state.logger.InfoTag("BOOT", "user store: sqlite (%s)", cfg.DSN)
	default:
		state.userStore = platformstorage.NewMemoryUserStore()
		state.logger.InfoTag("BOOT", "user store: memory")
	}

	state.library = platformstorage.NewMemoryLibrary()
	return nil
}

func initAuthStep(ctx context.Context, state *appState) error {
	cfg := state.config.Auth

	state.users = domainuser.NewService(state.userStore, domainuser.NewHasher())

	issuer := domainauth.NewIssuer(domainauth.IssuerConfig{
		AccessSecret:    cfg.AccessSecret,
		RefreshSecret:   cfg.RefreshSecret,
		AccessLifetime:  cfg.AccessLifetime.Duration(),
		RefreshLifetime: cfg.RefreshLifetime.Duration(),
	})

	var ledger domainauth.Ledger
	switch cfg.Ledger.Type {
	case platformconfig.LedgerTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Ledger.Redis.Addr,
			Username: cfg.Ledger.Redis.Username,
			Password: cfg.Ledger.Redis.Password,
			DB:       cfg.Ledger.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return platformerrors.Wrap(platformerrors.KindAuth, "auth:init", "failed to reach redis ledger", err)
		}
		state.redisClient = client
		ledger = domainauth.NewRedisLedger(client, cfg.Ledger.Redis.Prefix)
		state.logger.InfoTag("BOOT", "refresh ledger: redis (%s)", cfg.Ledger.Redis.Addr)
	default:
		ledger = domainauth.NewMemoryLedger()
		state.logger.InfoTag("BOOT", "refresh ledger: memory")
	}

	state.sessions = domainauth.NewManager(state.users, issuer, ledger, state.logger)
	return nil
}

func initCatalogStep(_ context.Context, state *appState) error {
	state.artists = domaincatalog.NewArtistService(state.library)
	state.albums = domaincatalog.NewAlbumService(state.library)
	state.tracks = domaincatalog.NewTrackService(state.library)
	state.favs = domaincatalog.NewFavoritesService(state.library)
	return nil
}

func startHTTPServer(
	state *appState,
	g *errgroup.Group,
	groupCtx context.Context,
) (*http.Server, error) {
	config := state.config
	logger := state.logger

	router, err := httptransport.Build(httptransport.Options{
		Config: config,
		Logger: logger,
		Guard:  httptransport.Guard(state.sessions),
	})
	if err != nil {
		return nil, err
	}

	webapiService, err := httpwebapi.NewService(httpwebapi.Options{
		Config:   config,
		Logger:   logger,
		Sessions: state.sessions,
		Users:    state.users,
		Artists:  state.artists,
		Albums:   state.albums,
		Tracks:   state.tracks,
		Favs:     state.favs,
	})
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindTransport, "webapi:new-service", "failed to create webapi service", err)
	}

	if err := webapiService.Register(groupCtx, router.Root); err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindTransport, "webapi:register", "failed to register webapi routes", err)
	}

	router.Engine.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.ErrorTag("HTTP", "failed to read openapi document: %v", err)
			httptransport.RespondError(c, http.StatusInternalServerError, "failed to generate openapi spec", "Internal Server Error")
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})

	router.Engine.GET("/doc", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(scalarHTML))
	})

	httpServer := &http.Server{
		Addr:    config.Server.IP + ":" + strconv.Itoa(config.Server.Port),
		Handler: router.Engine,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "server listening on http://%s", httpServer.Addr)
		logger.InfoTag("HTTP", "api reference at http://localhost:%d/doc", config.Server.Port)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "server shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return httpServer, nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("BOOT", "received shutdown signal, cleaning up")

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("BOOT", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("BOOT", "all services stopped")
	case <-time.After(15 * time.Second):
		logger.ErrorTag("BOOT", "shutdown timed out, exiting")
		return errors.New("shutdown timed out")
	}
	return nil
}
