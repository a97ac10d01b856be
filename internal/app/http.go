package app

import (
	"context"
	"time"

	"github.com/mikebutak/Locastore/internal/account"
	"github.com/mikebutak/Locastore/internal/config"
	"github.com/mikebutak/Locastore/internal/favorites"
	"github.com/mikebutak/Locastore/internal/handler"
	"github.com/mikebutak/Locastore/internal/logger"
	"github.com/mikebutak/Locastore/internal/middleware"
	"github.com/mikebutak/Locastore/internal/search"
	"github.com/mikebutak/Locastore/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var sessionStore session.Store
	var memStore *session.MemoryStore

	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	} else {
		logger.Warn("no redis configured, using in-memory sessions", nil)
		memStore = session.NewMemoryStore(time.Hour)
		sessionStore = memStore
	}

	accountService := account.NewService(infra.DB)
	favoriteService := favorites.NewService(infra.DB)

	gateway := search.NewClient(cfg.SearchBaseURL, cfg.SearchAPIKey)
	blacklist := search.NewBlacklist(cfg.BlacklistNames...)

	h := handler.New(
		gateway,
		sessionStore,
		accountService,
		favoriteService,
		blacklist,
	)

	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinSession(sessionMiddleware))

	h.RegisterRoutes(router, middleware.GinRequireUser())

	// ----------------------------
	// Client assets
	// ----------------------------

	router.Static("/assets", "./client/dist/assets")

	router.GET("/", func(c *gin.Context) {
		c.File("./client/dist/index.html")
	})

	// Client-side route; the SPA renders the login view.
	router.GET("/login", func(c *gin.Context) {
		c.File("./client/dist/index.html")
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if memStore != nil {
			_ = memStore.Close()
		}
		return infra.DB.Close()
	}, nil
}
