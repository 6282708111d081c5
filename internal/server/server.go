package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finstagram/backend/config"
	"github.com/finstagram/backend/internal/api"
	"github.com/finstagram/backend/internal/middleware"
	"github.com/finstagram/backend/internal/service"
	"github.com/finstagram/backend/internal/storage"
)

// Server wires the HTTP layer to the services and owns the listener
// lifecycle.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router, registering every handler under /api. The Redis
// client may be nil, in which case upload rate limiting is disabled.
func New(cfg *config.Config, db *gorm.DB, media storage.MediaStore, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	profiles := service.NewProfileService(db, media)
	auth := service.NewAuthService(db)
	posts := service.NewPostService(db, media, profiles)
	messages := service.NewMessageService(db, profiles)
	notifications := service.NewNotificationService(db)

	var limited gin.HandlerFunc
	if redisClient != nil {
		limited = middleware.NewUploadRateLimiter(redisClient, cfg.UploadRateLimit).Middleware()
	}

	health := api.NewHealthHandler(db)
	router.GET("/", health.Root)

	group := router.Group("/api")
	group.GET("/health", health.Health)
	api.NewAuthHandler(auth).RegisterRoutes(group)
	api.NewProfileHandler(profiles, media).RegisterRoutes(group, limited)
	api.NewPostHandler(posts, media).RegisterRoutes(group, limited)
	api.NewMediaHandler(media).RegisterRoutes(group)
	api.NewMessageHandler(messages, media).RegisterRoutes(group)
	api.NewNotificationHandler(notifications).RegisterRoutes(group)

	return &Server{router: router}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving on the given address and blocks until the listener
// fails or is shut down.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully drains in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
