package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ninjaCoderr/social-app-backend/config"
	"github.com/ninjaCoderr/social-app-backend/internal/handler"
	"github.com/ninjaCoderr/social-app-backend/internal/middleware"
	"github.com/ninjaCoderr/social-app-backend/internal/redis"
	"github.com/ninjaCoderr/social-app-backend/internal/repository"
	"github.com/ninjaCoderr/social-app-backend/internal/services"
	"github.com/ninjaCoderr/social-app-backend/pkg/database"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth *handler.AuthHandler
	User *handler.UserHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// SetupRoutes wires the middleware chain and the five API endpoints. The
// rate limiter may be nil when redis is not configured.
func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, userRepo repository.UserRepository, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	if limiter != nil {
		s.engine.Use(middleware.RateLimitMiddleware(limiter))
	}

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	s.engine.POST("/signup", handlers.Auth.Signup)
	s.engine.POST("/login", handlers.Auth.Login)

	authed := s.engine.Group("/", middleware.AuthMiddleware(authService, userRepo))
	{
		authed.POST("/user", handlers.User.UpdateDetails)
		authed.GET("/user", handlers.User.GetProfile)
		authed.POST("/user/image", handlers.User.UploadImage)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
