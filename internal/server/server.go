package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"taskhub-api/internal/api/middleware"
	"taskhub-api/internal/api/routes"
	"taskhub-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	app    *app.Application
	http   *http.Server
}

func NewServer(app *app.Application) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(app.Logger))

	app.Logger.Info("configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	_ = router.SetTrustedProxies(nil)

	routes.RegisterRoutes(router, app)

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.app.Logger.Info("server starting", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
