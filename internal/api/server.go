package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"music-display-server/internal/api/middleware"
	"music-display-server/internal/config"
	"music-display-server/internal/nowplaying"
)

type Server struct {
	cfg     *config.Config
	service *nowplaying.Service
	router  *gin.Engine
}

func New(cfg *config.Config, service *nowplaying.Service) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		service: service,
		router:  gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// The widget is embedded on arbitrary sites, so CORS stays wide open.
	// gin-contrib/cors only answers requests that carry an Origin header;
	// the wire contract promises the allow-all header on plain polls too,
	// so it is set unconditionally first (the cors handler overwrites it
	// with the same value for browser requests).
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "music-display"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Presentation bundle
	s.router.StaticFile("/", filepath.Join(s.cfg.Server.StaticDir, "index.html"))
	s.router.StaticFile("/music-display.js", filepath.Join(s.cfg.Server.StaticDir, "music-display.js"))

	// Now-playing state. These paths are the wire contract with existing
	// publishers and widgets; do not rename.
	s.router.GET("/now-playing", s.GetNowPlaying)
	s.router.GET("/now-playing-ws", s.StreamNowPlaying)
	s.router.POST("/now-playing", middleware.RequireToken(s.cfg.Server.Token), s.UpdateNowPlaying)
}

// Router exposes the assembled handler so main can wrap it in an
// http.Server and tests can drive it through httptest.
func (s *Server) Router() http.Handler {
	return s.router
}
