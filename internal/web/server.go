package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ashishmaurya/portfolio/internal/config"
	"github.com/ashishmaurya/portfolio/internal/contact"
	"github.com/ashishmaurya/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// ContactSender delivers a validated contact submission.
type ContactSender interface {
	Submit(ctx context.Context, s contact.Submission) (contact.Receipt, error)
}

type Server struct {
	cfg      *config.Config
	catalog  *portfolio.Catalog
	contact  ContactSender
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	salt     string
	engine   *gin.Engine
}

func NewServer(cfg *config.Config, catalog *portfolio.Catalog, sender ContactSender, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	registry := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		contact:  sender,
		log:      log,
		registry: registry,
		metrics:  newMetrics(registry),
		salt:     generateSalt(),
	}
	engine, err := s.setupRoutes()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

// Handler returns the configured gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRoutes() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("static filesystem: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	if s.cfg.TrackVisitors {
		r.Use(s.visitorTracking())
	}

	r.StaticFS("/static", http.FS(staticFS))
	r.Static("/images", "./images")

	// Pages
	r.GET("/", s.handleHome)
	r.GET("/about", s.handleAbout)
	r.GET("/portfolio", s.handlePortfolio)
	r.GET("/portfolio/results", s.handleResults)
	r.GET("/portfolio/projects/:id", s.handleProjectDetail)
	r.GET("/contact", s.handleContactPage)
	r.POST("/contact", s.handleContactSubmit)

	api := r.Group("/api")
	{
		api.GET("/projects", s.handleAPIProjects)
		api.GET("/projects/:id", s.handleAPIProject)
		api.GET("/technologies", s.handleAPITechnologies)
		api.GET("/categories", s.handleAPICategories)
		api.POST("/contact", s.handleAPIContact)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found"})
	})

	return r, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown", slog.Any("err", err))
		}
	}()

	s.log.Info("portfolio server listening", slog.String("addr", server.Addr))
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
