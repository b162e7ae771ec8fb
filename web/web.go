package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/gin-gonic/gin"
)

// Source is what the dashboard reads from. arb.Board satisfies it.
type Source interface {
	Snapshot() model.Snapshot
	Opportunities() []model.Opportunity
}

type Server struct {
	src     Source
	refresh time.Duration
	bins    int
	logger  *slog.Logger
	engine  *gin.Engine
}

func New(src Source, refresh time.Duration, bins int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		src:     src,
		refresh: refresh,
		bins:    bins,
		logger:  logger,
		engine:  gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.logRequests)

	s.engine.GET("/", s.dashboard)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	api := s.engine.Group("/api")
	{
		api.GET("/snapshot", s.snapshot)
		api.GET("/opportunities", s.opportunities)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) dashboard(c *gin.Context) {
	// the browser re-requests the page on the same cadence as the collector
	c.Header("Refresh", strconv.Itoa(refreshSeconds(s.refresh)))
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	if err := page(s.src.Snapshot(), s.bins).Render(c.Writer); err != nil {
		s.logger.Error("render dashboard", "err", err)
	}
}

// refreshSeconds never goes below 1: "Refresh: 0" reloads in a tight loop.
func refreshSeconds(d time.Duration) int {
	if n := int(d / time.Second); n > 1 {
		return n
	}
	return 1
}

func (s *Server) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.src.Snapshot())
}

func (s *Server) opportunities(c *gin.Context) {
	opps := s.src.Opportunities()
	if opps == nil {
		opps = []model.Opportunity{}
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": opps})
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("http request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"took", time.Since(start),
	)
}
