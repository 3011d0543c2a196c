package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves /healthz and /metrics for the process
type Server struct {
	echo *echo.Echo
	addr string
}

// NewServer builds the ops HTTP server. store may be nil, in which case
// /healthz only reports that the process is up.
func NewServer(addr string, m *Metrics, store Pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/healthz", healthHandler(store))
	if registry := m.Registry(); registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	}

	return &Server{echo: e, addr: addr}
}

func healthHandler(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				log.WithError(err).Warn("Health check failed: database unreachable")
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable", "database": "down"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.WithField("addr", s.addr).Info("Starting metrics server")
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
