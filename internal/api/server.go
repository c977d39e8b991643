package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opensea-sales-report/internal/api/handler"
	"github.com/vfg2006/opensea-sales-report/internal/api/handler/router"
	"github.com/vfg2006/opensea-sales-report/internal/config"
	"github.com/vfg2006/opensea-sales-report/pkg/apiErrors"
	"github.com/vfg2006/opensea-sales-report/pkg/middleware"
)

// Server expõe o progresso da coleta enquanto ela roda
type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, progress handler.ProgressProvider) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Progress(progress)...),
		router.WithFallbacks(apiErrors.NotFoundHandler(), apiErrors.MethodNotAllowedHandler()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Handler permite testar as rotas sem abrir uma porta
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start abre a porta e atende em background. Erros de bind são retornados.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("erro ao abrir %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		logrus.WithField("address", listener.Addr().String()).Info("Servidor de status iniciado")

		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor de status")
		}
	}()

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Debug("Servidor de status desligado")
	return nil
}
