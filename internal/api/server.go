package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/internal/api/handler"
	"github.com/vfg2006/retail-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/scheduler"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/calendaring"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

var _ handler.SyncController = (*scheduler.HourlySyncService)(nil)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências das rotas
type Services struct {
	Reporter      reporting.Reporter
	Calendar      calendaring.Calendar
	Authenticator authenticating.Authenticator
	Sync          handler.SyncController
}

// NewHandler monta o roteador com a cadeia global de middlewares
func NewHandler(services Services) http.Handler {
	var rt *router.Router
	examples := func() []string { return rt.Examples() }

	rt = router.New(
		router.WithRoutes(handler.Healthcheck(time.Now, examples)...),
		router.WithRoutes(handler.Dashboard(services.Reporter)...),
		router.WithRoutes(handler.Google(services.Calendar)...),
		router.WithRoutes(handler.Admin(services.Authenticator, services.Reporter, services.Sync)...),
		router.WithNotFound(handler.NotFound()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
