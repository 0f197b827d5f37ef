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
	"github.com/vfg2006/royalty-manager-api/internal/api/handler"
	"github.com/vfg2006/royalty-manager-api/internal/api/handler/router"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/paying"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/projecting"
	"github.com/vfg2006/royalty-manager-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB            handler.Pinger
	Authenticator authenticating.Authenticator
	Registry      cataloging.Registry
	Projector     projecting.Projector
	Payments      paying.PaymentRequester
	CronJobs      handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("authenticator é obrigatório")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Artists(services.Registry)...),
		router.WithRoutes(handler.Tracks(services.Registry)...),
		router.WithRoutes(handler.Catalogs(services.Registry)...),
		router.WithRoutes(handler.Distributors(services.Registry)...),
		router.WithRoutes(handler.Projects(services.Registry)...),
		router.WithRoutes(handler.CatalogProjections(services.Projector)...),
		router.WithRoutes(handler.ConcertProjections(services.Projector)...),
		router.WithRoutes(handler.ProjectProjections(services.Projector)...),
		router.WithRoutes(handler.Splits()...),
		router.WithRoutes(handler.PaymentRequests(services.Payments)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	logrus.WithField("routes", rt.Routes()).Debug("Rotas da API")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
