package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/api"
	"github.com/vfg2006/royalty-manager-api/internal/api/handler"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/internal/scheduler"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/paying"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/projecting"
	"github.com/vfg2006/royalty-manager-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	settings, err := calculator.ParseSettings(cfg.Projection.ExchangeRate, cfg.Projection.ProfitabilityMultiplier)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de projeção inválida")
	}

	calc, err := calculator.New(settings)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a calculadora de projeções")
	}

	logrus.WithFields(logrus.Fields{
		"exchange_rate":            settings.ExchangeRate.String(),
		"profitability_multiplier": settings.ProfitabilityMultiplier.String(),
	}).Info("Calculadora de projeções configurada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	artistRepo := repository.NewArtistRepository(pgConn)
	trackRepo := repository.NewTrackRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	distributorRepo := repository.NewDistributorRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	catalogProjectionRepo := repository.NewCatalogProjectionRepository(pgConn)
	concertProjectionRepo := repository.NewConcertProjectionRepository(pgConn)
	projectProjectionRepo := repository.NewProjectProjectionRepository(pgConn)
	paymentRequestRepo := repository.NewPaymentRequestRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	registry := cataloging.NewService(artistRepo, trackRepo, catalogRepo, distributorRepo, projectRepo)
	payments := paying.NewService(paymentRequestRepo, artistRepo)

	projector := projecting.NewService(projecting.Repositories{
		Artists:            artistRepo,
		Catalogs:           catalogRepo,
		Distributors:       distributorRepo,
		Projects:           projectRepo,
		CatalogProjections: catalogProjectionRepo,
		ConcertProjections: concertProjectionRepo,
		ProjectProjections: projectProjectionRepo,
	}, calc)

	recalculationService := scheduler.NewProjectionRecalculationService(projector, cfg)

	if err := recalculationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de projeções")
	} else {
		logrus.Info("Agendador de recálculo de projeções iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Registry:      registry,
		Projector:     projector,
		Payments:      payments,
		CronJobs: handler.CronJobServices{
			ProjectionRecalculationService: recalculationService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
