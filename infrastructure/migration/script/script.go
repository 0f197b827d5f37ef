package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/pkg/log"
	"github.com/vfg2006/royalty-manager-api/pkg/utils"
)

type Distributor struct {
	Name       string
	Percentage decimal.Decimal
}

var defaultDistributors = []Distributor{
	{Name: "ONErpm", Percentage: decimal.NewFromInt(20)},
	{Name: "The Orchard", Percentage: decimal.NewFromInt(25)},
	{Name: "Believe", Percentage: decimal.NewFromInt(20)},
	{Name: "DistroKid", Percentage: decimal.Zero},
	{Name: "CD Baby", Percentage: decimal.NewFromInt(9)},
}

// As tabelas seguem a ordem das chaves estrangeiras
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          VARCHAR(120) NOT NULL,
		lastname      VARCHAR(120) NOT NULL DEFAULT '',
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL DEFAULT 3,
		avatar_url    TEXT,
		deleted       BOOLEAN NOT NULL DEFAULT FALSE,
		deleted_at    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id         VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		stage_name VARCHAR(255),
		email      VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS distributors (
		id         VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL UNIQUE,
		percentage NUMERIC NOT NULL CHECK (percentage >= 0 AND percentage <= 100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS catalogs (
		id             VARCHAR(32) PRIMARY KEY,
		title          VARCHAR(255) NOT NULL,
		artist_id      VARCHAR(32) NOT NULL REFERENCES artists (id),
		distributor_id VARCHAR(32) NOT NULL REFERENCES distributors (id),
		release_date   DATE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tracks (
		id               VARCHAR(32) PRIMARY KEY,
		catalog_id       VARCHAR(32) NOT NULL REFERENCES catalogs (id),
		artist_id        VARCHAR(32) NOT NULL REFERENCES artists (id),
		title            VARCHAR(255) NOT NULL,
		isrc             VARCHAR(12),
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id         VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		artist_id  VARCHAR(32) NOT NULL REFERENCES artists (id),
		budget     NUMERIC NOT NULL DEFAULT 0 CHECK (budget >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_projections (
		id                       VARCHAR(32) PRIMARY KEY,
		artist_id                VARCHAR(32) NOT NULL REFERENCES artists (id),
		catalog_id               VARCHAR(32) NOT NULL REFERENCES catalogs (id),
		number_of_tracks         INTEGER NOT NULL,
		period                   INTEGER NOT NULL,
		daily_plays_per_track    NUMERIC NOT NULL,
		average_value            NUMERIC NOT NULL,
		participation_percentage NUMERIC NOT NULL,
		artist_percentage        NUMERIC NOT NULL,
		company_percentage       NUMERIC NOT NULL,
		distributor_percentage   NUMERIC NOT NULL,
		daily_plays_per_catalog  NUMERIC NOT NULL,
		total_plays              NUMERIC NOT NULL,
		gross_revenue            NUMERIC NOT NULL,
		gross_profit             NUMERIC NOT NULL,
		pro_rata                 NUMERIC NOT NULL,
		profitability            NUMERIC NOT NULL,
		created_at               TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at               TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS concert_projections (
		id                   VARCHAR(32) PRIMARY KEY,
		artist_id            VARCHAR(32) NOT NULL REFERENCES artists (id),
		title                VARCHAR(255) NOT NULL,
		year                 INTEGER NOT NULL,
		shows_per_year       INTEGER NOT NULL,
		period               INTEGER NOT NULL,
		average_ticket_value NUMERIC NOT NULL,
		crew_percentage      NUMERIC NOT NULL,
		artist_percentage    NUMERIC NOT NULL,
		company_percentage   NUMERIC NOT NULL,
		status               VARCHAR(16) NOT NULL DEFAULT 'draft',
		total_shows          NUMERIC NOT NULL,
		gross_revenue        NUMERIC NOT NULL,
		crew_share           NUMERIC NOT NULL,
		artist_share         NUMERIC NOT NULL,
		company_share        NUMERIC NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS project_projections (
		id                              VARCHAR(32) PRIMARY KEY,
		project_id                      VARCHAR(32) NOT NULL REFERENCES projects (id),
		distributor_id                  VARCHAR(32) NOT NULL REFERENCES distributors (id),
		year                            INTEGER NOT NULL,
		number_of_tracks                INTEGER NOT NULL,
		period                          INTEGER NOT NULL,
		average_daily_plays_per_track   NUMERIC NOT NULL,
		average_value_per_m_plays       NUMERIC NOT NULL,
		participation_percentage        NUMERIC NOT NULL,
		artist_percentage               NUMERIC NOT NULL,
		company_percentage              NUMERIC NOT NULL,
		budget_percentage               NUMERIC,
		average_daily_plays_per_project NUMERIC NOT NULL,
		total_plays                     NUMERIC NOT NULL,
		gross_revenue                   NUMERIC NOT NULL,
		distributor_percentage          NUMERIC NOT NULL,
		distributor_profit              NUMERIC NOT NULL,
		pro_rata_usd                    NUMERIC NOT NULL,
		pro_rata_brl                    NUMERIC NOT NULL,
		net_revenue_12_months           NUMERIC NOT NULL,
		budget_allocation               NUMERIC NOT NULL,
		project_budget                  NUMERIC NOT NULL,
		digital_profitability           NUMERIC NOT NULL,
		created_at                      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at                      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payment_requests (
		id            VARCHAR(32) PRIMARY KEY,
		artist_id     VARCHAR(32) NOT NULL REFERENCES artists (id),
		amount        NUMERIC NOT NULL CHECK (amount > 0),
		description   TEXT NOT NULL DEFAULT '',
		status        VARCHAR(16) NOT NULL DEFAULT 'pending',
		justification TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_projections_artist ON catalog_projections (artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_concert_projections_artist ON concert_projections (artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_project_projections_project ON project_projections (project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_requests_artist ON payment_requests (artist_id)`,
}

func createSchema(tx *sql.Tx) error {
	logrus.Infof("Criando %d objetos do schema...", len(schema))

	for i, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			logrus.WithError(err).Errorf("ERRO ao executar statement [%d/%d]", i+1, len(schema))
			return err
		}
	}

	return nil
}

func insertDistributors(tx *sql.Tx, distributors []Distributor) error {
	logrus.Infof("Iniciando inserção de %d distribuidoras...", len(distributors))
	startTime := time.Now()

	successCount := 0
	for _, d := range distributors {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		query, args, err := squirrel.
			Insert("distributors").
			Columns("id", "name", "percentage").
			Values(id, d.Name, d.Percentage).
			Suffix("ON CONFLICT (name) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.Exec(query, args...)
		if err != nil {
			logrus.WithError(err).Errorf("ERRO ao inserir distribuidora %s", d.Name)
			return err
		}

		if rows, _ := result.RowsAffected(); rows > 0 {
			successCount++
		}
	}

	logrus.Infof("Inserção de distribuidoras concluída em %v. Inseridas: %d, já existentes: %d",
		time.Since(startTime), successCount, len(distributors)-successCount)

	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		return insertDistributors(tx, defaultDistributors)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, transação revertida")
	}

	logrus.Info("Migração concluída com sucesso")
}
