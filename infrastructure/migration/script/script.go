package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var statements = []struct {
	name string
	sql  string
}{
	{
		name: "users",
		sql: `CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          VARCHAR(120) NOT NULL,
	lastname      VARCHAR(120) NOT NULL DEFAULT '',
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	role_id       SMALLINT NOT NULL DEFAULT 3 CHECK (role_id BETWEEN 1 AND 3),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "pipelines",
		sql: `CREATE TABLE IF NOT EXISTS pipelines (
	id               VARCHAR(32) PRIMARY KEY,
	title            VARCHAR(255) NOT NULL,
	client_name      VARCHAR(255) NOT NULL DEFAULT '',
	owner_id         INTEGER REFERENCES users(id) ON DELETE SET NULL,
	status           VARCHAR(8) NOT NULL,
	progress_percent INTEGER NOT NULL DEFAULT 0,
	imp              BIGINT,
	ecpm             NUMERIC(18,6),
	max_gross        NUMERIC(14,2),
	revenue_share    NUMERIC(18,6),
	day_gross        NUMERIC(14,2),
	day_net_rev      NUMERIC(14,2),
	starting_date    DATE,
	end_date         DATE,
	fiscal_year      INTEGER NOT NULL,
	fiscal_quarter   SMALLINT NOT NULL CHECK (fiscal_quarter BETWEEN 1 AND 4),
	q_gross          NUMERIC(14,2) NOT NULL DEFAULT 0,
	q_net_rev        NUMERIC(14,2) NOT NULL DEFAULT 0,
	next_action      TEXT,
	next_action_date DATE,
	action_memo      TEXT,
	memo             TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "pipelines_quarter_idx",
		sql:  `CREATE INDEX IF NOT EXISTS pipelines_quarter_idx ON pipelines (fiscal_year, fiscal_quarter)`,
	},
	{
		name: "pipeline_monthly_forecast",
		sql: `CREATE TABLE IF NOT EXISTS pipeline_monthly_forecast (
	pipeline_id   VARCHAR(32) NOT NULL REFERENCES pipelines(id) ON DELETE CASCADE,
	year          INTEGER NOT NULL,
	month         SMALLINT NOT NULL CHECK (month BETWEEN 1 AND 12),
	delivery_days INTEGER NOT NULL,
	gross_revenue NUMERIC(14,2) NOT NULL,
	net_revenue   NUMERIC(14,2) NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (pipeline_id, year, month)
)`,
	},
	{
		name: "pipeline_activities",
		sql: `CREATE TABLE IF NOT EXISTS pipeline_activities (
	id            BIGSERIAL PRIMARY KEY,
	pipeline_id   VARCHAR(32) NOT NULL REFERENCES pipelines(id) ON DELETE CASCADE,
	activity_type VARCHAR(32) NOT NULL,
	field         VARCHAR(64),
	old_value     TEXT,
	new_value     TEXT,
	user_id       INTEGER REFERENCES users(id) ON DELETE SET NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "pipeline_activities_pipeline_idx",
		sql:  `CREATE INDEX IF NOT EXISTS pipeline_activities_pipeline_idx ON pipeline_activities (pipeline_id, created_at DESC)`,
	},
	{
		name: "log_pipeline_status_change",
		sql: `CREATE OR REPLACE FUNCTION log_pipeline_status_change() RETURNS TRIGGER AS $$
BEGIN
	IF NEW.status IS DISTINCT FROM OLD.status THEN
		INSERT INTO pipeline_activities (pipeline_id, activity_type, field, old_value, new_value, user_id)
		VALUES (NEW.id, '` + string(domain.ActivityStatusChange) + `', 'status', OLD.status, NEW.status,
			NULLIF(current_setting('app.user_id', true), '')::INTEGER);
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	},
	{
		name: "pipelines_status_change_trigger",
		sql:  `DROP TRIGGER IF EXISTS pipelines_status_change ON pipelines`,
	},
	{
		name: "pipelines_status_change_trigger_create",
		sql: `CREATE TRIGGER pipelines_status_change
	AFTER UPDATE OF status ON pipelines
	FOR EACH ROW EXECUTE FUNCTION log_pipeline_status_change()`,
	},
}

func main() {
	adminEmail := flag.String("admin-email", "", "email do administrador inicial (opcional)")
	adminName := flag.String("admin-name", "Admin", "nome do administrador inicial")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			logrus.WithField("statement", stmt.name).Debug("Executando")
			if _, err := tx.ExecContext(ctx, stmt.sql); err != nil {
				logrus.WithError(err).WithField("statement", stmt.name).Error("Erro ao executar statement")
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.WithFields(logrus.Fields{
		"statements": len(statements),
		"duration":   time.Since(startTime).String(),
	}).Info("Esquema aplicado com sucesso")

	if *adminEmail != "" {
		seedAdmin(ctx, conn, *adminName, *adminEmail)
	}
}

// seedAdmin cria o administrador inicial com a senha de ADMIN_PASSWORD, se ainda não existir
func seedAdmin(ctx context.Context, conn *postgres.Connection, name, email string) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logrus.Fatal("ADMIN_PASSWORD é obrigatório para criar o administrador")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
	}

	result, err := conn.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, active, role_id)
		 VALUES ($1, $2, $3, TRUE, $4)
		 ON CONFLICT (email) DO NOTHING`,
		name, email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		logrus.WithField("email", email).Info("Administrador já existe")
		return
	}

	logrus.WithField("email", email).Info("Administrador criado com sucesso")
}
