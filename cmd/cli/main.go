package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/stockwise-api/infrastructure/database"
	"github.com/vfg2006/stockwise-api/infrastructure/migration"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "stockwise",
	Short: "Ferramentas de linha de comando do Stockwise",
	Long: `Utilitários de manutenção do Stockwise: aplica migrações, popula o banco
com o CSV de vendas e calcula a previsão sem subir a API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, forecastCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDatabase carrega a configuração e abre a conexão com o banco configurado.
func openDatabase(ctx context.Context) (*database.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	log.Configure(cfg.App.LogLevel)

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logrus.WithField("driver", conn.Driver()).Debug("Conexão com o banco de dados estabelecida")
	return conn, nil
}

func applyMigrations(ctx context.Context, conn *database.Connection, seed bool) ([]string, int, error) {
	migrator := migration.NewMigrator(conn)

	applied, err := migrator.Up(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	if !seed {
		return applied, 0, nil
	}

	seeded, err := migrator.SeedDefaults(ctx, time.Now())
	if err != nil {
		return applied, 0, fmt.Errorf("erro ao popular dados iniciais: %w", err)
	}
	return applied, seeded, nil
}
