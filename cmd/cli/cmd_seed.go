package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/stockwise-api/infrastructure/dataset"
	"github.com/vfg2006/stockwise-api/infrastructure/repository"
)

var seedCSVPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Popula o banco com os dados iniciais e, opcionalmente, o CSV de vendas",
	Long: `Aplica as migrações, insere o catálogo e os pedidos de exemplo e, com --csv,
importa cada Order ID do dataset como uma venda concluída. Pedidos já
importados são ignorados, então o comando pode ser repetido.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedCSVPath, "csv", "", "caminho do CSV de vendas a importar")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	conn, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, seeded, err := applyMigrations(ctx, conn, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d registros iniciais inseridos\n", seeded)

	if seedCSVPath == "" {
		return nil
	}

	rows, err := dataset.NewCSVSource(seedCSVPath).ReadRows(ctx)
	if err != nil {
		return err
	}

	transactions := dataset.ToTransactions(rows, time.Now())
	imported, err := repository.NewTransactionRepository(conn).ImportTransactions(ctx, transactions)
	if err != nil {
		return fmt.Errorf("erro ao importar vendas: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d de %d pedidos importados de %s\n", imported, len(transactions), seedCSVPath)
	return nil
}
