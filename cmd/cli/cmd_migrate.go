package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações pendentes",
	Long:  `Cria as tabelas que ainda não existem no banco configurado por DATABASE_DRIVER.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	conn, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	applied, _, err := applyMigrations(ctx, conn, false)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma migração pendente")
		return nil
	}
	for _, name := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "aplicada: %s\n", name)
	}
	return nil
}
