package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = "Order ID,Amount,Quantity,Category,Sub-Category,Order Date,Year-Month\n" +
	"B-1,1096,7,Electronics,Electronic Games,2023-06-04,2023-06\n" +
	"B-2,5729,14,Electronics,Printers,2023-07-15,2023-07\n" +
	"B-2,2927,8,Office Supplies,Paper,2023-07-15,2023-07\n" +
	"B-3,30,3,Furniture,Chairs,2023-08-02,2023-08\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)
	return cmd, out
}

func TestRunForecast(t *testing.T) {
	forecastCSVPath = writeCSV(t, salesCSV)
	forecastCurrency = "R"
	forecastNarrate = true
	t.Cleanup(func() {
		forecastCSVPath = ""
		forecastNarrate = false
	})

	cmd, out := newCommand()
	require.NoError(t, runForecast(cmd, nil))

	output := out.String()
	assert.Contains(t, output, "2023-06")
	assert.Contains(t, output, "R 8,656.00")
	// (7 + 11 + 3) / 3
	assert.Contains(t, output, "- 2023-08: 7.00 units per sale")
}

func TestRunForecast_ShortHistory(t *testing.T) {
	forecastCSVPath = writeCSV(t, "Order ID,Amount,Quantity,Year-Month\nA-1,10,1,2024-01\n")
	t.Cleanup(func() { forecastCSVPath = "" })

	cmd, out := newCommand()
	require.NoError(t, runForecast(cmd, nil))

	assert.Contains(t, out.String(), "sem média móvel")
}

func TestRunForecast_RequiresCSV(t *testing.T) {
	forecastCSVPath = ""

	cmd, _ := newCommand()
	assert.Error(t, runForecast(cmd, nil))
}

func TestRunForecast_MissingFile(t *testing.T) {
	forecastCSVPath = filepath.Join(t.TempDir(), "nope.csv")
	t.Cleanup(func() { forecastCSVPath = "" })

	cmd, _ := newCommand()
	assert.Error(t, runForecast(cmd, nil))
}

func TestRunSeed_ImportsCSVOnce(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "stockwise.db"))
	t.Setenv("LOG_LEVEL", "error")

	seedCSVPath = writeCSV(t, salesCSV)
	t.Cleanup(func() { seedCSVPath = "" })

	cmd, out := newCommand()
	require.NoError(t, runSeed(cmd, nil))
	assert.Contains(t, out.String(), "3 de 3 pedidos importados")

	cmd, out = newCommand()
	require.NoError(t, runSeed(cmd, nil))
	assert.Contains(t, out.String(), "0 registros iniciais inseridos")
	assert.Contains(t, out.String(), "0 de 3 pedidos importados")
}

func TestRunMigrate(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "stockwise.db"))
	t.Setenv("LOG_LEVEL", "error")

	cmd, out := newCommand()
	require.NoError(t, runMigrate(cmd, nil))
	assert.Contains(t, out.String(), "aplicada:")

	cmd, out = newCommand()
	require.NoError(t, runMigrate(cmd, nil))
	assert.Contains(t, out.String(), "Nenhuma migração pendente")
}
