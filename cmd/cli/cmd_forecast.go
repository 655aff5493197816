package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/stockwise-api/infrastructure/dataset"
	"github.com/vfg2006/stockwise-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/stockwise-api/internal/config"
	"github.com/vfg2006/stockwise-api/internal/usecases/forecasting"
	"github.com/vfg2006/stockwise-api/pkg/utils"
)

var (
	forecastCSVPath  string
	forecastPolicy   string
	forecastCurrency string
	forecastNarrate  bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Calcula vendas mensais e a média móvel a partir do CSV",
	Long: `Lê o CSV de vendas, agrupa por mês e imprime os totais mensais seguidos da
média móvel de 3 meses. Não acessa o banco nem o Gemini.`,
	Args: cobra.NoArgs,
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().StringVar(&forecastCSVPath, "csv", "", "caminho do CSV de vendas")
	forecastCmd.Flags().StringVar(&forecastPolicy, "policy", config.AmountPolicyDropNegative, "política de valores (drop-negative|positive-only)")
	forecastCmd.Flags().StringVar(&forecastCurrency, "currency", "R", "prefixo de moeda")
	forecastCmd.Flags().BoolVar(&forecastNarrate, "narrate", false, "imprime também a previsão narrada padrão")
}

func runForecast(cmd *cobra.Command, args []string) error {
	if forecastCSVPath == "" {
		return errors.New("informe o CSV com --csv")
	}

	ctx := cmd.Context()
	service := forecasting.NewService(
		dataset.NewCSVSource(forecastCSVPath),
		config.ForecastSourceCSV,
		forecasting.NewAggregator(forecasting.PolicyFromConfig(forecastPolicy)),
		gemini.NewFallbackNarrator(),
	)

	buckets, err := service.MonthlySales(ctx)
	if err != nil {
		return err
	}
	points, err := service.MovingAverage(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERÍODO\tQUANTIDADE\tRECEITA\tREGISTROS")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", b.Period, b.TotalQuantity, utils.FormatMoney(forecastCurrency, b.TotalRevenue), b.RecordCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	if len(points) == 0 {
		fmt.Fprintln(out, "Menos de 3 meses de dados, sem média móvel")
	} else {
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PERÍODO\tMÉDIA MÓVEL")
		for _, p := range points {
			fmt.Fprintf(w, "%s\t%s\n", p.Period, p.MovingAverage.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if forecastNarrate {
		narration, err := service.NarratedForecast(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, narration)
	}
	return nil
}
