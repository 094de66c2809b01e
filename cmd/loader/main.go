package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/middleware"
	"github.com/MarkChukwuebuka/invoice-etl/internal/repositories/database/pgsql"
	"github.com/MarkChukwuebuka/invoice-etl/internal/repositories/source/csvfile"
	"github.com/MarkChukwuebuka/invoice-etl/pkg/config"
	"github.com/MarkChukwuebuka/invoice-etl/pkg/database"
	"github.com/spf13/cobra"
)

var (
	flagInvoices  string
	flagLineItems string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "loader",
	Short: "Load invoice and line-item CSV batches into Postgres",
	Long: `loader cleans, classifies, validates and bulk-loads a pair of CSV
batches (invoices and line items) into the invoices database. Validation
findings are logged but do not block the load; line items referencing
invoices absent from the batch are dropped.`,
	RunE: runLoad,
}

func init() {
	rootCmd.Flags().StringVar(&flagInvoices, "invoices", "", "path to the invoices CSV (overrides config)")
	rootCmd.Flags().StringVar(&flagLineItems, "line-items", "", "path to the line items CSV (overrides config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML run config with input paths")
}

func runLoad(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Precedence: flags over YAML run config over env defaults.
	invoicesPath := cfg.InvoicesCSVPath
	lineItemsPath := cfg.LineItemsCSVPath
	if flagConfig != "" {
		runCfg, err := config.LoadIngestConfig(flagConfig)
		if err != nil {
			return err
		}
		if runCfg.Invoices != "" {
			invoicesPath = runCfg.Invoices
		}
		if runCfg.LineItems != "" {
			lineItemsPath = runCfg.LineItems
		}
	}
	if flagInvoices != "" {
		invoicesPath = flagInvoices
	}
	if flagLineItems != "" {
		lineItemsPath = flagLineItems
	}

	ctx := middleware.WithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}

	source := csvfile.New(invoicesPath, lineItemsPath)
	ingestion := services.NewIngestionService(
		source,
		pgsql.NewInvoiceRepository(dbPool),
		pgsql.NewLineItemRepository(dbPool),
	)

	summary, err := ingestion.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Run summary",
		slog.Int64("invoices_loaded", summary.InvoicesLoaded),
		slog.Int64("line_items_loaded", summary.LineItemsLoaded),
		slog.Int("line_items_dropped", summary.LineItemsDropped),
		slog.Duration("elapsed", summary.Elapsed))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Data loading failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
