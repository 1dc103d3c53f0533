package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/recstore/internal/bench"
	"github.com/leengari/recstore/internal/config"
	"github.com/leengari/recstore/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recstore",
		Short: "Embedded in-process tabular data store",
	}

	var (
		records   int
		batchSize int
		workers   int
	)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the fixed insert/update/select/aggregate/delete benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("records") {
				cfg.Records = records
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.BatchSize = batchSize
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			logger, closeFn := logging.SetupLogger(cfg.SeqURL, cfg.Level())
			defer closeFn()
			slog.SetDefault(logger)

			logger.Info("starting benchmark",
				"records", cfg.Records,
				"columns", cfg.Columns,
				"key_column", cfg.KeyColumn,
				"batch_size", cfg.BatchSize,
				"workers", cfg.Workers,
			)

			return bench.RunParallel(cfg, logger)
		},
	}
	benchCmd.Flags().IntVar(&records, "records", 10000, "records per benchmark run")
	benchCmd.Flags().IntVar(&batchSize, "batch-size", 100, "aggregate batch size")
	benchCmd.Flags().IntVar(&workers, "workers", 1, "independent engine instances to run concurrently")

	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
