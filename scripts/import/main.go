package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"pos-versions-dashboard/internal/config"
	"pos-versions-dashboard/internal/dataset"
	"pos-versions-dashboard/internal/db"
	"pos-versions-dashboard/internal/importer"
	k "pos-versions-dashboard/internal/kafka"
)

// Loads the version spreadsheet into Postgres and, when kafka is enabled,
// tells running dashboards to reload.
func main() {
	configPath := flag.String("config", os.Getenv("POSDASH_CONFIG"), "path to a YAML config file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.Postgres.ConnString,
		MigrationsPath: cfg.Postgres.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer database.Close()

	impCfg := importer.Config{
		Source: dataset.NewXLSXSource(dataset.XLSXConfig{
			Path:    cfg.Dataset.Path,
			Sheet:   cfg.Dataset.Sheet,
			MaxRows: cfg.Dataset.MaxRows,
			Width:   cfg.Dataset.Width,
			Columns: dataset.Columns{
				Version:     cfg.Dataset.Columns.Version,
				DeviceID:    cfg.Dataset.Columns.DeviceID,
				PinpadModel: cfg.Dataset.Columns.PinpadModel,
				Region:      cfg.Dataset.Columns.Region,
			},
		}),
		Store: database,
	}
	if cfg.Kafka.Enabled {
		writer := k.NewWriter(k.WriterConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer writer.Close()
		impCfg.Writer = writer
	}

	rows, err := importer.New(impCfg).Run(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Import failed", "error", err, "rows", rows)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "Import complete", "rows", rows)
}
