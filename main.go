package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"pos-versions-dashboard/internal/api"
	"pos-versions-dashboard/internal/cache"
	"pos-versions-dashboard/internal/config"
	"pos-versions-dashboard/internal/dashboard"
	"pos-versions-dashboard/internal/dataset"
	"pos-versions-dashboard/internal/db"
	"pos-versions-dashboard/internal/processors/reloader"
	"pos-versions-dashboard/internal/report"
	"sync"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", os.Getenv("POSDASH_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Log.Level)})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...", "dataset_source", cfg.Dataset.Source)

	var source dataset.Source
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		database, err := db.Init(ctx, db.Config{
			ConnString:     cfg.Postgres.ConnString,
			MigrationsPath: cfg.Postgres.MigrationsPath,
		})
		if err != nil {
			panic(err)
		}
		defer database.Close()
		source = database
	default:
		source = xlsxSource(cfg.Dataset)
	}

	dashCfg := dashboard.Config{
		Source: source,
		Options: report.Options{
			POSShortlistSize: cfg.Report.POSShortlistSize,
			POSModels:        cfg.Report.POSModels,
			VersionFeatures:  cfg.Report.Features(),
			Banner:           cfg.Report.Banner,
			Footer:           cfg.Report.Footer,
		},
	}
	if cfg.Cache.Enabled {
		dashCfg.Cache = cache.New()
	}
	dash := dashboard.New(dashCfg)

	if cfg.Cache.Enabled {
		if err := dash.Reload(ctx); err != nil {
			// Render retries the load on the next request.
			slog.ErrorContext(ctx, "Initial dataset load failed", "error", err)
		}
	}

	wg := sync.WaitGroup{}
	var wReloader *reloader.Reloader
	if cfg.Kafka.Enabled {
		wReloader = reloader.New(reloader.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.ConsumerGroupID,
			ConsumerTopic:   cfg.Kafka.Topic,
			Target:          dash,
		})
		wg.Go(func() {
			wReloader.Run(ctx)
		})
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.New(api.Config{Dashboard: dash}).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	select {
	case <-sigs:
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "HTTP server shutdown error", "error", err)
	}

	wg.Wait()
	if wReloader != nil {
		wReloader.Close(shutdownCtx)
	}
}

func xlsxSource(cfg config.DatasetConfig) *dataset.XLSXSource {
	return dataset.NewXLSXSource(dataset.XLSXConfig{
		Path:    cfg.Path,
		Sheet:   cfg.Sheet,
		MaxRows: cfg.MaxRows,
		Width:   cfg.Width,
		Columns: dataset.Columns{
			Version:     cfg.Columns.Version,
			DeviceID:    cfg.Columns.DeviceID,
			PinpadModel: cfg.Columns.PinpadModel,
			Region:      cfg.Columns.Region,
		},
	})
}

func logLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
