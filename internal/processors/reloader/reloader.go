package reloader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	k "pos-versions-dashboard/internal/kafka" // alias to avoid name conflict
	"pos-versions-dashboard/internal/worker"
)

var (
	ErrReadMessage  = errors.New("error reading message")
	ErrJSONParse    = errors.New("error parsing message")
	ErrInvalidEvent = errors.New("invalid event")
	ErrReload       = errors.New("dataset reload failed")
)

type reloadTarget interface {
	Reload(ctx context.Context) error
}

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	Target          reloadTarget
}

type Reloader struct {
	worker *worker.Worker
	reader k.Reader
	target reloadTarget
}

func New(cfg Config) *Reloader {
	reloader := &Reloader{
		reader: k.NewReader(k.ReaderConfig{
			Brokers:         cfg.Brokers,
			ConsumerGroupID: cfg.ConsumerGroupID,
			Topic:           cfg.ConsumerTopic,
		}),
		target: cfg.Target,
	}

	reloader.worker = worker.New(worker.Config{
		Name:      "reloader-worker",
		Processor: reloader,
	})
	return reloader
}

func (r *Reloader) Run(ctx context.Context) {
	r.worker.Run(ctx)
}

func (r *Reloader) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing reloader resources...")
	r.reader.Close()
}

// Auto-commit active
func (r *Reloader) ProcessMessage(ctx context.Context) error {
	const fn = "Reloader:ProcessMessage"
	m, err := r.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	var event k.DatasetEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	if event.EventType != k.DatasetImported {
		return fmt.Errorf("%s:%w: %q", fn, ErrInvalidEvent, event.EventType)
	}

	if err := r.target.Reload(ctx); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReload, err)
	}
	slog.InfoContext(ctx, "Dataset reloaded from event",
		"source", event.Source,
		"rows", event.Rows,
		"timestamp", event.Timestamp)
	return nil
}
