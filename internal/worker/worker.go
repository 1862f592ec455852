package worker

import (
	"context"
	"errors"
	"log/slog"
)

type Config struct {
	Name      string
	Processor Processor
}

type Processor interface {
	ProcessMessage(ctx context.Context) error
}

type Worker struct {
	name      string
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
	}
}

// Run blocks until ctx is cancelled. Processing errors are logged and the
// loop moves on to the next message.
func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		default:
			err := w.processor.ProcessMessage(ctx)
			if err == nil {
				continue
			}
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				continue
			}
			slog.ErrorContext(ctx, "Error processing message", "worker", w.name, "error", err)
		}
	}
}
