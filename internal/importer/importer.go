package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pos-versions-dashboard/internal/dataset"
	k "pos-versions-dashboard/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrLoad         = errors.New("dataset load failed")
	ErrStore        = errors.New("dataset store failed")
	ErrWriteMessage = errors.New("error writing message")
)

type recordStore interface {
	ReplaceRecords(ctx context.Context, records []dataset.Record) error
}

type Config struct {
	Source dataset.Source
	Store  recordStore
	Writer k.Writer // optional
}

// Importer copies the spreadsheet into the database mirror and announces
// the new snapshot so running dashboards reload it.
type Importer struct {
	source dataset.Source
	store  recordStore
	writer k.Writer
	now    func() time.Time
}

func New(cfg Config) *Importer {
	return &Importer{
		source: cfg.Source,
		store:  cfg.Store,
		writer: cfg.Writer,
		now:    time.Now,
	}
}

func (i *Importer) Run(ctx context.Context) (int, error) {
	const fn = "Importer:Run"
	ds, err := i.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrLoad, err)
	}
	if err := i.store.ReplaceRecords(ctx, ds.Records); err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrStore, err)
	}
	slog.InfoContext(ctx, "Dataset imported", "source", ds.Source, "records", ds.Len())

	if i.writer == nil {
		return ds.Len(), nil
	}
	event := k.DatasetEvent{
		Timestamp: i.now().UnixMilli(),
		EventType: k.DatasetImported,
		Source:    ds.Source,
		Rows:      ds.Len(),
	}
	out, err := json.Marshal(event)
	if err != nil {
		return ds.Len(), fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	if err := i.writer.WriteMessages(ctx, kafka.Message{Key: []byte(k.DatasetImported), Value: out}); err != nil {
		return ds.Len(), fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.InfoContext(ctx, "Published dataset event", "event_type", event.EventType, "rows", event.Rows)
	return ds.Len(), nil
}
