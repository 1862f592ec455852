package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"pos-versions-dashboard/internal/cache"
	"pos-versions-dashboard/internal/dataset"
	"pos-versions-dashboard/internal/report"
)

var ErrLoadDataset = errors.New("dataset load failed")

type Config struct {
	Source  dataset.Source
	Cache   cache.Cache // nil reloads the dataset on every render
	Options report.Options
}

type Dashboard struct {
	source dataset.Source
	cache  cache.Cache
	opts   report.Options

	mu      sync.RWMutex
	current *dataset.Dataset
}

func New(cfg Config) *Dashboard {
	return &Dashboard{
		source: cfg.Source,
		cache:  cfg.Cache,
		opts:   cfg.Options,
	}
}

// Reload swaps in a freshly loaded dataset and drops cached views. The
// previous dataset stays active when the load fails.
func (d *Dashboard) Reload(ctx context.Context) error {
	const fn = "Dashboard:Reload"
	ds, err := d.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrLoadDataset, err)
	}

	d.mu.Lock()
	d.current = ds
	if d.cache != nil {
		d.cache.Invalidate()
	}
	d.mu.Unlock()

	slog.InfoContext(ctx, "Dataset reloaded", "source", ds.Source, "records", ds.Len())
	return nil
}

func (d *Dashboard) Render(ctx context.Context, f report.Filter) (report.View, error) {
	if d.cache == nil {
		ds, err := d.load(ctx)
		if err != nil {
			return report.View{}, err
		}
		return report.Build(ds, f, d.opts), nil
	}

	key := cache.NewKey(f)
	if view, ok := d.cache.Get(key); ok {
		return view, nil
	}

	ds, gen, err := d.snapshot(ctx)
	if err != nil {
		return report.View{}, err
	}
	view := report.Build(ds, f, d.opts)
	d.cache.Set(gen, key, view)
	return view, nil
}

func (d *Dashboard) Sidebar(ctx context.Context, version string) (report.Sidebar, error) {
	var ds *dataset.Dataset
	var err error
	if d.cache == nil {
		ds, err = d.load(ctx)
	} else {
		ds, _, err = d.snapshot(ctx)
	}
	if err != nil {
		return report.Sidebar{}, err
	}
	return report.BuildSidebar(ds, version, d.opts), nil
}

func (d *Dashboard) load(ctx context.Context) (*dataset.Dataset, error) {
	const fn = "Dashboard:load"
	ds, err := d.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrLoadDataset, err)
	}
	return ds, nil
}

// snapshot returns the active dataset with the cache generation it belongs
// to, loading it on first use.
func (d *Dashboard) snapshot(ctx context.Context) (*dataset.Dataset, uint64, error) {
	d.mu.RLock()
	ds, gen := d.current, d.cache.Generation()
	d.mu.RUnlock()
	if ds != nil {
		return ds, gen, nil
	}

	if err := d.Reload(ctx); err != nil {
		return nil, 0, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current, d.cache.Generation(), nil
}
