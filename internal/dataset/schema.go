package dataset

import (
	"context"
	"time"
)

// Record is one POS/pinpad deployment row of the version spreadsheet.
type Record struct {
	Row         int      `json:"row"`
	Version     string   `json:"version"`
	DeviceID    string   `json:"device_id"`
	PinpadModel string   `json:"pinpad_model"`
	Region      string   `json:"region"`
	Extra       []string `json:"extra,omitempty"`
}

type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Dataset is read-only once loaded. Records keep spreadsheet order.
type Dataset struct {
	Source   string
	LoadedAt time.Time
	Records  []Record
}

func New(source string, records []Record) *Dataset {
	return &Dataset{
		Source:   source,
		LoadedAt: time.Now(),
		Records:  records,
	}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

func (d *Dataset) Versions() []string {
	return d.distinct(func(r Record) string { return r.Version })
}

func (d *Dataset) DeviceIDs() []string {
	return d.distinct(func(r Record) string { return r.DeviceID })
}

// POSShortlist returns the first n distinct device ids in dataset order.
func (d *Dataset) POSShortlist(n int) []string {
	ids := d.DeviceIDs()
	if n < 0 || n >= len(ids) {
		return ids
	}
	return ids[:n]
}

func (d *Dataset) distinct(field func(Record) string) []string {
	out := []string{}
	if d == nil {
		return out
	}
	seen := make(map[string]struct{})
	for _, r := range d.Records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
