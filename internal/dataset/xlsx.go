package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrOpenWorkbook  = errors.New("open workbook failed")
	ErrReadSheet     = errors.New("read sheet failed")
	ErrMissingHeader = errors.New("sheet has no header row")
	ErrMissingColumn = errors.New("required column missing")
)

// Columns maps record fields to spreadsheet header names.
type Columns struct {
	Version     string
	DeviceID    string
	PinpadModel string
	Region      string
}

var DefaultColumns = Columns{
	Version:     "Versao",
	DeviceID:    "Id Fisica",
	PinpadModel: "Pin Modelo",
	Region:      "UF",
}

type XLSXConfig struct {
	Path    string
	Sheet   string
	MaxRows int // data rows after the header, 0 = unlimited
	Width   int // leading columns considered (A:I = 9), 0 = all
	Columns Columns
}

type XLSXSource struct {
	path    string
	sheet   string
	maxRows int
	width   int
	columns Columns
}

func NewXLSXSource(cfg XLSXConfig) *XLSXSource {
	columns := cfg.Columns
	if columns == (Columns{}) {
		columns = DefaultColumns
	}
	return &XLSXSource{
		path:    cfg.Path,
		sheet:   cfg.Sheet,
		maxRows: cfg.MaxRows,
		width:   cfg.Width,
		columns: columns,
	}
}

func (s *XLSXSource) Load(ctx context.Context) (*Dataset, error) {
	const fn = "XLSXSource:Load"
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrOpenWorkbook, err)
	}
	defer f.Close()

	rows, err := f.Rows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadSheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("%s:%w: %s", fn, ErrMissingHeader, s.sheet)
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadSheet, err)
	}
	layout, err := s.resolve(s.clip(header))
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
	}

	var records []Record
	read := 0
	for rows.Next() {
		if s.maxRows > 0 && read >= s.maxRows {
			break
		}
		read++
		cells, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadSheet, err)
		}
		cells = s.clip(cells)
		if blank(cells) {
			continue
		}
		records = append(records, layout.record(read, cells))
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrReadSheet, err)
	}

	slog.InfoContext(ctx, "Dataset loaded from workbook",
		"path", s.path,
		"sheet", s.sheet,
		"rows_read", read,
		"records", len(records))
	return New(s.path, records), nil
}

func (s *XLSXSource) clip(cells []string) []string {
	if s.width > 0 && len(cells) > s.width {
		return cells[:s.width]
	}
	return cells
}

type layout struct {
	version, deviceID, pinpadModel, region int
	extra                                  []int
}

func (s *XLSXSource) resolve(header []string) (layout, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	find := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var l layout
	var err error
	if l.version, err = find(s.columns.Version); err != nil {
		return l, err
	}
	if l.deviceID, err = find(s.columns.DeviceID); err != nil {
		return l, err
	}
	if l.pinpadModel, err = find(s.columns.PinpadModel); err != nil {
		return l, err
	}
	if l.region, err = find(s.columns.Region); err != nil {
		return l, err
	}
	for i := range header {
		if i != l.version && i != l.deviceID && i != l.pinpadModel && i != l.region {
			l.extra = append(l.extra, i)
		}
	}
	return l, nil
}

func (l layout) record(row int, cells []string) Record {
	r := Record{
		Row:         row,
		Version:     cell(cells, l.version),
		DeviceID:    cell(cells, l.deviceID),
		PinpadModel: cell(cells, l.pinpadModel),
		Region:      cell(cells, l.region),
	}
	for _, i := range l.extra {
		r.Extra = append(r.Extra, cell(cells, i))
	}
	return r
}

// excelize trims trailing empty cells, so short rows are expected.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
