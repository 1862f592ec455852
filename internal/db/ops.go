package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pos-versions-dashboard/internal/dataset"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrDeleteFailed           = errors.New("delete operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrCommitFailed           = errors.New("transaction commit failed")
	ErrSelectFailed           = errors.New("select operation failed")
)

var recordColumns = []string{"row_number", "version", "device_id", "pinpad_model", "region", "extra"}

// ReplaceRecords swaps the whole table contents in one transaction, so
// readers never see a partial import.
func (db *DB) ReplaceRecords(ctx context.Context, records []dataset.Record) (err error) {
	const fn = "DB:ReplaceRecords"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM device_records`); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}

	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		extra := r.Extra
		if extra == nil {
			extra = []string{}
		}
		rows = append(rows, []interface{}{r.Row, r.Version, r.DeviceID, r.PinpadModel, r.Region, extra})
	}
	if _, err = tx.CopyFrom(ctx, pgx.Identifier{"device_records"}, recordColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrCommitFailed, err)
	}
	return nil
}

func (db *DB) LoadRecords(ctx context.Context) ([]DeviceRecord, error) {
	const fn = "DB:LoadRecords"
	var records []DeviceRecord
	err := pgxscan.Select(ctx, db.pool, &records, `
			SELECT
				row_number,
				version,
				device_id,
				pinpad_model,
				region,
				extra
			FROM device_records
			ORDER BY row_number ASC
		`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []DeviceRecord{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return records, nil
}

// Load makes the table usable as a dataset.Source.
func (db *DB) Load(ctx context.Context) (*dataset.Dataset, error) {
	rows, err := db.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]dataset.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, dataset.Record{
			Row:         r.RowNumber,
			Version:     r.Version,
			DeviceID:    r.DeviceID,
			PinpadModel: r.PinpadModel,
			Region:      r.Region,
			Extra:       r.Extra,
		})
	}
	slog.InfoContext(ctx, "Dataset loaded from database", "records", len(records))
	return dataset.New("postgres:device_records", records), nil
}
