package db

type DeviceRecord struct {
	RowNumber   int      `db:"row_number"`
	Version     string   `db:"version"`
	DeviceID    string   `db:"device_id"`
	PinpadModel string   `db:"pinpad_model"`
	Region      string   `db:"region"`
	Extra       []string `db:"extra"`
}
