package kafka

const (
	DatasetImported = "dataset_imported"
)

type DatasetEvent struct {
	Timestamp int64  `json:"timestamp"`
	EventType string `json:"event_type"`
	Source    string `json:"source"`
	Rows      int    `json:"rows"`
}
