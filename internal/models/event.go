package models

// SleepEvent represents a sleep-record activity event published to Kafka after a successful mutation.
type SleepEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the mutation occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the record owner.
	SleepID   string `json:"sleep_id"`  // SleepID is the identifier of the affected sleep record.
	Operation string `json:"operation"` // Operation is the mutation type: "create", "update" or "delete".
}
