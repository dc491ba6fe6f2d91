package entity

import "time"

// ActivityLog is a single recorded user action or system event. Each
// entry lives in the owning session's capped buffer and is mirrored to
// the durable sink.
type ActivityLog struct {
	Timestamp time.Time
	Action    string
	Details   map[string]interface{}
	Level     string
	SessionId string
	UserAgent string
}
