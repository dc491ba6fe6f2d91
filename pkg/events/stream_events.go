package events

import (
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/entity"
)

// Events published on the activity stream. Every payload carries
// "session_id" so the websocket hub can route frames to the owning
// session's clients.

// NewActivityLogged wraps a recorded log entry for live dashboards.
func NewActivityLogged(log entity.ActivityLog) BaseEvent {
	return BaseEvent{
		Type: constant.EventActivityLogged,
		Data: map[string]interface{}{
			"session_id": log.SessionId,
			"timestamp":  log.Timestamp.Format(time.RFC3339Nano),
			"action":     log.Action,
			"details":    log.Details,
			"level":      log.Level,
			"user_agent": log.UserAgent,
		},
		OccurredAt: log.Timestamp,
	}
}

// NewIngestQueued is the work-queue message handing a submitted job to
// the ingest worker.
func NewIngestQueued(sessionId, jobId string) BaseEvent {
	return BaseEvent{
		Type: constant.EventIngestQueued,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"job_id":     jobId,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestProgress reports one completed processing step.
func NewIngestProgress(sessionId, jobId, step string, progress float64) BaseEvent {
	return BaseEvent{
		Type: constant.EventIngestProgress,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"project_id": jobId,
			"step":       step,
			"progress":   progress,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestCompleted announces the appended site.
func NewIngestCompleted(sessionId, jobId, projectName string) BaseEvent {
	return BaseEvent{
		Type: constant.EventIngestCompleted,
		Data: map[string]interface{}{
			"session_id":   sessionId,
			"project_id":   jobId,
			"project_name": projectName,
		},
		OccurredAt: time.Now(),
	}
}

// NewIngestCancelled announces a job stopped between steps.
func NewIngestCancelled(sessionId, jobId string) BaseEvent {
	return BaseEvent{
		Type: constant.EventIngestCancelled,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"project_id": jobId,
		},
		OccurredAt: time.Now(),
	}
}

// SessionId extracts the routing key from a stream event payload.
func SessionId(e Event) string {
	if sid, ok := e.Payload()["session_id"].(string); ok {
		return sid
	}
	return ""
}
