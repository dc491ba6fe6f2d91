// FILE: internal/service/activity_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/events"
)

// IActivityService is the single write path for session activity. Every
// recorded action lands in three places: the session's capped buffer
// (dashboard), the durable zap sink (ops), and the event bus (live
// stream).
type IActivityService interface {
	Record(sessionId, action string, details map[string]interface{}, level string)
	Recent(sessionId, level, action string, limit int) []entity.ActivityLog
	Metrics(sessionId string) dto.LogMetricsDTO
	Actions(sessionId string) []string
	List(sessionId, level, action string, limit int) *dto.ActivityListResponse
	Export(sessionId, level, action string) (*dto.ExportLogsResponse, []byte, error)
	SinkLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type activityService struct {
	activityRepo     *memory.ActivityRepository
	publisherService IPublisherService
	activityMapper   *mapper.ActivityMapper
	log              logger.ILogger
}

func NewActivityService(
	activityRepo *memory.ActivityRepository,
	publisherService IPublisherService,
	activityMapper *mapper.ActivityMapper,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		activityRepo:     activityRepo,
		publisherService: publisherService,
		activityMapper:   activityMapper,
		log:              log,
	}
}

func (as *activityService) Record(sessionId, action string, details map[string]interface{}, level string) {
	if details == nil {
		details = map[string]interface{}{}
	}

	entry := entity.ActivityLog{
		Timestamp: time.Now(),
		Action:    action,
		Details:   details,
		Level:     level,
		SessionId: sessionId,
		UserAgent: constant.UserAgentBrowser,
	}

	as.activityRepo.Buffer(sessionId).Append(entry)
	as.sink(entry)

	if err := as.publisherService.Publish(context.Background(), constant.TopicActivityEvents, events.NewActivityLogged(entry)); err != nil {
		as.log.Warn("ActivityService", "Failed to publish activity event", map[string]interface{}{"error": err.Error()})
	}
}

// sink writes one line per action to the durable log file. The message
// format "<action> | <details>" keeps the file greppable by action name.
func (as *activityService) sink(entry entity.ActivityLog) {
	detailJson, err := json.Marshal(entry.Details)
	if err != nil {
		detailJson = []byte("{}")
	}
	message := fmt.Sprintf("%s | %s", entry.Action, string(detailJson))

	details := map[string]interface{}{
		"session_id": entry.SessionId,
		"user_agent": entry.UserAgent,
	}

	switch entry.Level {
	case constant.LogLevelWarning:
		as.log.Warn("ActivityService", message, details)
	case constant.LogLevelError:
		as.log.Error("ActivityService", message, details)
	default:
		as.log.Info("ActivityService", message, details)
	}
}

// filtered returns the session's buffered entries in append order, with
// level and action filters applied. "ALL" (or empty) disables a filter.
func (as *activityService) filtered(sessionId, level, action string) []entity.ActivityLog {
	entries := as.activityRepo.Buffer(sessionId).Snapshot()

	out := make([]entity.ActivityLog, 0, len(entries))
	for _, entry := range entries {
		if level != "" && level != constant.LogFilterAll && entry.Level != level {
			continue
		}
		if action != "" && action != constant.LogFilterAll && entry.Action != action {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Recent returns up to limit filtered entries, newest first.
func (as *activityService) Recent(sessionId, level, action string, limit int) []entity.ActivityLog {
	entries := as.filtered(sessionId, level, action)

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	// Reverse to show newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// Metrics counts the whole buffer, ignoring dashboard filters.
func (as *activityService) Metrics(sessionId string) dto.LogMetricsDTO {
	metrics := dto.LogMetricsDTO{}
	for _, entry := range as.activityRepo.Buffer(sessionId).Snapshot() {
		metrics.Total++
		switch entry.Level {
		case constant.LogLevelInfo:
			metrics.Info++
		case constant.LogLevelWarning:
			metrics.Warning++
		case constant.LogLevelError:
			metrics.Error++
		}
	}
	return metrics
}

// Actions lists the distinct action names seen this session, in first
// occurrence order. Feeds the dashboard's action filter dropdown.
func (as *activityService) Actions(sessionId string) []string {
	seen := make(map[string]bool)
	actions := []string{}
	for _, entry := range as.activityRepo.Buffer(sessionId).Snapshot() {
		if !seen[entry.Action] {
			seen[entry.Action] = true
			actions = append(actions, entry.Action)
		}
	}
	return actions
}

func (as *activityService) List(sessionId, level, action string, limit int) *dto.ActivityListResponse {
	total := len(as.filtered(sessionId, level, action))
	entries := as.Recent(sessionId, level, action, limit)

	return &dto.ActivityListResponse{
		Entries: as.activityMapper.LogsToDTOs(entries),
		Total:   total,
	}
}

// Export serializes the filtered entries (append order, no limit) as
// indented JSON. The export_logs action is recorded after the snapshot
// is taken, so an export never contains its own log entry.
func (as *activityService) Export(sessionId, level, action string) (*dto.ExportLogsResponse, []byte, error) {
	entries := as.filtered(sessionId, level, action)

	as.Record(sessionId, constant.ActionExportLogs, map[string]interface{}{
		"exported_count": len(entries),
	}, constant.LogLevelInfo)

	data, err := json.MarshalIndent(as.activityMapper.LogsToDTOs(entries), "", "  ")
	if err != nil {
		return nil, nil, err
	}

	filename := constant.ExportFilenamePrefix + time.Now().Format(constant.ExportFilenameLayout) + ".json"
	return &dto.ExportLogsResponse{
		Filename:      filename,
		ExportedCount: len(entries),
	}, data, nil
}

// SinkLogs reads the durable sink file back for the ops view. The file
// stores zap's level names, so the dashboard's WARNING filter maps to
// zap's WARN.
func (as *activityService) SinkLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if level == constant.LogFilterAll {
		level = ""
	}
	if level == constant.LogLevelWarning {
		level = "WARN"
	}
	return as.log.GetLogs(level, limit, offset)
}
