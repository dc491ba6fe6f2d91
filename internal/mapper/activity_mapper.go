package mapper

import (
	"time"

	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) LogToDTO(log entity.ActivityLog) dto.ActivityLogDTO {
	details := log.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	return dto.ActivityLogDTO{
		Timestamp: log.Timestamp.Format(time.RFC3339Nano),
		Action:    log.Action,
		Details:   details,
		Level:     log.Level,
		SessionId: log.SessionId,
		UserAgent: log.UserAgent,
	}
}

func (m *ActivityMapper) LogsToDTOs(logs []entity.ActivityLog) []dto.ActivityLogDTO {
	out := make([]dto.ActivityLogDTO, 0, len(logs))
	for _, log := range logs {
		out = append(out, m.LogToDTO(log))
	}
	return out
}
