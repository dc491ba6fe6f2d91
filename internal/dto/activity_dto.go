// FILE: internal/dto/activity_dto.go
// DTOs for the activity log dashboard
package dto

type ActivityListResponse struct {
	Entries []ActivityLogDTO `json:"entries"`
	Total   int              `json:"total"`
}

type ActivityActionsResponse struct {
	Actions []string `json:"actions"`
}

type ExportLogsResponse struct {
	Filename      string `json:"filename"`
	ExportedCount int    `json:"exported_count"`
}
