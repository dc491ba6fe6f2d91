// FILE: internal/dto/project_dto.go
// DTOs for project upload and processing jobs
package dto

import "time"

// CreateProjectRequest is parsed from the multipart form: the
// "project_name" field plus one or more "documents" files.
type CreateProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required"`
}

type CreateProjectResponse struct {
	ProjectId string `json:"project_id"`
	Status    string `json:"status"`
}

type JobStatusResponse struct {
	ProjectId   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Status      string     `json:"status"`
	Step        string     `json:"step,omitempty"`
	Progress    float64    `json:"progress"`
	FileCount   int        `json:"file_count"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}
