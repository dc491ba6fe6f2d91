// FILE: internal/entity/ingest_entity.go
// Domain entity for ingest jobs
package entity

import "time"

// UploadedDocument is the name and size of one uploaded file. Contents
// are discarded at the controller; the pipeline only ever sees metadata.
type UploadedDocument struct {
	Name string
	Size int64
}

// IngestJob tracks one fake document-processing run. Jobs are owned by
// the session that submitted them and are cancellable between steps.
type IngestJob struct {
	Id          string
	SessionId   string
	ProjectName string
	Documents   []UploadedDocument
	Status      string
	Step        string
	Progress    float64
	StartedAt   time.Time
	FinishedAt  *time.Time
}

// TotalSize sums the uploaded file sizes, as logged by
// file_upload_started.
func (j *IngestJob) TotalSize() int64 {
	var total int64
	for _, d := range j.Documents {
		total += d.Size
	}
	return total
}

// DocumentNames returns the upload names in order, used as the new
// site's document list.
func (j *IngestJob) DocumentNames() []string {
	names := make([]string, 0, len(j.Documents))
	for _, d := range j.Documents {
		names = append(names, d.Name)
	}
	return names
}
