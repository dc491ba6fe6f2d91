// FILE: internal/service/ingest_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/events"
	"construction-deepwiki-be/pkg/ingest"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IIngestService runs the fake document pipeline. Submit validates the
// upload and queues a job; the worker walks the fixed step sequence in
// the background and appends the finished project to the content store.
// Jobs can be cancelled between steps.
type IIngestService interface {
	Submit(ctx context.Context, sessionId string, req *dto.CreateProjectRequest, files []entity.UploadedDocument) (*dto.CreateProjectResponse, error)
	JobStatus(ctx context.Context, sessionId, jobId string) (*dto.JobStatusResponse, error)
	Cancel(ctx context.Context, sessionId, jobId string) (*dto.JobStatusResponse, error)
	Consume(ctx context.Context) error
}

type ingestService struct {
	pubSub           *gochannel.GoChannel
	jobRepo          *memory.JobRepository
	contentRepo      *memory.ContentRepository
	activityService  IActivityService
	publisherService IPublisherService
	stepDelay        time.Duration
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	jobRepo *memory.JobRepository,
	contentRepo *memory.ContentRepository,
	activityService IActivityService,
	publisherService IPublisherService,
	stepDelay time.Duration,
) IIngestService {
	return &ingestService{
		pubSub:           pubSub,
		jobRepo:          jobRepo,
		contentRepo:      contentRepo,
		activityService:  activityService,
		publisherService: publisherService,
		stepDelay:        stepDelay,
	}
}

// newProjectSections is the section skeleton every uploaded project
// starts with. Content stays placeholder until a real pipeline exists.
func newProjectSections() []entity.SectionRef {
	return []entity.SectionRef{
		{Id: "overview", Title: "Project Overview"},
		{Id: "structural", Title: "Structural Analysis"},
		{Id: "safety", Title: "Safety Documentation"},
		{Id: "materials", Title: "Material Specifications"},
	}
}

func (is *ingestService) Submit(ctx context.Context, sessionId string, req *dto.CreateProjectRequest, files []entity.UploadedDocument) (*dto.CreateProjectResponse, error) {
	if reason := validateUpload(files); reason != "" {
		is.activityService.Record(sessionId, constant.ActionUploadRejected, map[string]interface{}{
			"project_name": req.ProjectName,
			"file_count":   len(files),
			"reason":       reason,
		}, constant.LogLevelWarning)
		return nil, fmt.Errorf("%w: %s", ErrInvalidUpload, reason)
	}

	is.activityService.Record(sessionId, constant.ActionCreateProjectClicked, map[string]interface{}{
		"project_name": req.ProjectName,
		"file_count":   len(files),
	}, constant.LogLevelInfo)

	job := entity.IngestJob{
		Id:          newDisplayId(constant.ProjectIdPrefix),
		SessionId:   sessionId,
		ProjectName: req.ProjectName,
		Documents:   files,
		Status:      constant.JobStatusQueued,
		StartedAt:   time.Now(),
	}

	is.activityService.Record(sessionId, constant.ActionFileUploadStarted, map[string]interface{}{
		"project_name": req.ProjectName,
		"file_count":   len(files),
		"total_size":   job.TotalSize(),
	}, constant.LogLevelInfo)

	is.jobRepo.Save(job)

	if err := is.publisherService.Publish(ctx, constant.TopicIngestQueue, events.NewIngestQueued(sessionId, job.Id)); err != nil {
		return nil, err
	}

	return &dto.CreateProjectResponse{
		ProjectId: job.Id,
		Status:    constant.JobStatusQueued,
	}, nil
}

func validateUpload(files []entity.UploadedDocument) string {
	if len(files) == 0 {
		return "no files uploaded"
	}
	if len(files) > constant.UploadMaxFiles {
		return fmt.Sprintf("too many files: %d exceeds the limit of %d", len(files), constant.UploadMaxFiles)
	}
	for _, f := range files {
		if strings.ToLower(filepath.Ext(f.Name)) != constant.UploadAllowedExtension {
			return fmt.Sprintf("unsupported file type: %s", f.Name)
		}
	}
	return ""
}

func (is *ingestService) JobStatus(ctx context.Context, sessionId, jobId string) (*dto.JobStatusResponse, error) {
	record, err := is.ownedRecord(sessionId, jobId)
	if err != nil {
		return nil, err
	}
	return statusOf(record), nil
}

// Cancel stops the job between steps. The returned status may still
// read "processing": the worker notices the cancellation when the
// current step's delay elapses.
func (is *ingestService) Cancel(ctx context.Context, sessionId, jobId string) (*dto.JobStatusResponse, error) {
	record, err := is.ownedRecord(sessionId, jobId)
	if err != nil {
		return nil, err
	}
	record.Cancel()
	return statusOf(record), nil
}

// ownedRecord hides other sessions' jobs behind a not-found.
func (is *ingestService) ownedRecord(sessionId, jobId string) (*memory.JobRecord, error) {
	record, found := is.jobRepo.Get(jobId)
	if !found {
		return nil, ErrJobNotFound
	}
	if record.Snapshot().SessionId != sessionId {
		return nil, ErrJobNotFound
	}
	return record, nil
}

func statusOf(record *memory.JobRecord) *dto.JobStatusResponse {
	job := record.Snapshot()
	return &dto.JobStatusResponse{
		ProjectId:   job.Id,
		ProjectName: job.ProjectName,
		Status:      job.Status,
		Step:        job.Step,
		Progress:    job.Progress,
		FileCount:   len(job.Documents),
		StartedAt:   job.StartedAt,
		FinishedAt:  job.FinishedAt,
	}
}

// Consume starts the background worker draining the ingest queue.
func (is *ingestService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, constant.TopicIngestQueue)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(msg)
		}
	}()

	return nil
}

func (is *ingestService) processMessage(msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	jobId, _ := event.Data["job_id"].(string)
	record, found := is.jobRepo.Get(jobId)
	if !found {
		log.Printf("[ERROR] Ingest job not found: %s", jobId)
		msg.Ack() // Job expired? Ack.
		return
	}

	is.runJob(record)
	msg.Ack()
}

func (is *ingestService) runJob(record *memory.JobRecord) {
	job := record.Snapshot()
	jobCtx := record.Context()

	log.Printf("[INFO] Processing ingest job %s (%d files)", job.Id, len(job.Documents))
	record.Update(func(j *entity.IngestJob) {
		j.Status = constant.JobStatusProcessing
	})

	for _, step := range ingest.Steps() {
		if jobCtx.Err() != nil {
			is.finishCancelled(record)
			return
		}

		record.Update(func(j *entity.IngestJob) {
			j.Step = step.Name
			j.Progress = step.Progress
		})

		is.activityService.Record(job.SessionId, constant.ActionProcessingStep, map[string]interface{}{
			"project_id": job.Id,
			"step":       step.Name,
			"progress":   step.Progress,
		}, constant.LogLevelInfo)
		is.publishEvent(events.NewIngestProgress(job.SessionId, job.Id, step.Name, step.Progress))

		// Simulate processing time, but wake immediately on cancel
		select {
		case <-jobCtx.Done():
			is.finishCancelled(record)
			return
		case <-time.After(is.stepDelay):
		}
	}

	is.contentRepo.AddSite(entity.Site{
		Id:          job.Id,
		Name:        job.ProjectName,
		Location:    constant.NewProjectLocation,
		Status:      constant.SiteStatusProcessingComplete,
		Documents:   job.DocumentNames(),
		LastUpdated: time.Now(),
		Progress:    constant.NewProjectProgress,
		Sections:    newProjectSections(),
	})

	now := time.Now()
	record.Update(func(j *entity.IngestJob) {
		j.Status = constant.JobStatusCompleted
		j.FinishedAt = &now
	})

	is.activityService.Record(job.SessionId, constant.ActionProjectCreated, map[string]interface{}{
		"project_id":      job.Id,
		"project_name":    job.ProjectName,
		"files_processed": len(job.Documents),
	}, constant.LogLevelInfo)
	is.publishEvent(events.NewIngestCompleted(job.SessionId, job.Id, job.ProjectName))

	log.Printf("[SUCCESS] Ingest job completed: %s (%q)", job.Id, job.ProjectName)
}

func (is *ingestService) finishCancelled(record *memory.JobRecord) {
	job := record.Snapshot()
	now := time.Now()
	record.Update(func(j *entity.IngestJob) {
		j.Status = constant.JobStatusCancelled
		j.FinishedAt = &now
	})

	is.activityService.Record(job.SessionId, constant.ActionIngestCancelled, map[string]interface{}{
		"project_id":   job.Id,
		"project_name": job.ProjectName,
	}, constant.LogLevelInfo)
	is.publishEvent(events.NewIngestCancelled(job.SessionId, job.Id))

	log.Printf("[INFO] Ingest job cancelled: %s", job.Id)
}

func (is *ingestService) publishEvent(event events.BaseEvent) {
	if err := is.publisherService.Publish(context.Background(), constant.TopicActivityEvents, event); err != nil {
		log.Printf("[ERROR] Failed to publish %s: %v", event.EventType(), err)
	}
}
