package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
)

func pdfUpload(names ...string) []entity.UploadedDocument {
	docs := make([]entity.UploadedDocument, 0, len(names))
	for _, name := range names {
		docs = append(docs, entity.UploadedDocument{Name: name, Size: 2048})
	}
	return docs
}

// waitForStatus polls the job until it reaches the wanted status. The
// deadline is generous; tests run with millisecond step delays.
func waitForStatus(t *testing.T, svc IIngestService, sessionId, jobId, want string) *dto.JobStatusResponse {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		status, err := svc.JobStatus(context.Background(), sessionId, jobId)
		if err != nil {
			t.Fatalf("JobStatus: %v", err)
		}
		if status.Status == want {
			return status
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %q", jobId, want)
	return nil
}

func TestSubmitRejectsBadUploads(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(time.Millisecond)
	ctx := context.Background()

	tooMany := make([]entity.UploadedDocument, constant.UploadMaxFiles+1)
	for i := range tooMany {
		tooMany[i] = entity.UploadedDocument{Name: fmt.Sprintf("doc_%d.pdf", i), Size: 100}
	}

	cases := []struct {
		name  string
		files []entity.UploadedDocument
	}{
		{"no files", nil},
		{"too many files", tooMany},
		{"wrong extension", pdfUpload("plans.pdf", "notes.docx")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessionId := "session_" + strings.ReplaceAll(tc.name, " ", "_")
			_, err := ingest.Submit(ctx, sessionId, &dto.CreateProjectRequest{ProjectName: "Bad Upload"}, tc.files)
			if !errors.Is(err, ErrInvalidUpload) {
				t.Fatalf("err = %v, want ErrInvalidUpload", err)
			}

			if got := f.countAction(sessionId, constant.ActionUploadRejected); got != 1 {
				t.Errorf("upload_rejected entries = %d, want 1", got)
			}
			if got := f.countAction(sessionId, constant.ActionCreateProjectClicked); got != 0 {
				t.Errorf("rejected upload still recorded create_project_clicked")
			}

			// The rejection is a user mistake, not an error.
			for _, entry := range f.activityRepo.Buffer(sessionId).Snapshot() {
				if entry.Action == constant.ActionUploadRejected && entry.Level != constant.LogLevelWarning {
					t.Errorf("upload_rejected level = %q, want WARNING", entry.Level)
				}
			}
		})
	}
}

func TestSubmitAcceptsCaseInsensitiveExtension(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ingest.Consume(ctx); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	_, err := ingest.Submit(ctx, "session_case", &dto.CreateProjectRequest{ProjectName: "Mixed Case"},
		pdfUpload("REPORT.PDF"))
	if err != nil {
		t.Fatalf("Submit rejected .PDF upload: %v", err)
	}
}

func TestPipelineCompletesAndAppendsSite(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(2 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ingest.Consume(ctx); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	sessionId := "session_pipeline"
	res, err := ingest.Submit(ctx, sessionId, &dto.CreateProjectRequest{ProjectName: "Metro Station"},
		pdfUpload("plans.pdf", "specs.pdf"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(res.ProjectId, constant.ProjectIdPrefix) {
		t.Errorf("project id = %q, want %q prefix", res.ProjectId, constant.ProjectIdPrefix)
	}
	if res.Status != constant.JobStatusQueued {
		t.Errorf("initial status = %q, want %q", res.Status, constant.JobStatusQueued)
	}

	status := waitForStatus(t, ingest, sessionId, res.ProjectId, constant.JobStatusCompleted)
	if status.Progress != 1.0 {
		t.Errorf("final progress = %v, want 1.0", status.Progress)
	}
	if status.FinishedAt == nil {
		t.Error("finished at not set on completion")
	}
	if status.FileCount != 2 {
		t.Errorf("file count = %d, want 2", status.FileCount)
	}

	site, found := f.contentRepo.GetSite(res.ProjectId)
	if !found {
		t.Fatal("completed project not added to the content store")
	}
	if site.Name != "Metro Station" {
		t.Errorf("site name = %q", site.Name)
	}
	if site.Location != constant.NewProjectLocation {
		t.Errorf("location = %q, want %q", site.Location, constant.NewProjectLocation)
	}
	if site.Status != constant.SiteStatusProcessingComplete {
		t.Errorf("status = %q, want %q", site.Status, constant.SiteStatusProcessingComplete)
	}
	if site.Progress != constant.NewProjectProgress {
		t.Errorf("progress = %d, want %d", site.Progress, constant.NewProjectProgress)
	}
	if len(site.Sections) != 4 || site.Sections[0].Id != "overview" {
		t.Errorf("sections = %+v, want the 4-section skeleton", site.Sections)
	}
	if len(site.Documents) != 2 || site.Documents[0] != "plans.pdf" {
		t.Errorf("documents = %v, want the upload names in order", site.Documents)
	}

	if got := f.countAction(sessionId, constant.ActionProcessingStep); got != len(constant.ProcessingSteps) {
		t.Errorf("processing_step entries = %d, want %d", got, len(constant.ProcessingSteps))
	}
	if got := f.countAction(sessionId, constant.ActionProjectCreated); got != 1 {
		t.Errorf("project_created entries = %d, want 1", got)
	}
	if got := f.countAction(sessionId, constant.ActionFileUploadStarted); got != 1 {
		t.Errorf("file_upload_started entries = %d, want 1", got)
	}

	// Steps were walked in order.
	var steps []string
	for _, entry := range f.activityRepo.Buffer(sessionId).Snapshot() {
		if entry.Action == constant.ActionProcessingStep {
			steps = append(steps, entry.Details["step"].(string))
		}
	}
	for i, step := range steps {
		if step != constant.ProcessingSteps[i] {
			t.Errorf("step[%d] = %q, want %q", i, step, constant.ProcessingSteps[i])
		}
	}
}

func TestCancelStopsBetweenSteps(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(100 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ingest.Consume(ctx); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	sessionId := "session_cancel"
	res, err := ingest.Submit(ctx, sessionId, &dto.CreateProjectRequest{ProjectName: "Doomed"},
		pdfUpload("doc.pdf"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	waitForStatus(t, ingest, sessionId, res.ProjectId, constant.JobStatusProcessing)
	if _, err := ingest.Cancel(ctx, sessionId, res.ProjectId); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	status := waitForStatus(t, ingest, sessionId, res.ProjectId, constant.JobStatusCancelled)
	if status.FinishedAt == nil {
		t.Error("finished at not set on cancellation")
	}

	if _, found := f.contentRepo.GetSite(res.ProjectId); found {
		t.Error("cancelled project still added to the content store")
	}
	if got := f.countAction(sessionId, constant.ActionIngestCancelled); got != 1 {
		t.Errorf("ingest_cancelled entries = %d, want 1", got)
	}
	if got := f.countAction(sessionId, constant.ActionProjectCreated); got != 0 {
		t.Errorf("cancelled job still recorded project_created")
	}
}

func TestCancelAfterCompletion(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ingest.Consume(ctx); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	sessionId := "session_late_cancel"
	res, err := ingest.Submit(ctx, sessionId, &dto.CreateProjectRequest{ProjectName: "Done"},
		pdfUpload("doc.pdf"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	waitForStatus(t, ingest, sessionId, res.ProjectId, constant.JobStatusCompleted)

	status, err := ingest.Cancel(ctx, sessionId, res.ProjectId)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if status.Status != constant.JobStatusCompleted {
		t.Errorf("cancelling a finished job flipped its status to %q", status.Status)
	}
}

func TestJobsAreSessionScoped(t *testing.T) {
	f := newFixture()
	ingest := f.newIngest(50 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ingest.Consume(ctx); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	res, err := ingest.Submit(ctx, "session_owner", &dto.CreateProjectRequest{ProjectName: "Private"},
		pdfUpload("doc.pdf"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := ingest.JobStatus(ctx, "session_intruder", res.ProjectId); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("foreign JobStatus err = %v, want ErrJobNotFound", err)
	}
	if _, err := ingest.Cancel(ctx, "session_intruder", res.ProjectId); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("foreign Cancel err = %v, want ErrJobNotFound", err)
	}
	if _, err := ingest.JobStatus(ctx, "session_owner", "project_missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("unknown job err = %v, want ErrJobNotFound", err)
	}
}
