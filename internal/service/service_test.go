package service

import (
	"fmt"
	"time"

	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/answer"
	"construction-deepwiki-be/pkg/wiki"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// nopLogger satisfies logger.ILogger without touching the filesystem.
// The durable sink has its own tests; service tests only care about the
// session buffers.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return []logger.LogEntry{}, nil
}

func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) {
	return nil, fmt.Errorf("log not found")
}

// fixture wires the in-memory stack the way bootstrap does, with
// millisecond delays so tests stay fast.
type fixture struct {
	pubSub       *gochannel.GoChannel
	contentRepo  *memory.ContentRepository
	sessionRepo  *memory.SessionRepository
	activityRepo *memory.ActivityRepository
	jobRepo      *memory.JobRepository

	publisher  IPublisherService
	activity   IActivityService
	navigation INavigationService
	qa         IQAService
	pages      IPageService
}

func newFixture() *fixture {
	return newFixtureWithDelay(2 * time.Millisecond)
}

func newFixtureWithDelay(queryDelay time.Duration) *fixture {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	contentRepo := memory.NewContentRepository()
	sessionRepo := memory.NewSessionRepository(time.Hour)
	activityRepo := memory.NewActivityRepository(time.Hour)
	jobRepo := memory.NewJobRepository(time.Hour)

	publisher := NewPublisherService(pubSub)
	activity := NewActivityService(activityRepo, publisher, mapper.NewActivityMapper(), nopLogger{})
	navigation := NewNavigationService(sessionRepo, activity)
	qa := NewQAService(sessionRepo, contentRepo, activity, answer.NewSelector(), mapper.NewQAMapper(), queryDelay)
	pages := NewPageService(sessionRepo, contentRepo, activity, qa, wiki.NewRenderer(), mapper.NewSiteMapper(), mapper.NewActivityMapper())

	return &fixture{
		pubSub:       pubSub,
		contentRepo:  contentRepo,
		sessionRepo:  sessionRepo,
		activityRepo: activityRepo,
		jobRepo:      jobRepo,
		publisher:    publisher,
		activity:     activity,
		navigation:   navigation,
		qa:           qa,
		pages:        pages,
	}
}

// newIngest builds an ingest service over the fixture's repos with the
// given step delay.
func (f *fixture) newIngest(stepDelay time.Duration) IIngestService {
	return NewIngestService(f.pubSub, f.jobRepo, f.contentRepo, f.activity, f.publisher, stepDelay)
}

// countAction counts buffered entries with the given action name.
func (f *fixture) countAction(sessionId, action string) int {
	count := 0
	for _, entry := range f.activityRepo.Buffer(sessionId).Snapshot() {
		if entry.Action == action {
			count++
		}
	}
	return count
}
