// FILE: internal/service/qa_service.go
package service

import (
	"context"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/answer"
)

// IQAService handles the ask-and-answer flow. Submitting only parks the
// question on the session; the answer is produced on the first render
// of the answer page and replayed from history after that, so each
// question is charged the processing delay exactly once.
type IQAService interface {
	Submit(ctx context.Context, sessionId string, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error)
	EnsureAnswered(ctx context.Context, sessionId string) (entity.QAExchange, bool, error)
	History(ctx context.Context, sessionId string) (*dto.QAHistoryResponse, error)
}

type qaService struct {
	sessionRepo     *memory.SessionRepository
	contentRepo     *memory.ContentRepository
	activityService IActivityService
	selector        *answer.Selector
	qaMapper        *mapper.QAMapper
	queryDelay      time.Duration
}

func NewQAService(
	sessionRepo *memory.SessionRepository,
	contentRepo *memory.ContentRepository,
	activityService IActivityService,
	selector *answer.Selector,
	qaMapper *mapper.QAMapper,
	queryDelay time.Duration,
) IQAService {
	return &qaService{
		sessionRepo:     sessionRepo,
		contentRepo:     contentRepo,
		activityService: activityService,
		selector:        selector,
		qaMapper:        qaMapper,
		queryDelay:      queryDelay,
	}
}

func (qs *qaService) Submit(ctx context.Context, sessionId string, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error) {
	session, ok := qs.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.CurrentSiteId == "" {
		return nil, ErrNoSiteOpen
	}

	qs.activityService.Record(sessionId, constant.ActionQuestionSubmitted, map[string]interface{}{
		"question": req.Question,
		"site_id":  session.CurrentSiteId,
		"section":  session.CurrentSectionId,
	}, constant.LogLevelInfo)

	qaId := newDisplayId(constant.QAIdPrefix)
	session.PendingQAId = qaId
	session.PendingQuestion = req.Question
	session.CurrentPage = constant.PageQuestionAnswer
	qs.sessionRepo.Save(session)

	return &dto.AskQuestionResponse{
		QAId: qaId,
		Page: constant.PageQuestionAnswer,
	}, nil
}

// EnsureAnswered resolves the pending question. The first call runs the
// mock pipeline, blocking for the configured delay like a real
// retrieval round trip would; later calls replay the recorded exchange.
// Returns false when no question has been submitted yet.
func (qs *qaService) EnsureAnswered(ctx context.Context, sessionId string) (entity.QAExchange, bool, error) {
	session, ok := qs.sessionRepo.Get(sessionId)
	if !ok {
		return entity.QAExchange{}, false, ErrSessionNotFound
	}
	if session.PendingQAId == "" {
		return entity.QAExchange{}, false, nil
	}

	siteId := session.CurrentSiteId
	sectionId := session.CurrentSectionId
	if exchange, found := session.PendingExchange(siteId, sectionId); found {
		return exchange, true, nil
	}

	query := session.PendingQuestion

	qs.activityService.Record(sessionId, constant.ActionRagQuery, map[string]interface{}{
		"site_id":      siteId,
		"section":      sectionId,
		"query":        query,
		"query_length": len(query),
	}, constant.LogLevelInfo)

	// Simulate processing time
	time.Sleep(qs.queryDelay)

	site, _ := qs.contentRepo.GetSite(siteId)
	result := qs.selector.Select(site.Name, sectionId, query, qs.contentRepo.CitationsForSection(sectionId))

	qs.activityService.Record(sessionId, constant.ActionRagResponseGenerated, map[string]interface{}{
		"response_length": len(result.Answer),
		"sources_count":   len(result.Sources),
		"processing_time": qs.queryDelay.Seconds(),
	}, constant.LogLevelInfo)

	exchange := entity.QAExchange{
		Id:        session.PendingQAId,
		Question:  query,
		Answer:    result.Answer,
		Citations: result.Sources,
		AskedAt:   time.Now(),
		Duration:  qs.queryDelay,
	}
	session.RecordExchange(siteId, sectionId, exchange)
	qs.sessionRepo.Save(session)

	return exchange, true, nil
}

// History returns the answered questions of the current reading
// context, oldest first.
func (qs *qaService) History(ctx context.Context, sessionId string) (*dto.QAHistoryResponse, error) {
	session, ok := qs.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.CurrentSiteId == "" {
		return nil, ErrNoSiteOpen
	}

	exchanges := session.Exchanges(session.CurrentSiteId, session.CurrentSectionId)
	return &dto.QAHistoryResponse{
		SiteId:    session.CurrentSiteId,
		SectionId: session.CurrentSectionId,
		Exchanges: qs.qaMapper.ExchangesToDTOs(exchanges),
	}, nil
}
