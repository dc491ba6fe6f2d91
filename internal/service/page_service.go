// FILE: internal/service/page_service.go
package service

import (
	"context"
	"fmt"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/answer"
	"construction-deepwiki-be/pkg/wiki"
)

// Page copy. Lives here rather than in constant because nothing outside
// the page builders uses it.
const (
	overviewTitle   = "Construction Sites Overview"
	overviewCaption = "Select a construction project to explore its documentation and ask questions."
	uploadHelp      = "Upload up to 50 PDF files (max 200 pages each)"
)

// IPageService assembles the full payload for each of the four pages.
// Every build records a page_view entry first, so the activity log
// mirrors what the user actually saw.
type IPageService interface {
	Overview(ctx context.Context, sessionId string) (*dto.OverviewPageResponse, error)
	OverviewWithNotice(ctx context.Context, sessionId, notice string) (*dto.OverviewPageResponse, error)
	SiteDetail(ctx context.Context, sessionId string) (*dto.SiteDetailResponse, error)
	QuestionAnswer(ctx context.Context, sessionId string) (*dto.QuestionAnswerResponse, error)
	Dashboard(ctx context.Context, sessionId string) (*dto.DashboardResponse, error)
}

type pageService struct {
	sessionRepo     *memory.SessionRepository
	contentRepo     *memory.ContentRepository
	activityService IActivityService
	qaService       IQAService
	renderer        *wiki.Renderer
	siteMapper      *mapper.SiteMapper
	activityMapper  *mapper.ActivityMapper
}

func NewPageService(
	sessionRepo *memory.SessionRepository,
	contentRepo *memory.ContentRepository,
	activityService IActivityService,
	qaService IQAService,
	renderer *wiki.Renderer,
	siteMapper *mapper.SiteMapper,
	activityMapper *mapper.ActivityMapper,
) IPageService {
	return &pageService{
		sessionRepo:     sessionRepo,
		contentRepo:     contentRepo,
		activityService: activityService,
		qaService:       qaService,
		renderer:        renderer,
		siteMapper:      siteMapper,
		activityMapper:  activityMapper,
	}
}

func (ps *pageService) Overview(ctx context.Context, sessionId string) (*dto.OverviewPageResponse, error) {
	return ps.OverviewWithNotice(ctx, sessionId, "")
}

// OverviewWithNotice is the degraded-navigation variant: when a detail
// page cannot render (no project open, unknown site id) the client gets
// the overview back with a notice instead of an error.
func (ps *pageService) OverviewWithNotice(ctx context.Context, sessionId, notice string) (*dto.OverviewPageResponse, error) {
	if _, ok := ps.sessionRepo.Get(sessionId); !ok {
		return nil, ErrSessionNotFound
	}

	ps.activityService.Record(sessionId, constant.ActionPageView, map[string]interface{}{
		"page": constant.PageViewSitesOverview,
	}, constant.LogLevelInfo)

	return &dto.OverviewPageResponse{
		Page:    constant.PageOverview,
		Title:   overviewTitle,
		Caption: overviewCaption,
		Sites:   ps.siteMapper.SitesToCards(ps.contentRepo.ListSites()),
		UploadForm: dto.UploadFormDTO{
			AllowedExtension: constant.UploadAllowedExtension,
			MaxFiles:         constant.UploadMaxFiles,
			Help:             uploadHelp,
		},
		Notice: notice,
	}, nil
}

func (ps *pageService) SiteDetail(ctx context.Context, sessionId string) (*dto.SiteDetailResponse, error) {
	session, ok := ps.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.CurrentSiteId == "" {
		return nil, ErrNoSiteOpen
	}

	site, found := ps.contentRepo.GetSite(session.CurrentSiteId)
	if !found {
		return nil, ErrNoSiteOpen
	}
	sectionId := session.CurrentSectionId

	ps.activityService.Record(sessionId, constant.ActionPageView, map[string]interface{}{
		"page":    constant.PageViewSiteDetail,
		"site_id": site.Id,
		"section": sectionId,
	}, constant.LogLevelInfo)

	sectionTitle := answer.TitleizeSection(sectionId)
	if ref, ok := site.Section(sectionId); ok {
		sectionTitle = ref.Title
	}

	content := dto.SectionContentDTO{
		SectionId: sectionId,
		Title:     sectionTitle,
		Toc:       []wiki.TOCEntry{},
	}
	if markdown, ok := ps.contentRepo.SectionContent(site.Id, sectionId); ok {
		content.Markdown = markdown
		content.Html = ps.renderer.RenderHTML(markdown)
		content.Toc = wiki.ExtractTOC(markdown)
	} else {
		// Most sections have no written content yet
		content.Markdown = fmt.Sprintf(constant.SectionPlaceholderTemplate, answer.HumanizeSection(sectionId))
		content.Placeholder = true
	}

	return &dto.SiteDetailResponse{
		Page:           constant.PageSiteDetail,
		Site:           ps.siteMapper.SiteToHeader(site),
		Sections:       ps.siteMapper.SectionsToLinks(site, sectionId),
		Content:        content,
		QuestionPrompt: fmt.Sprintf("Ask about %s...", answer.HumanizeSection(sectionId)),
	}, nil
}

// QuestionAnswer renders the answer page. The first render after a
// submit triggers the mock pipeline and blocks for its processing
// delay; revisits replay the recorded exchange instantly.
func (ps *pageService) QuestionAnswer(ctx context.Context, sessionId string) (*dto.QuestionAnswerResponse, error) {
	session, ok := ps.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}

	ps.activityService.Record(sessionId, constant.ActionPageView, map[string]interface{}{
		"page":    constant.PageViewQuestionAnswer,
		"site_id": session.CurrentSiteId,
		"section": session.CurrentSectionId,
	}, constant.LogLevelInfo)

	exchange, answered, err := ps.qaService.EnsureAnswered(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	site, _ := ps.contentRepo.GetSite(session.CurrentSiteId)
	caption := fmt.Sprintf("Project: %s • Section: %s", site.Name, answer.TitleizeSection(session.CurrentSectionId))

	if !answered {
		return &dto.QuestionAnswerResponse{
			Page:    constant.PageQuestionAnswer,
			Caption: caption,
			Sources: []dto.CitationDTO{},
			Pending: true,
		}, nil
	}

	return &dto.QuestionAnswerResponse{
		Page:     constant.PageQuestionAnswer,
		QAId:     exchange.Id,
		Caption:  caption,
		Question: exchange.Question,
		Answer:   exchange.Answer,
		Sources:  ps.siteMapper.CitationsToDTOs(exchange.Citations),
		QueryDetails: dto.QueryDetailsDTO{
			ProcessingTime: exchange.Duration.Seconds(),
			SourcesFound:   len(exchange.Citations),
			SectionContext: answer.TitleizeSection(session.CurrentSectionId),
		},
	}, nil
}

// Dashboard builds the metrics and the default (unfiltered) view of the
// last 50 entries. The page_view entry is recorded before counting, so
// the dashboard always counts its own visit.
func (ps *pageService) Dashboard(ctx context.Context, sessionId string) (*dto.DashboardResponse, error) {
	if _, ok := ps.sessionRepo.Get(sessionId); !ok {
		return nil, ErrSessionNotFound
	}

	ps.activityService.Record(sessionId, constant.ActionPageView, map[string]interface{}{
		"page": constant.PageViewLoggingDashboard,
	}, constant.LogLevelInfo)

	entries := ps.activityService.Recent(sessionId, constant.LogFilterAll, constant.LogFilterAll, 50)

	return &dto.DashboardResponse{
		Page:    constant.PageLoggingDashboard,
		Metrics: ps.activityService.Metrics(sessionId),
		Entries: ps.activityMapper.LogsToDTOs(entries),
		Actions: ps.activityService.Actions(sessionId),
	}, nil
}
