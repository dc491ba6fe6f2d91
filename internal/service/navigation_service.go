// FILE: internal/service/navigation_service.go
package service

import (
	"context"
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/pkg/store"
)

// INavigationService owns the per-session page state machine. Every
// transition is recorded before the state changes, so the log always
// shows where the user came FROM.
type INavigationService interface {
	Begin() *store.Session
	Resolve(sessionId string) (*store.Session, bool)
	State(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
	GoToSite(ctx context.Context, sessionId string, req *dto.NavigateSiteRequest) (*dto.NavigationStateResponse, error)
	GoToSection(ctx context.Context, sessionId string, req *dto.NavigateSectionRequest) (*dto.NavigationStateResponse, error)
	GoBack(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
	GoHome(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
	GoToDashboard(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
	GoToProject(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
	GoToQA(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error)
}

type navigationService struct {
	sessionRepo     *memory.SessionRepository
	activityService IActivityService
}

func NewNavigationService(
	sessionRepo *memory.SessionRepository,
	activityService IActivityService,
) INavigationService {
	return &navigationService{
		sessionRepo:     sessionRepo,
		activityService: activityService,
	}
}

// Begin creates a fresh session on the overview page. Also the
// SessionProvider hook used by the cookie middleware.
func (ns *navigationService) Begin() *store.Session {
	session := &store.Session{
		Id:          newDisplayId(constant.SessionIdPrefix),
		CurrentPage: constant.PageOverview,
		History:     make(map[string][]entity.QAExchange),
		CreatedAt:   time.Now(),
		UserAgent:   constant.UserAgentBrowser,
	}
	ns.sessionRepo.Save(session)

	ns.activityService.Record(session.Id, constant.ActionSessionStarted, map[string]interface{}{
		"session_id": session.Id,
	}, constant.LogLevelInfo)

	return session
}

func (ns *navigationService) Resolve(sessionId string) (*store.Session, bool) {
	return ns.sessionRepo.Get(sessionId)
}

func (ns *navigationService) State(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return stateOf(session), nil
}

// GoToSite opens a project and resets the reading context to its
// overview section. The target is not validated here: an unknown site
// id simply renders as a degraded detail page.
func (ns *navigationService) GoToSite(ctx context.Context, sessionId string, req *dto.NavigateSiteRequest) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}

	ns.activityService.Record(sessionId, constant.ActionNavigateToSite, map[string]interface{}{
		"site_id":       req.SiteId,
		"previous_page": session.CurrentPage,
	}, constant.LogLevelInfo)

	session.CurrentSiteId = req.SiteId
	session.CurrentSectionId = "overview"
	session.CurrentPage = constant.PageSiteDetail
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

// GoToSection switches the reading context within the open project.
func (ns *navigationService) GoToSection(ctx context.Context, sessionId string, req *dto.NavigateSectionRequest) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.CurrentSiteId == "" {
		return nil, ErrNoSiteOpen
	}

	ns.activityService.Record(sessionId, constant.ActionNavigateToSection, map[string]interface{}{
		"section":          req.SectionId,
		"site_id":          session.CurrentSiteId,
		"previous_section": session.CurrentSectionId,
	}, constant.LogLevelInfo)

	session.CurrentSectionId = req.SectionId
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

// GoBack walks one level up: Q&A returns to the project, the project
// and the dashboard return to the overview. Already at the overview it
// is a no-op and records nothing.
func (ns *navigationService) GoBack(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}

	from := session.CurrentPage
	switch from {
	case constant.PageQuestionAnswer:
		ns.recordBack(sessionId, from, constant.PageSiteDetail)
		session.CurrentPage = constant.PageSiteDetail

	case constant.PageSiteDetail:
		ns.recordBack(sessionId, from, constant.PageOverview)
		session.CurrentSiteId = ""
		session.CurrentPage = constant.PageOverview

	case constant.PageLoggingDashboard:
		ns.recordBack(sessionId, from, constant.PageOverview)
		session.CurrentPage = constant.PageOverview
	}
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

// GoHome jumps to the overview from anywhere and closes the open
// project.
func (ns *navigationService) GoHome(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}

	ns.recordNavigation(sessionId, constant.PageOverview)
	session.CurrentPage = constant.PageOverview
	session.CurrentSiteId = ""
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

func (ns *navigationService) GoToDashboard(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}

	ns.recordNavigation(sessionId, constant.PageLoggingDashboard)
	session.CurrentPage = constant.PageLoggingDashboard
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

// GoToProject jumps back to the open project's detail page without
// touching the reading context.
func (ns *navigationService) GoToProject(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.CurrentSiteId == "" {
		return nil, ErrNoSiteOpen
	}

	ns.recordNavigation(sessionId, constant.PageSiteDetail)
	session.CurrentPage = constant.PageSiteDetail
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

// GoToQA re-opens the answer page for the last submitted question.
func (ns *navigationService) GoToQA(ctx context.Context, sessionId string) (*dto.NavigationStateResponse, error) {
	session, ok := ns.sessionRepo.Get(sessionId)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.PendingQAId == "" {
		return nil, ErrNoPendingQuestion
	}

	ns.recordNavigation(sessionId, constant.PageQuestionAnswer)
	session.CurrentPage = constant.PageQuestionAnswer
	ns.sessionRepo.Save(session)

	return stateOf(session), nil
}

func (ns *navigationService) recordNavigation(sessionId, to string) {
	ns.activityService.Record(sessionId, constant.ActionNavigation, map[string]interface{}{
		"to": to,
	}, constant.LogLevelInfo)
}

func (ns *navigationService) recordBack(sessionId, from, to string) {
	ns.activityService.Record(sessionId, constant.ActionNavigationBack, map[string]interface{}{
		"from": from,
		"to":   to,
	}, constant.LogLevelInfo)
}

func stateOf(session *store.Session) *dto.NavigationStateResponse {
	return &dto.NavigationStateResponse{
		SessionId:        session.Id,
		CurrentPage:      session.CurrentPage,
		CurrentSiteId:    session.CurrentSiteId,
		CurrentSectionId: session.CurrentSectionId,
		PendingQAId:      session.PendingQAId,
	}
}
