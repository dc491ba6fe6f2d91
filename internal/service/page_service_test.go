package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
)

func TestOverviewListsSeededSites(t *testing.T) {
	f := newFixture()
	session := f.navigation.Begin()

	page, err := f.pages.Overview(context.Background(), session.Id)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if page.Page != constant.PageOverview {
		t.Errorf("page = %q, want %q", page.Page, constant.PageOverview)
	}
	if page.Title != "Construction Sites Overview" {
		t.Errorf("title = %q", page.Title)
	}
	if len(page.Sites) != 2 {
		t.Fatalf("sites = %d, want the 2 seeded projects", len(page.Sites))
	}

	// Cards come out in seed order with display-formatted dates.
	first := page.Sites[0]
	if first.Id != "harbor_bridge" || first.LastUpdated != "2025-01-20" {
		t.Errorf("first card = %s updated %s", first.Id, first.LastUpdated)
	}
	if first.Progress != 65 || first.DocumentCount != 4 {
		t.Errorf("first card progress/documents = %d/%d, want 65/4", first.Progress, first.DocumentCount)
	}
	second := page.Sites[1]
	if second.Id != "office_complex" || second.Status != constant.SiteStatusPlanning {
		t.Errorf("second card = %s status %s", second.Id, second.Status)
	}

	if page.UploadForm.AllowedExtension != constant.UploadAllowedExtension || page.UploadForm.MaxFiles != constant.UploadMaxFiles {
		t.Errorf("upload form = %+v", page.UploadForm)
	}
	if page.Notice != "" {
		t.Errorf("notice = %q, want empty", page.Notice)
	}

	// Each render records its own page_view.
	var viewed string
	for _, entry := range f.activityRepo.Buffer(session.Id).Snapshot() {
		if entry.Action == constant.ActionPageView {
			viewed = entry.Details["page"].(string)
		}
	}
	if viewed != constant.PageViewSitesOverview {
		t.Errorf("page_view page = %q, want %q", viewed, constant.PageViewSitesOverview)
	}
}

func TestOverviewWithNotice(t *testing.T) {
	f := newFixture()
	session := f.navigation.Begin()

	page, err := f.pages.OverviewWithNotice(context.Background(), session.Id, "Selected site not found.")
	if err != nil {
		t.Fatalf("OverviewWithNotice: %v", err)
	}
	if page.Notice != "Selected site not found." {
		t.Errorf("notice = %q", page.Notice)
	}
}

func TestSiteDetailRendersWrittenSection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sessionId := openSection(t, f, "harbor_bridge", "structural_plans")

	page, err := f.pages.SiteDetail(ctx, sessionId)
	if err != nil {
		t.Fatalf("SiteDetail: %v", err)
	}

	if page.Site.Id != "harbor_bridge" || page.Site.DocumentCount != 4 {
		t.Errorf("site header = %+v", page.Site)
	}
	if len(page.Sections) != 5 {
		t.Fatalf("sections = %d, want 5", len(page.Sections))
	}
	var current string
	for _, link := range page.Sections {
		if link.Current {
			current = link.Id
		}
	}
	if current != "structural_plans" {
		t.Errorf("current section = %q, want structural_plans", current)
	}

	content := page.Content
	if content.Placeholder {
		t.Error("written section rendered as placeholder")
	}
	if content.Title != "Structural Engineering" {
		t.Errorf("content title = %q, want the section ref title", content.Title)
	}
	if content.Markdown == "" || content.Html == "" {
		t.Error("written section missing markdown or rendered html")
	}
	if !strings.Contains(content.Html, "<h") {
		t.Errorf("rendered html has no headings")
	}
	if len(content.Toc) == 0 {
		t.Error("written section has no table of contents")
	}
	if page.QuestionPrompt != "Ask about structural plans..." {
		t.Errorf("question prompt = %q", page.QuestionPrompt)
	}
}

func TestSiteDetailPlaceholderSection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sessionId := openSection(t, f, "harbor_bridge", "safety_protocols")

	page, err := f.pages.SiteDetail(ctx, sessionId)
	if err != nil {
		t.Fatalf("SiteDetail: %v", err)
	}

	content := page.Content
	if !content.Placeholder {
		t.Fatal("unwritten section not marked as placeholder")
	}
	if !strings.Contains(content.Markdown, "safety protocols") {
		t.Errorf("placeholder text = %q, want the humanized section name in it", content.Markdown)
	}
	if content.Title != "Safety Management" {
		t.Errorf("content title = %q, want the section ref title", content.Title)
	}
	if len(content.Toc) != 0 {
		t.Errorf("placeholder toc = %d entries, want 0", len(content.Toc))
	}
}

func TestSiteDetailWithoutOpenSite(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	session := f.navigation.Begin()

	if _, err := f.pages.SiteDetail(ctx, session.Id); !errors.Is(err, ErrNoSiteOpen) {
		t.Errorf("err = %v, want ErrNoSiteOpen", err)
	}

	// An unknown site id degrades the same way.
	if _, err := f.navigation.GoToSite(ctx, session.Id, &dto.NavigateSiteRequest{SiteId: "ghost_site"}); err != nil {
		t.Fatalf("GoToSite: %v", err)
	}
	if _, err := f.pages.SiteDetail(ctx, session.Id); !errors.Is(err, ErrNoSiteOpen) {
		t.Errorf("unknown site err = %v, want ErrNoSiteOpen", err)
	}
}

func TestQuestionAnswerPendingState(t *testing.T) {
	f := newFixture()
	session := f.navigation.Begin()

	page, err := f.pages.QuestionAnswer(context.Background(), session.Id)
	if err != nil {
		t.Fatalf("QuestionAnswer: %v", err)
	}
	if !page.Pending {
		t.Error("pending = false with nothing submitted")
	}
	if page.QAId != "" || page.Answer != "" {
		t.Errorf("pending page carries answer data: %+v", page)
	}
	if page.Sources == nil || len(page.Sources) != 0 {
		t.Errorf("pending sources = %v, want empty list", page.Sources)
	}
}

func TestQuestionAnswerRendersExchange(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sessionId := openSection(t, f, "harbor_bridge", "structural_plans")

	res, err := f.qa.Submit(ctx, sessionId, &dto.AskQuestionRequest{Question: "What load can it bear?"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	page, err := f.pages.QuestionAnswer(ctx, sessionId)
	if err != nil {
		t.Fatalf("QuestionAnswer: %v", err)
	}

	if page.Pending {
		t.Fatal("page still pending after submit")
	}
	if page.QAId != res.QAId {
		t.Errorf("qa id = %q, want %q", page.QAId, res.QAId)
	}
	if page.Question != "What load can it bear?" {
		t.Errorf("question = %q", page.Question)
	}
	if page.Answer != constant.LoadCapacityAnswer {
		t.Error("load question did not render the load capacity answer")
	}
	if len(page.Sources) != 3 {
		t.Errorf("sources = %d, want 3", len(page.Sources))
	}
	if page.QueryDetails.SourcesFound != len(page.Sources) {
		t.Errorf("sources_found = %d, want %d", page.QueryDetails.SourcesFound, len(page.Sources))
	}
	if page.QueryDetails.SectionContext != "Structural Plans" {
		t.Errorf("section context = %q", page.QueryDetails.SectionContext)
	}
	if !strings.Contains(page.Caption, "Harbor Bridge Renovation") {
		t.Errorf("caption = %q, want the project name in it", page.Caption)
	}

	// Second render replays without a new pipeline run.
	again, err := f.pages.QuestionAnswer(ctx, sessionId)
	if err != nil {
		t.Fatalf("QuestionAnswer replay: %v", err)
	}
	if again.QAId != page.QAId {
		t.Errorf("replay qa id = %q, want %q", again.QAId, page.QAId)
	}
	if got := f.countAction(sessionId, constant.ActionRagQuery); got != 1 {
		t.Errorf("rag_query entries = %d, want 1", got)
	}
}

func TestDashboardCountsItsOwnVisit(t *testing.T) {
	f := newFixture()
	session := f.navigation.Begin()

	page, err := f.pages.Dashboard(context.Background(), session.Id)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	// session_started plus the dashboard's own page_view.
	if page.Metrics.Total < 2 {
		t.Errorf("metrics total = %d, want at least 2", page.Metrics.Total)
	}
	if len(page.Entries) != page.Metrics.Total {
		t.Errorf("entries = %d, metrics total = %d; under 50 they should match", len(page.Entries), page.Metrics.Total)
	}
	if page.Entries[0].Action != constant.ActionPageView {
		t.Errorf("newest entry = %q, want the dashboard's own page_view", page.Entries[0].Action)
	}

	hasStart := false
	for _, action := range page.Actions {
		if action == constant.ActionSessionStarted {
			hasStart = true
		}
	}
	if !hasStart {
		t.Errorf("actions = %v, want session_started present", page.Actions)
	}
}

func TestDashboardShowsLastFifty(t *testing.T) {
	f := newFixture()
	session := f.navigation.Begin()

	for i := 0; i < 60; i++ {
		f.activity.Record(session.Id, "navigation", map[string]interface{}{"n": i}, constant.LogLevelInfo)
	}

	page, err := f.pages.Dashboard(context.Background(), session.Id)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(page.Entries) != 50 {
		t.Errorf("entries = %d, want the last 50", len(page.Entries))
	}
	if page.Metrics.Total != 62 {
		t.Errorf("metrics total = %d, want all 62 buffered entries", page.Metrics.Total)
	}
}

func TestPagesRejectUnknownSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.pages.Overview(ctx, "session_ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Overview err = %v, want ErrSessionNotFound", err)
	}
	if _, err := f.pages.Dashboard(ctx, "session_ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Dashboard err = %v, want ErrSessionNotFound", err)
	}
}
