package dto

import "construction-deepwiki-be/pkg/wiki"

// Page payloads. Each GET /page endpoint returns one of these; the
// client renders them without further lookups.

type OverviewPageResponse struct {
	Page       string        `json:"page"`
	Title      string        `json:"title"`
	Caption    string        `json:"caption"`
	Sites      []SiteCardDTO `json:"sites"`
	UploadForm UploadFormDTO `json:"upload_form"`
	Notice     string        `json:"notice,omitempty"`
}

type SiteCardDTO struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	LastUpdated   string `json:"last_updated"`
	DocumentCount int    `json:"document_count"`
	Progress      int    `json:"progress"`
}

type UploadFormDTO struct {
	AllowedExtension string `json:"allowed_extension"`
	MaxFiles         int    `json:"max_files"`
	Help             string `json:"help"`
}

type SiteDetailResponse struct {
	Page           string            `json:"page"`
	Site           SiteHeaderDTO     `json:"site"`
	Sections       []SectionLinkDTO  `json:"sections"`
	Content        SectionContentDTO `json:"content"`
	QuestionPrompt string            `json:"question_prompt"`
}

type SiteHeaderDTO struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Progress      int    `json:"progress"`
	DocumentCount int    `json:"document_count"`
}

type SectionLinkDTO struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

type SectionContentDTO struct {
	SectionId   string          `json:"section_id"`
	Title       string          `json:"title"`
	Markdown    string          `json:"markdown"`
	Html        string          `json:"html,omitempty"`
	Placeholder bool            `json:"placeholder"`
	Toc         []wiki.TOCEntry `json:"toc"`
}

type QuestionAnswerResponse struct {
	Page         string          `json:"page"`
	QAId         string          `json:"qa_id"`
	Caption      string          `json:"caption"`
	Question     string          `json:"question"`
	Answer       string          `json:"answer"`
	Sources      []CitationDTO   `json:"sources"`
	QueryDetails QueryDetailsDTO `json:"query_details"`
	Pending      bool            `json:"pending"`
}

type CitationDTO struct {
	Document   string  `json:"document"`
	Page       int     `json:"page"`
	Excerpt    string  `json:"excerpt"`
	Confidence float64 `json:"confidence"`
	TableRef   *string `json:"table_ref,omitempty"`
	ImageRef   *string `json:"image_ref,omitempty"`
}

type QueryDetailsDTO struct {
	ProcessingTime float64 `json:"processing_time"`
	SourcesFound   int     `json:"sources_found"`
	SectionContext string  `json:"section_context"`
}

type DashboardResponse struct {
	Page    string           `json:"page"`
	Metrics LogMetricsDTO    `json:"metrics"`
	Entries []ActivityLogDTO `json:"entries"`
	Actions []string         `json:"actions"`
}

type LogMetricsDTO struct {
	Total   int `json:"total"`
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// ActivityLogDTO is both the dashboard entry shape and the JSON export
// record shape.
type ActivityLogDTO struct {
	Timestamp string                 `json:"timestamp"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details"`
	Level     string                 `json:"level"`
	SessionId string                 `json:"session_id"`
	UserAgent string                 `json:"user_agent"`
}
