package constant

// Pages the navigation state machine can route to.
const (
	PageOverview         = "overview"
	PageSiteDetail       = "site_detail"
	PageQuestionAnswer   = "question_answer"
	PageLoggingDashboard = "logging_dashboard"
)

// Site lifecycle statuses.
const (
	SiteStatusPlanning           = "Planning"
	SiteStatusInProgress         = "In Progress"
	SiteStatusActive             = "Active"
	SiteStatusProcessingComplete = "Processing Complete"
)

// Log severity levels. ERROR exists in the taxonomy but none of the
// mock flows emit it.
const (
	LogLevelInfo    = "INFO"
	LogLevelWarning = "WARNING"
	LogLevelError   = "ERROR"
)

// LogFilterAll disables level/action filtering on the dashboard.
const LogFilterAll = "ALL"

// Action names recorded by the activity logger. Kept flat and stable:
// the dashboard filter dropdown and the export format are built on them.
const (
	ActionSessionStarted       = "session_started"
	ActionNavigation           = "navigation"
	ActionNavigationBack       = "navigation_back"
	ActionNavigateToSite       = "navigate_to_site"
	ActionNavigateToSection    = "navigate_to_section"
	ActionPageView             = "page_view"
	ActionQuestionSubmitted    = "question_submitted"
	ActionRagQuery             = "rag_query"
	ActionRagResponseGenerated = "rag_response_generated"
	ActionCreateProjectClicked = "create_project_clicked"
	ActionFileUploadStarted    = "file_upload_started"
	ActionProcessingStep       = "processing_step"
	ActionProjectCreated       = "project_created"
	ActionExportLogs           = "export_logs"
	ActionUploadRejected       = "upload_rejected"
	ActionIngestCancelled      = "ingest_cancelled"
)

// UserAgentBrowser tags every log entry. In production this would come
// from the request headers.
const UserAgentBrowser = "wiki_browser"

// Id prefixes for display ids (prefix + first 8 hex chars of a UUID).
const (
	SessionIdPrefix = "session_"
	QAIdPrefix      = "qa_"
	ProjectIdPrefix = "project_"
)

// Page names as they appear in page_view log details.
const (
	PageViewSitesOverview    = "sites_overview"
	PageViewSiteDetail       = "site_detail"
	PageViewQuestionAnswer   = "question_answer"
	PageViewLoggingDashboard = "logging_dashboard"
)

// LastUpdatedLayout is the date format used on site cards.
const LastUpdatedLayout = "2006-01-02"

// ExportFilenameLayout stamps the dashboard JSON export download.
// Produces e.g. construction_app_logs_20250120_153045.json.
const ExportFilenameLayout = "20060102_150405"

// ExportFilenamePrefix for the dashboard JSON export download.
const ExportFilenamePrefix = "construction_app_logs_"
