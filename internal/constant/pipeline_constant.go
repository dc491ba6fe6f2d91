package constant

// ProcessingSteps is the fixed sequence the ingest worker walks through
// for every uploaded project. The steps are cosmetic: no document is
// ever parsed.
var ProcessingSteps = []string{
	"Validating PDF files...",
	"Extracting text and metadata...",
	"Processing images and tables...",
	"Generating embeddings...",
	"Creating project structure...",
	"Finalizing project setup...",
}

// Ingest job statuses.
const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Upload limits. Only the extension is ever checked; file contents are
// never opened.
const (
	UploadAllowedExtension = ".pdf"
	UploadMaxFiles         = 50
)

// Defaults applied to every uploaded project once processing finishes.
const (
	NewProjectLocation = "User Uploaded"
	NewProjectProgress = 100
)

// Watermill topics.
const (
	TopicIngestQueue    = "ingest.queue"
	TopicActivityEvents = "activity.events"
)

// Event types. INGEST_QUEUED travels on the work queue topic, the rest
// on the activity stream.
const (
	EventIngestQueued    = "INGEST_QUEUED"
	EventActivityLogged  = "ACTIVITY_LOGGED"
	EventIngestProgress  = "INGEST_PROGRESS"
	EventIngestCompleted = "INGEST_COMPLETED"
	EventIngestCancelled = "INGEST_CANCELLED"
)
