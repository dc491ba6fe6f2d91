package bootstrap

import (
	"construction-deepwiki-be/internal/config"
	"construction-deepwiki-be/internal/controller"
	"construction-deepwiki-be/internal/handler"
	"construction-deepwiki-be/internal/mapper"
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/internal/service"
	"construction-deepwiki-be/internal/websocket"
	"construction-deepwiki-be/pkg/answer"
	"construction-deepwiki-be/pkg/wiki"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	PageController       controller.IPageController
	NavigationController controller.INavigationController
	QAController         controller.IQAController
	ProjectController    controller.IProjectController
	ActivityController   controller.IActivityController

	// Session lifecycle, shared with the cookie middleware
	Sessions serverutils.SessionProvider

	// Background Services (Exposed for main.go to run)
	IngestService service.IIngestService
	StreamService *service.StreamService

	// WebSockets & Live Stream
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. In-Memory Stores
	// Activity buffers and ingest jobs expire on the session schedule.
	contentRepo := memory.NewContentRepository()
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL)
	activityRepo := memory.NewActivityRepository(cfg.Session.TTL)
	jobRepo := memory.NewJobRepository(cfg.Session.TTL)

	// 4. Mappers
	siteMapper := mapper.NewSiteMapper()
	activityMapper := mapper.NewActivityMapper()
	qaMapper := mapper.NewQAMapper()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub)
	activityService := service.NewActivityService(activityRepo, publisherService, activityMapper, sysLogger)
	navigationService := service.NewNavigationService(sessionRepo, activityService)
	qaService := service.NewQAService(
		sessionRepo,
		contentRepo,
		activityService,
		answer.NewSelector(),
		qaMapper,
		cfg.Mock.QueryDelay,
	)
	pageService := service.NewPageService(
		sessionRepo,
		contentRepo,
		activityService,
		qaService,
		wiki.NewRenderer(),
		siteMapper,
		activityMapper,
	)
	ingestService := service.NewIngestService(
		pubSub,
		jobRepo,
		contentRepo,
		activityService,
		publisherService,
		cfg.Mock.IngestStepDelay,
	)

	// 6. WebSocket Hub & Stream
	// The hub gets its own file so socket churn stays out of the
	// activity sink the dashboard reads back.
	wsLogger := logger.NewIsolatedLogger(cfg.App.StreamLogFilePath)
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	streamService := service.NewStreamService(pubSub, wsHub, wsLogger)
	streamHandler := handler.NewStreamHandler(navigationService, wsHub, cfg.Session.Secret, wsLogger)

	// 7. Controllers
	return &Container{
		PageController:       controller.NewPageController(pageService),
		NavigationController: controller.NewNavigationController(navigationService),
		QAController:         controller.NewQAController(qaService),
		ProjectController:    controller.NewProjectController(ingestService),
		ActivityController:   controller.NewActivityController(activityService),

		Sessions: navigationService,

		IngestService: ingestService,
		StreamService: streamService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
