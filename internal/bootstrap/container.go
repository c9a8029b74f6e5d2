package bootstrap

import (
	"log"
	"time"

	"video-notetaking-be/internal/config"
	"video-notetaking-be/internal/controller"
	"video-notetaking-be/internal/pkg/logger"
	"video-notetaking-be/internal/repository/unitofwork"
	"video-notetaking-be/internal/service"
	"video-notetaking-be/pkg/chatbot"
	pktNats "video-notetaking-be/pkg/nats"
	"video-notetaking-be/pkg/youtube"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	SessionController controller.ISessionController
	NoteController    controller.INoteController
	VideoController   controller.IVideoController
	ChatbotController controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. External Clients
	youtubeClient := youtube.NewClient(cfg.Keys.Youtube)
	transcriptScraper := youtube.NewScraper()
	geminiClient := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel)
	videoInfoCache := gocache.New(15*time.Minute, 30*time.Minute)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ActivityTopic,
		uowFactory,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, publisherService, natsPub)
	sessionService := service.NewSessionService(uowFactory, publisherService, natsPub)
	noteService := service.NewNoteService(uowFactory, publisherService, natsPub)
	videoService := service.NewVideoService(uowFactory, youtubeClient, publisherService, natsPub)
	chatbotService := service.NewChatbotService(geminiClient, transcriptScraper, videoInfoCache)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		SessionController: controller.NewSessionController(sessionService),
		NoteController:    controller.NewNoteController(noteService),
		VideoController:   controller.NewVideoController(videoService),
		ChatbotController: controller.NewChatbotController(chatbotService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
