package bootstrap

import (
	"log"

	"studybuddy-be/internal/config"
	"studybuddy-be/internal/controller"
	"studybuddy-be/internal/pkg/logger"
	"studybuddy-be/internal/repository/memory"
	"studybuddy-be/internal/repository/unitofwork"
	"studybuddy-be/internal/service"
	"studybuddy-be/pkg/ingest"
	"studybuddy-be/pkg/llm/factory"
	"studybuddy-be/pkg/storage/supabase"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	StudyController controller.IStudyController
	QnaController   controller.IQnaController

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

	// 3. Providers
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	objectStorage := supabase.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Keys.SupabaseServiceKey)
	fetcher := ingest.NewFetcher(objectStorage, cfg.Storage.SignedURLExpirySeconds)

	// Volatile first-check session store
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.SessionEventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.SessionEventTopic, sysLogger)

	studyService := service.NewStudyService(
		uowFactory,
		sessionRepo,
		fetcher,
		llmProvider,
		publisherService,
		sysLogger,
		cfg.Storage.Bucket,
	)
	qnaService := service.NewQnaService(llmProvider)

	// 5. Controllers
	return &Container{
		StudyController: controller.NewStudyController(studyService),
		QnaController:   controller.NewQnaController(qnaService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
