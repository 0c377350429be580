package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"mobile-order-be/internal/config"
	"mobile-order-be/internal/constant"
	"mobile-order-be/internal/controller"
	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/memory"
	"mobile-order-be/internal/repository/rediscache"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/internal/service"
	"mobile-order-be/pkg/embedding"
	"mobile-order-be/pkg/events"
	"mobile-order-be/pkg/llm/factory"
	pktNats "mobile-order-be/pkg/nats"
	"mobile-order-be/pkg/recommend/behavior"
	"mobile-order-be/pkg/recommend/decay"
	"mobile-order-be/pkg/recommend/experiment"
	"mobile-order-be/pkg/recommend/pipeline"
)

type Container struct {
	// Controllers
	MenuController           controller.IMenuController
	RecommendationController controller.IRecommendationController
	BehaviorController       controller.IBehaviorController
	SessionController        controller.ISessionController
	FeedbackController       controller.IFeedbackController
	OrderController          controller.IOrderController
	ExperimentController     controller.IExperimentController
	PresetController         controller.IPresetController
	ContextController        controller.IContextController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// Embedding provider, selected by config
	var embeddingProvider embedding.Provider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	case "jina":
		embeddingProvider = embedding.NewJinaProvider(cfg.Ai.JinaApiKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	default:
		log.Printf("[WARN] No embedding provider configured, retrieval runs in fallback mode")
	}

	// LLM provider for explanation phrasing, optional
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Recommend.SessionTTLMinutes) * time.Minute)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}
	if natsSub != nil {
		// Durable audit trail of everything on the bus.
		err := natsSub.Subscribe("events.>", "event-audit", func(ctx context.Context, evt events.Event) error {
			sysLogger.Info("events", "event received", map[string]interface{}{
				"subject": evt.EventType(),
				"payload": evt.Payload(),
			})
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to event stream: %v", err)
		}
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	var profileCache *rediscache.ProfileCache
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, profiles rebuilt per request: %v", err)
	} else {
		profileCache = rediscache.NewProfileCache(rdb, time.Duration(cfg.Recommend.ProfileCacheTTLSec)*time.Second)
	}

	// Scoring core
	analyzer := behavior.NewAnalyzer(decay.Config{
		HalfLifeDays: float64(cfg.Recommend.HalfLifeDays),
		Floor:        decay.Floor,
	})
	engine := pipeline.NewEngine(analyzer)

	registry := experiment.NewRegistry()
	for _, exp := range experiment.DefaultExperiments() {
		registry.Register(exp)
	}
	if _, ok := registry.Get(constant.RankingExperimentID); !ok {
		log.Fatalf("[FATAL] Ranking experiment %s is not registered", constant.RankingExperimentID)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Recommend.OrderTopicName, pubSub)
	behaviorService := service.NewBehaviorService(uowFactory, analyzer, profileCache, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Recommend.OrderTopicName,
		cfg.Recommend.EmbedTopicName,
		uowFactory,
		behaviorService,
		embeddingProvider,
		sysLogger,
	)

	menuService := service.NewMenuService(uowFactory)
	sessionService := service.NewSessionService(sessionRepo, uowFactory)
	experimentService := service.NewExperimentService(registry, natsPub, sysLogger)
	feedbackService := service.NewFeedbackService(uowFactory, behaviorService, natsPub, sysLogger)
	orderService := service.NewOrderService(uowFactory, publisherService, natsPub, sysLogger)
	contextService := service.NewContextService()
	explanationService := service.NewExplanationService(llmProvider, sysLogger)
	presetService := service.NewPresetService(uowFactory)

	recommendationService := service.NewRecommendationService(
		uowFactory,
		behaviorService,
		sessionService,
		experimentService,
		contextService,
		explanationService,
		feedbackService,
		embeddingProvider,
		engine,
		cfg.Recommend.DefaultTopK,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		MenuController:           controller.NewMenuController(menuService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		BehaviorController:       controller.NewBehaviorController(behaviorService),
		SessionController:        controller.NewSessionController(sessionService),
		FeedbackController:       controller.NewFeedbackController(feedbackService),
		OrderController:          controller.NewOrderController(orderService),
		ExperimentController:     controller.NewExperimentController(experimentService),
		PresetController:         controller.NewPresetController(presetService),
		ContextController:        controller.NewContextController(contextService),

		ConsumerService: consumerService,
	}
}
