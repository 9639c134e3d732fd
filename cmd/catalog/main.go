package main

import (
	cataloghandler "staymarket/internal/catalog/handler"
	"staymarket/internal/catalog/cache"
	catalogrepo "staymarket/internal/catalog/repository"
	catalogservice "staymarket/internal/catalog/service"
	catalogvalidator "staymarket/internal/catalog/validator"
	"staymarket/internal/catalog/synthetic"
	hostshandler "staymarket/internal/hosts/handler"
	hostsrepo "staymarket/internal/hosts/repository"
	hostsservice "staymarket/internal/hosts/service"
	reviewshandler "staymarket/internal/reviews/handler"
	reviewsrepo "staymarket/internal/reviews/repository"
	reviewsservice "staymarket/internal/reviews/service"
	"staymarket/pkg/app"
	"staymarket/pkg/auth"
	"staymarket/pkg/config"
	"staymarket/pkg/contracts"
	"staymarket/pkg/kafka"
	kafka_config "staymarket/pkg/kafka/config"
	kafka_middleware "staymarket/pkg/kafka/middleware"
	"staymarket/pkg/storage"
)

const ServiceName = "catalog"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Catalog service")
	appHandler := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	if cfg.DevSessionUserID != "" {
		serverApp.SetAuthProvider(auth.NewStaticProvider(&auth.Session{UserID: cfg.DevSessionUserID}))
	}
	serverApp.SetApp(appHandler, cataloghandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) contracts.Handler {
	listingValidator := catalogvalidator.NewListingValidator(cfg.Log)
	listingRepo := catalogrepo.NewMongoListingRepository(cfg)
	catalogService := catalogservice.NewCatalogService(
		listingRepo,
		listingValidator,
		cache.New(cfg.CacheFreshnessWindow),
		synthetic.New(cfg.SyntheticSeed),
		cfg,
	)

	hostRepo := hostsrepo.NewMongoHostRepository(cfg)
	hostService := hostsservice.NewHostService(hostRepo, storage.NewMemoryStore("https://images.staymarket.dev"), cfg)

	reviewRepo := reviewsrepo.NewMongoReviewRepository(cfg)
	reviewService := reviewsservice.NewReviewService(reviewRepo, reviewPublisher(cfg), cfg)

	cfg.Log.Info("Catalog service initialized", "database", cfg.MongoDatabaseName)
	return contracts.Compose(
		cataloghandler.NewListingHandler(catalogService, cfg.Log),
		hostshandler.NewHostHandler(hostService, cfg.Log),
		reviewshandler.NewReviewHandler(reviewService, cfg.Log),
	)
}

// reviewPublisher builds the review-event producer. The service starts
// without one when the broker is unreachable; review events are best-effort.
func reviewPublisher(cfg *config.Config) reviewsservice.EventPublisher {
	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.TopicReviews, kafkaCfg.TopicDLQ)
	if err != nil {
		cfg.Log.Warn("Kafka producer unavailable, review events disabled", "error", err)
		return nil
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	return producer
}
