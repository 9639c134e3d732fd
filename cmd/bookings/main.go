package main

import (
	bookingshandler "staymarket/internal/bookings/handler"
	bookingsrepo "staymarket/internal/bookings/repository"
	bookingsservice "staymarket/internal/bookings/service"
	bookingsvalidator "staymarket/internal/bookings/validator"
	cataloghandler "staymarket/internal/catalog/handler"
	transporthandler "staymarket/internal/transportation/handler"
	transportrepo "staymarket/internal/transportation/repository"
	transportservice "staymarket/internal/transportation/service"
	"staymarket/pkg/app"
	"staymarket/pkg/auth"
	"staymarket/pkg/config"
	"staymarket/pkg/contracts"
	"staymarket/pkg/kafka"
	kafka_config "staymarket/pkg/kafka/config"
	kafka_middleware "staymarket/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")
	appHandler := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	if cfg.DevSessionUserID != "" {
		serverApp.SetAuthProvider(auth.NewStaticProvider(&auth.Session{UserID: cfg.DevSessionUserID}))
	}
	serverApp.SetApp(appHandler, cataloghandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) contracts.Handler {
	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	bookingValidator := bookingsvalidator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingsrepo.NewMongoBookingRepository(cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		bookingValidator,
		newPublisher(cfg, kafkaCfg, kafkaCfg.TopicBookings),
		cfg,
	)

	transportRepo := transportrepo.NewMongoTransportationRepository(cfg)
	transportService := transportservice.NewTransportationService(
		transportRepo,
		newPublisher(cfg, kafkaCfg, kafkaCfg.TopicTransportation),
		cfg,
	)

	cfg.Log.Info("Booking services initialized", "database", cfg.MongoDatabaseName)
	return contracts.Compose(
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		transporthandler.NewTransportationHandler(transportService, cfg.Log),
	)
}

// newPublisher builds a producer for the topic. Event publishing is
// best-effort: on a broker failure the service still starts, without events.
func newPublisher(cfg *config.Config, kafkaCfg *kafka_config.Config, topic string) bookingsservice.EventPublisher {
	producer, err := kafka.NewProducer(kafkaCfg, topic, kafkaCfg.TopicDLQ)
	if err != nil {
		cfg.Log.Warn("Kafka producer unavailable, events disabled", "topic", topic, "error", err)
		return nil
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	return producer
}
