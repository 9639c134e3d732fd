package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"staymarket/internal/notifier"
	"staymarket/pkg/config"
	"staymarket/pkg/kafka"
	kafka_config "staymarket/pkg/kafka/config"
	kafka_middleware "staymarket/pkg/kafka/middleware"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "staymarket-notifier"
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Notifier service")

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	service := notifier.NewService(cfg)

	topics := []string{
		kafkaCfg.TopicBookings,
		kafkaCfg.TopicTransportation,
		kafkaCfg.TopicReviews,
	}

	consumers := make([]*kafka.Consumer, 0, len(topics))
	for _, topic := range topics {
		consumer, err := kafka.NewConsumer(kafkaCfg, topic, ConsumerGroup, kafkaCfg.TopicDLQ, service.HandleEvent)
		if err != nil {
			cfg.Log.Fatal("Failed to create consumer", "topic", topic, "error", err)
		}
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumers = append(consumers, consumer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for i, consumer := range consumers {
		wg.Add(1)
		go func(topic string, c *kafka.Consumer) {
			defer wg.Done()
			cfg.Log.Info("Consumer started", "topic", topic, "group", ConsumerGroup)
			if err := c.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				cfg.Log.Error("Consumer stopped", "topic", topic, "error", err)
			}
		}(topics[i], consumer)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cfg.Log.Info("Shutting down Notifier service")
	cancel()
	wg.Wait()

	for i, consumer := range consumers {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close consumer", "topic", topics[i], "error", err)
		}
	}
	cfg.Log.Info("Notifier service stopped")
}
