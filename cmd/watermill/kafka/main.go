package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/go-chi/chi/v5"

	"github.com/cafeworks/go-workforce/internal/workforce"
	"github.com/cafeworks/go-workforce/internal/workforce/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
	"github.com/cafeworks/go-workforce/pkg/infrastructure/kafka/adapter"
	watermillLogAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/zaplogger/adapter"
)

// Runs the slice with domain events flowing through Kafka topics, one topic
// per event name.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	brokers := []string{"localhost:9092"}
	if env := os.Getenv("KAFKA_BROKERS"); env != "" {
		brokers = strings.Split(env, ",")
	}

	marshaler := kafka.DefaultMarshaler{}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: marshaler,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create Kafka publisher: %v", err)
	}
	defer publisher.Close()

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.ClientID = "workforce"

	subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:               brokers,
		Unmarshaler:           marshaler,
		ConsumerGroup:         "workforce_consumer_group",
		OverwriteSaramaConfig: saramaConfig,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to create Kafka subscriber: %v", err)
	}
	defer subscriber.Close()

	for _, eventName := range application.EventNames() {
		if err := subscriber.SubscribeInitialize(eventName); err != nil {
			log.Fatalf("failed to initialize Kafka topic %q: %v", eventName, err)
		}
	}

	commandBus := pkgInfra.NewCommandBus(appLogger)
	queryBus := pkgInfra.NewQueryBus(appLogger)
	eventBus := adapter.NewKafkaEventBus[pkgDomain.Event[string], string](publisher, subscriber, appLogger)

	repos := workforce.NewInMemoryRepositories(appLogger)
	slice := workforce.NewSlice(repos, commandBus, queryBus, eventBus, appLogger)
	if err := slice.AssertHandlers(); err != nil {
		panic(err)
	}

	router := chi.NewRouter()
	slice.RegisterRoutes(router)

	serverAddress := ":8080"
	appLogger.Info(context.Background(), "starting HTTP server", map[string]interface{}{
		"address": serverAddress,
	})
	if err := http.ListenAndServe(serverAddress, router); err != nil {
		appLogger.Error(context.Background(), "failed to start HTTP server", map[string]interface{}{
			"error": err,
		})
	}
}
