package main

import (
	"context"
	"net/http"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/go-chi/chi/v5"

	"github.com/cafeworks/go-workforce/internal/workforce"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
	"github.com/cafeworks/go-workforce/pkg/infrastructure/redis/adapter"
	watermillLogAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/zaplogger/adapter"
)

// Runs the slice with domain events flowing through Redis streams.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	redisClient := adapter.NewRedisClient()
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, logger)
	if err != nil {
		appLogger.Error(ctx, "error creating publisher", map[string]interface{}{
			"error": err,
		})
		panic(err)
	}
	defer publisher.Close()

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        redisClient,
		ConsumerGroup: "workforce_group",
		Consumer:      "workforce_consumer",
	}, logger)
	if err != nil {
		appLogger.Error(ctx, "error creating subscriber", map[string]interface{}{
			"error": err,
		})
		panic(err)
	}
	defer subscriber.Close()

	commandBus := pkgInfra.NewCommandBus(appLogger)
	queryBus := pkgInfra.NewQueryBus(appLogger)
	eventBus := adapter.NewRedisEventBus[pkgDomain.Event[string], string](publisher, subscriber, appLogger)

	repos := workforce.NewInMemoryRepositories(appLogger)
	slice := workforce.NewSlice(repos, commandBus, queryBus, eventBus, appLogger)
	if err := slice.AssertHandlers(); err != nil {
		panic(err)
	}

	router := chi.NewRouter()
	slice.RegisterRoutes(router)

	serverAddress := ":8080"
	appLogger.Info(ctx, "starting HTTP server", map[string]interface{}{
		"address": serverAddress,
	})
	if err := http.ListenAndServe(serverAddress, router); err != nil {
		appLogger.Error(ctx, "failed to start HTTP server", map[string]interface{}{
			"error": err,
		})
	}
}
