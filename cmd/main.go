package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cafeworks/go-workforce/internal/workforce"
	"github.com/cafeworks/go-workforce/internal/workforce/infrastructure"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
	pkgInfra "github.com/cafeworks/go-workforce/pkg/infrastructure"
	zapAdapter "github.com/cafeworks/go-workforce/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	commandBus := pkgInfra.NewCommandBus(appLogger)
	queryBus := pkgInfra.NewQueryBus(appLogger)
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](appLogger)

	// DATABASE_DSN selects the Postgres backend; without it the service runs
	// on in-memory repositories.
	repos := workforce.NewInMemoryRepositories(appLogger)
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		db, err := infrastructure.OpenPostgres(dsn)
		if err != nil {
			appLogger.Error(ctx, "error opening database", map[string]interface{}{
				"error": err,
			})
			panic(err)
		}
		repos = workforce.Repositories{
			Cafes:       infrastructure.NewGormCafeRepository(db, appLogger),
			Employees:   infrastructure.NewGormEmployeeRepository(db, appLogger),
			Assignments: infrastructure.NewGormEmployeeCafeRepository(db, appLogger),
		}
	}

	slice := workforce.NewSlice(repos, commandBus, queryBus, eventBus, appLogger)
	if err := slice.AssertHandlers(); err != nil {
		appLogger.Error(ctx, "handler registration incomplete", map[string]interface{}{
			"error": err,
		})
		panic(err)
	}

	router := chi.NewRouter()
	slice.RegisterRoutes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "signal received", map[string]interface{}{"signal": sig})
		cancel()
	}()

	serverAddress := ":8080"
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "server starting on "+serverAddress, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "error starting server", map[string]interface{}{
				"error": err,
			})
		}
	}()

	<-ctx.Done()
	appLogger.Info(ctx, "shutting down server", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "error shutting down server", map[string]interface{}{
			"error": err,
		})
	}

	appLogger.Info(context.Background(), "server stopped", nil)
}
