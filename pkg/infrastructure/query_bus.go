package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/cafeworks/go-workforce/pkg/application"
	"github.com/cafeworks/go-workforce/pkg/domain"
)

// QueryBus maps query names to their single handler, mirroring CommandBus.
type QueryBus struct {
	handlers map[string]any
	mu       sync.RWMutex
	logger   application.AppLogger
}

func NewQueryBus(logger application.AppLogger) *QueryBus {
	return &QueryBus{
		handlers: make(map[string]any),
		logger:   logger,
	}
}

// AssertRegistered reports the first missing registration among names.
func (bus *QueryBus) AssertRegistered(names ...string) error {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	for _, name := range names {
		if _, found := bus.handlers[name]; !found {
			return fmt.Errorf("query %q: %w", name, ErrNoHandler)
		}
	}
	return nil
}

func RegisterQueryHandler[Q domain.Query[T], T any, R any](bus *QueryBus, queryName string, handler application.QueryHandler[Q, T, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[queryName] = handler
}

func DispatchQuery[Q domain.Query[T], T any, R any](ctx context.Context, bus *QueryBus, query Q) (R, error) {
	bus.mu.RLock()
	raw, found := bus.handlers[query.QueryName()]
	bus.mu.RUnlock()

	var zero R
	if !found {
		return zero, fmt.Errorf("query %q: %w", query.QueryName(), ErrNoHandler)
	}

	handler, ok := raw.(application.QueryHandler[Q, T, R])
	if !ok {
		return zero, fmt.Errorf("query %q: %w", query.QueryName(), ErrHandlerMismatch)
	}

	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	bus.logger.Debug(ctx, "dispatching query", map[string]interface{}{
		"query_name": query.QueryName(),
	})
	return handler.Handle(ctx, query)
}
