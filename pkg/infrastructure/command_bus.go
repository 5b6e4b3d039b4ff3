package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/cafeworks/go-workforce/pkg/application"
	"github.com/cafeworks/go-workforce/pkg/domain"
)

// CommandBus maps command names to their single handler. Handlers are stored
// untyped because each command declares its own payload and result types;
// RegisterCommandHandler and DispatchCommand restore the static typing at the
// edges.
type CommandBus struct {
	handlers map[string]any
	mu       sync.RWMutex
	logger   application.AppLogger
}

func NewCommandBus(logger application.AppLogger) *CommandBus {
	return &CommandBus{
		handlers: make(map[string]any),
		logger:   logger,
	}
}

// AssertRegistered reports the first missing registration among names.
func (bus *CommandBus) AssertRegistered(names ...string) error {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	for _, name := range names {
		if _, found := bus.handlers[name]; !found {
			return fmt.Errorf("command %q: %w", name, ErrNoHandler)
		}
	}
	return nil
}

func RegisterCommandHandler[C domain.Command[T], T any, R any](bus *CommandBus, commandName string, handler application.CommandHandler[C, T, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func DispatchCommand[C domain.Command[T], T any, R any](ctx context.Context, bus *CommandBus, command C) (R, error) {
	bus.mu.RLock()
	raw, found := bus.handlers[command.CommandName()]
	bus.mu.RUnlock()

	var zero R
	if !found {
		return zero, fmt.Errorf("command %q: %w", command.CommandName(), ErrNoHandler)
	}

	handler, ok := raw.(application.CommandHandler[C, T, R])
	if !ok {
		return zero, fmt.Errorf("command %q: %w", command.CommandName(), ErrHandlerMismatch)
	}

	bus.logger.Debug(ctx, "dispatching command", map[string]interface{}{
		"command_name": command.CommandName(),
	})
	return handler.Handle(ctx, command)
}
