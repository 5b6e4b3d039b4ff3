package application

import (
	"context"

	"github.com/cafeworks/go-workforce/pkg/domain"
)

type EventHandler[E domain.Event[T], T any] interface {
	Handle(ctx context.Context, event E) error
}

// EventBus fans an event out to every handler registered for its name.
// Publishing an event nobody listens to is a silent success.
type EventBus[E domain.Event[T], T any] interface {
	RegisterHandler(eventName string, handler EventHandler[E, T])
	Publish(ctx context.Context, event E) error
}
