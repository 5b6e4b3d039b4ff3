package application

import (
	"context"

	"github.com/cafeworks/go-workforce/pkg/domain"
)

// CommandHandler applies one validated mutation and returns its typed result.
// A command either fully succeeds or fails without partial effect.
type CommandHandler[C domain.Command[T], T any, R any] interface {
	Handle(ctx context.Context, command C) (R, error)
}
