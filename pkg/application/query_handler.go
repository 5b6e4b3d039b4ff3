package application

import (
	"context"

	"github.com/cafeworks/go-workforce/pkg/domain"
)

// QueryHandler resolves one read projection without mutating state.
type QueryHandler[Q domain.Query[T], T any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
