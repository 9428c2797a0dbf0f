// Package usecases holds the handler contracts shared by commands and queries.
package usecases

import "context"

// CommandHandler changes state and reports only failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler reads state without changing it.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
