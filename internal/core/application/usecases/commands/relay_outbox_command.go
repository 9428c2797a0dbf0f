package commands

import (
	"errors"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

const MaxRelayBatch = 1000

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to batch unpublished outbox messages.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batch int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batch int) (RelayOutboxCommand, error) {
	if batch < 1 || batch > MaxRelayBatch {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"batch", batch, 1, MaxRelayBatch, fmt.Errorf("relay batch %d", batch))
	}
	return RelayOutboxCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) Batch() int {
	return c.batch
}
