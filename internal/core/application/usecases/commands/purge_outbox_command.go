package commands

import (
	"errors"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/guard"
)

var ErrPurgeOutboxCommandIsNotConstructed = errors.New(
	"PurgeOutboxCommand must be created via NewPurgeOutboxCommand constructor",
)

// PurgeOutboxCommand deletes messages published longer than retention ago.
type PurgeOutboxCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeOutboxCommand(retention time.Duration) (PurgeOutboxCommand, error) {
	if retention <= 0 {
		return PurgeOutboxCommand{}, errs.NewValueIsInvalidError("retention")
	}
	return PurgeOutboxCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxCommandIsNotConstructed)
}

func (c PurgeOutboxCommand) Retention() time.Duration {
	return c.retention
}
