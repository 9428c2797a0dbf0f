package outboxrepo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/outboxrepo"
	"github.com/qlimaxx/pizza-ordering-api/internal/adapters/out/postgres/pgtest"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEvent struct {
	ID      kernel.UUID `json:"event_id"`
	OrderID kernel.UUID `json:"order_id"`
	At      time.Time   `json:"occurred_at"`
}

func (e testEvent) EventID() kernel.UUID     { return e.ID }
func (e testEvent) EventName() string        { return "order.test" }
func (e testEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e testEvent) OccurredAt() time.Time    { return e.At }

func event(at time.Time) testEvent {
	return testEvent{ID: kernel.NewUUID(), OrderID: kernel.NewUUID(), At: at}
}

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *outboxrepo.GormOutboxRepository
}

func (s *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg
	s.repository = outboxrepo.NewGormOutboxRepository(pg.DB)
}

func (s *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())
}

func (s *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if s.pg != nil {
		s.Require().NoError(s.pg.Terminate(context.Background()))
	}
}

func (s *OutboxRepositoryIntegrationTestSuite) TestAddAndGetUnpublished_OldestFirst() {
	ctx := context.Background()
	late, early := event(base.Add(time.Minute)), event(base)

	s.Require().NoError(s.repository.Add(ctx, late, early))
	s.Require().NoError(s.repository.Add(ctx))

	msgs, err := s.repository.GetUnpublished(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(msgs, 2)
	s.True(msgs[0].ID.IsEqual(early.ID))
	s.Equal("order.test", msgs[0].Name)
	s.True(msgs[0].AggregateID.IsEqual(early.OrderID))
	s.Nil(msgs[0].PublishedAt)

	var decoded testEvent
	s.Require().NoError(json.Unmarshal(msgs[0].Payload, &decoded))
	s.True(decoded.ID.IsEqual(early.ID))

	limited, err := s.repository.GetUnpublished(ctx, 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_SkipsLockedRows() {
	ctx := context.Background()
	s.Require().NoError(s.repository.Add(ctx, event(base), event(base.Add(time.Second))))

	tx := s.pg.DB.Begin()
	defer tx.Rollback()
	held, err := outboxrepo.NewGormOutboxRepository(tx).GetUnpublished(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(held, 1)

	other, err := s.repository.GetUnpublished(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(other, 1)
	s.False(other[0].ID.IsEqual(held[0].ID))
}

func (s *OutboxRepositoryIntegrationTestSuite) TestMarkPublishedAndPurge() {
	ctx := context.Background()
	a, b := event(base), event(base.Add(time.Second))
	s.Require().NoError(s.repository.Add(ctx, a, b))

	s.Require().NoError(s.repository.MarkPublished(ctx, []kernel.UUID{a.ID}, base.Add(time.Hour)))
	s.Require().NoError(s.repository.MarkPublished(ctx, nil, base))

	pending, err := s.repository.GetUnpublished(ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.True(pending[0].ID.IsEqual(b.ID))

	purged, err := s.repository.DeletePublishedBefore(ctx, base.Add(30*time.Minute))
	s.Require().NoError(err)
	s.Zero(purged)

	purged, err = s.repository.DeletePublishedBefore(ctx, base.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(1), purged)

	pending, err = s.repository.GetUnpublished(ctx, 10)
	s.Require().NoError(err)
	s.Len(pending, 1)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
