package orderrepo

import (
	"context"
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is notified of every order written, so the unit of work
// can collect its domain events on commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header, then lines and details.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := headerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.insertLines(ctx, dto.ID, aggregate.Lines()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":       int(aggregate.Status()),
			"delivered_at": aggregate.DeliveredAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) ReplaceLines(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderID := aggregate.ID().Bytes()
	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", orderID).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	if err := r.insertLines(ctx, orderID, aggregate.Lines()); err != nil {
		return err
	}

	// the header carries the contact info and updated_at follows the revision
	err := db.Model(&OrderDTO{}).Where("id = ?", orderID).Updates(map[string]any{
		"status":          int(aggregate.Status()),
		"contact_info_id": aggregate.ContactInfoID().Bytes(),
	}).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the header row with SELECT ... FOR UPDATE. Callers must
// be inside a transaction for the lock to outlive the statement.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	query := db
	if lock {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	if err := query.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	err := db.
		Preload("Details", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Order("position").
		Find(&dto.Lines, "order_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) insertLines(ctx context.Context, orderID uuid.UUID, lines []*order.Line) error {
	lineDTOs, detailDTOs := linesFromDomain(orderID, lines)
	db := r.db.WithContext(ctx).Omit(clause.Associations)

	if len(lineDTOs) > 0 {
		if err := db.Create(&lineDTOs).Error; err != nil {
			return err
		}
	}
	if len(detailDTOs) > 0 {
		if err := db.Create(&detailDTOs).Error; err != nil {
			return err
		}
	}
	return nil
}
