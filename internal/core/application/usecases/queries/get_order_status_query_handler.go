package queries

import (
	"context"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatusResponse{}, err
	}

	var row struct {
		Status      int
		DeliveredAt *time.Time
	}
	result := h.db.WithContext(ctx).
		Raw(`SELECT status, delivered_at FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&row)
	if result.Error != nil {
		return OrderStatusResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderStatusResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	status := order.Status(row.Status)
	return OrderStatusResponse{
		ID:          query.OrderID(),
		Status:      status,
		Delivered:   status == order.Delivered,
		DeliveredAt: row.DeliveredAt,
	}, nil
}
