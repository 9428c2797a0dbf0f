package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// orderFilter is an exact-match conjunction; nil fields do not filter.
type orderFilter struct {
	orderID    *kernel.UUID
	status     *order.Status
	customerID *kernel.UUID
}

// betweenReads runs after the headers are read and before their lines are.
// Tests replace it to commit writes in that window.
var betweenReads = func(context.Context) {}

// readOrders loads order headers matching f, newest first, then their lines
// in one extra round trip. Both reads share one REPEATABLE READ snapshot so a
// concurrent replace or delete cannot mix old headers with new lines.
func readOrders(ctx context.Context, db *gorm.DB, f orderFilter) ([]OrderResponse, error) {
	var orders []OrderResponse
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			index map[uuid.UUID]int
			err   error
		)
		if orders, index, err = readHeaders(tx, f); err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}

		betweenReads(ctx)
		return readLines(tx, orders, index)
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func readHeaders(tx *gorm.DB, f orderFilter) ([]OrderResponse, map[uuid.UUID]int, error) {
	q := tx.
		Table("orders AS o").
		Select(`o.id, o.status, o.delivered_at, o.created_at,
			c.id, c.name, ci.address, ci.phone`).
		Joins("JOIN contact_infos AS ci ON ci.id = o.contact_info_id").
		Joins("JOIN customers AS c ON c.id = ci.customer_id")

	if f.orderID != nil {
		q = q.Where("o.id = ?", f.orderID.Bytes())
	}
	if f.status != nil {
		q = q.Where("o.status = ?", int(*f.status))
	}
	if f.customerID != nil {
		q = q.Where("c.id = ?", f.customerID.Bytes())
	}

	rows, err := q.Order("o.created_at DESC, o.id").Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id, customerID uuid.UUID
			status         int
			deliveredAt    *time.Time
			createdAt      time.Time
			name, address  string
			phone          string
		)
		if err = rows.Scan(&id, &status, &deliveredAt, &createdAt, &customerID, &name, &address, &phone); err != nil {
			return nil, nil, err
		}

		resp := OrderResponse{
			Status:      order.Status(status),
			Delivered:   order.Status(status) == order.Delivered,
			DeliveredAt: deliveredAt,
			CreatedAt:   createdAt,
			Pizzas:      make([]OrderPizzaResponse, 0),
			Customer: CustomerResponse{
				Name:    name,
				Address: address,
			},
		}
		if phone != "" {
			resp.Customer.Phone = &phone
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if resp.Customer.ID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, nil, err
		}

		index[id] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return orders, index, nil
}

func readLines(tx *gorm.DB, orders []OrderResponse, index map[uuid.UUID]int) error {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id.String())
	}

	rows, err := tx.Raw(`
		SELECT
			l.order_id,
			l.pizza_id,
			p.name,
			d.size,
			d.count
		FROM order_lines AS l
		JOIN pizzas AS p ON p.id = l.pizza_id
		JOIN order_line_details AS d ON d.order_line_id = l.id
		WHERE l.order_id = ANY(?::uuid[])
		ORDER BY l.order_id, l.position, d.position
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, pizzaID uuid.UUID
			pizzaName        string
			size, count      int
		)
		if err = rows.Scan(&orderID, &pizzaID, &pizzaName, &size, &count); err != nil {
			return err
		}

		o := &orders[index[orderID]]
		n := len(o.Pizzas)
		if n == 0 || o.Pizzas[n-1].ID.Bytes() != pizzaID {
			id, idErr := kernel.UUIDFromBytes(pizzaID[:])
			if idErr != nil {
				return idErr
			}
			o.Pizzas = append(o.Pizzas, OrderPizzaResponse{ID: id, Name: pizzaName})
			n++
		}
		o.Pizzas[n-1].Details = append(o.Pizzas[n-1].Details, SizeDetailResponse{
			Size:  order.Size(size),
			Count: count,
		})
	}

	return rows.Err()
}
