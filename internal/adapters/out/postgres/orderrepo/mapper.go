package orderrepo

import (
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/kernel"
	"github.com/qlimaxx/pizza-ordering-api/internal/core/domain/model/order"

	"github.com/google/uuid"
)

func headerFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		ContactInfoID: o.ContactInfoID().Bytes(),
		Status:        int(o.Status()),
		DeliveredAt:   o.DeliveredAt(),
		CreatedAt:     o.CreatedAt(),
	}
}

// linesFromDomain keeps aggregate order in Position; detail rows get fresh ids
// because details are values in the domain.
func linesFromDomain(orderID uuid.UUID, lines []*order.Line) ([]OrderLineDTO, []SizeDetailDTO) {
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	var detailDTOs []SizeDetailDTO
	for i, l := range lines {
		lineID := l.ID().Bytes()
		lineDTOs = append(lineDTOs, OrderLineDTO{
			ID:       lineID,
			OrderID:  orderID,
			PizzaID:  l.PizzaID().Bytes(),
			Position: i,
		})
		for j, d := range l.Details() {
			detailDTOs = append(detailDTOs, SizeDetailDTO{
				ID:          uuid.New(),
				OrderLineID: lineID,
				Size:        int(d.Size()),
				Count:       d.Count(),
				Position:    j,
			})
		}
	}
	return lineDTOs, detailDTOs
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	contactInfoID, err := kernel.UUIDFromBytes(dto.ContactInfoID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := lineToDomain(l)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var deliveredAt *time.Time
	if dto.DeliveredAt != nil {
		at := *dto.DeliveredAt
		deliveredAt = &at
	}

	return order.RestoreOrder(id, contactInfoID, order.Status(dto.Status), deliveredAt, dto.CreatedAt, lines)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pizzaID, err := kernel.UUIDFromBytes(dto.PizzaID[:])
	if err != nil {
		return nil, err
	}

	details := make([]order.SizeDetail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detail, err := order.NewSizeDetail(order.Size(d.Size), d.Count)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return order.NewLine(id, pizzaID, details)
}
