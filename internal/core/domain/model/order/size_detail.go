package order

import (
	"errors"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

const (
	MinCount = 1
	// MaxCount matches the smallint column the count is stored in.
	MaxCount = 32767
)

// SizeDetail is a value object: how many pizzas of one size a line holds.
type SizeDetail struct {
	size  Size
	count int
}

func NewSizeDetail(size Size, count int) (SizeDetail, error) {
	var countErr error
	if count < MinCount || count > MaxCount {
		countErr = errs.NewValueIsOutOfRangeError("count", count, MinCount, MaxCount)
	}

	if err := errors.Join(size.Validate(), countErr); err != nil {
		return SizeDetail{}, err
	}

	return SizeDetail{size: size, count: count}, nil
}

func (d SizeDetail) Size() Size {
	return d.size
}

func (d SizeDetail) Count() int {
	return d.count
}
