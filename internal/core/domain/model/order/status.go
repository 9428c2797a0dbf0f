package order

import (
	"errors"
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// ErrStatusCannotBeUpdated is the cause reported when a status change does not move forward.
var ErrStatusCannotBeUpdated = errors.New("cannot update")

// Status is the position of an order in its delivery lifecycle. The numeric
// value is the weight used to decide whether a transition moves forward:
//
//	Processing(1) ──> Delivering(2) ──> Delivered(3)
//	      └─────────────────────────────────^
//
// Skipping ahead is allowed; staying or moving back is not.
type Status int

const (
	// Unknown is the zero value and also the result of parsing an unrecognised name.
	Unknown Status = iota
	Processing
	Delivering
	Delivered
)

var statusNames = map[Status]string{
	Processing: "Processing",
	Delivering: "Delivering",
	Delivered:  "Delivered",
}

// Statuses lists the valid statuses in weight order.
func Statuses() []Status {
	return []Status{Processing, Delivering, Delivered}
}

// ParseStatus maps a literal status name to its Status. Unrecognised names yield
// Unknown, which every transition rejects.
func ParseStatus(name string) Status {
	for s, n := range statusNames {
		if n == name {
			return s
		}
	}
	return Unknown
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// CanAdvanceTo reports whether target is a valid status with a strictly greater weight.
func (s Status) CanAdvanceTo(target Status) bool {
	return target.Validate() == nil && target > s
}

// AdvanceTo returns target when the move is forward, otherwise a field-keyed
// validation error on "status".
func (s Status) AdvanceTo(target Status) (Status, error) {
	if !s.CanAdvanceTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", ErrStatusCannotBeUpdated)
	}
	return target, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed := ParseStatus(string(text))
	if err := parsed.Validate(); err != nil {
		return err
	}
	*s = parsed
	return nil
}
