package order

import (
	"fmt"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
)

// Size of a pizza within an order line.
type Size int

const (
	UnknownSize Size = iota
	Small
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "Small",
	Medium: "Medium",
	Large:  "Large",
}

// ParseSize accepts exactly one of "Small", "Medium" or "Large".
func ParseSize(name string) (Size, error) {
	for s, n := range sizeNames {
		if n == name {
			return s, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid choice", name))
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Size) Validate() error {
	if _, ok := sizeNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", int(s)))
	}
	return nil
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
