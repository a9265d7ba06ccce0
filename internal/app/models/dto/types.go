package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an int that also accepts numeric JSON strings, so clients may
// send dayOfWeek as either 1 or "1".
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("expected an integer, got %q", string(data))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected an integer, got %q: %w", string(data), err)
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain int value
func (f FlexInt) Int() int {
	return int(f)
}
