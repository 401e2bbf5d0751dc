package types

import (
	"bytes"
	"fmt"
)

// ActiveFlag is the two-state activation flag of a Member.
//
// The admin dashboard compares the flag against 0 and 1, so on the wire
// it is encoded as an integer. Decoding also accepts true/false.
type ActiveFlag bool

func (f ActiveFlag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *ActiveFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "1", "true":
		*f = true
	case "0", "false", "null":
		*f = false
	default:
		return fmt.Errorf("isActive: unsupported value %s", data)
	}
	return nil
}

// Int returns the flag as 0 or 1.
func (f ActiveFlag) Int() int {
	if f {
		return 1
	}
	return 0
}
