package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when a route wildcard does not hold a
// positive integer ID.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a route wildcard value (r.PathValue) as an int64 ID.
// IDs start at 1, so zero and negatives are rejected alongside
// non-numeric values.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
