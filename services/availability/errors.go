package availability

import "errors"

var (
	// ErrBusinessNotFound is surfaced to the caller when the queried business
	// does not exist.
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidDate is returned for a missing or malformed query date.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
