package dateformatter

import "errors"

var (
	// ErrInvalidInputType is returned when the input is not a date, number or string
	ErrInvalidInputType = errors.New("invalid input: must be a date, number or string")

	// ErrInvalidDateValue is returned when the input does not describe a real point in time
	ErrInvalidDateValue = errors.New("invalid date or timestamp provided")
)
