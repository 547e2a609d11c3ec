package candybar

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCalendarSystem is wrapped by UnsupportedCalendarSystemError.
	ErrUnsupportedCalendarSystem = errors.New("unsupported calendar system")

	// ErrMultipleNewMoons is returned when one week holds more than one
	// new moon, which a 29.5 day lunation makes impossible.
	ErrMultipleNewMoons = errors.New("more than one new moon in a week")

	// ErrNegativePadding is returned for a negative weeks before or after.
	ErrNegativePadding = errors.New("week padding must not be negative")

	// ErrCacheMiss is returned by a Cache that holds no entry for a key.
	ErrCacheMiss = errors.New("cache miss")
)

// UnsupportedCalendarSystemError names the calendar that could not be used.
type UnsupportedCalendarSystemError struct {
	Name string
	Year int
}

func (e *UnsupportedCalendarSystemError) Error() string {
	if e.Year != 0 {
		return fmt.Sprintf("%s %q (year %d)", ErrUnsupportedCalendarSystem, e.Name, e.Year)
	}
	return fmt.Sprintf("%s %q", ErrUnsupportedCalendarSystem, e.Name)
}

func (e *UnsupportedCalendarSystemError) Unwrap() error {
	return ErrUnsupportedCalendarSystem
}
