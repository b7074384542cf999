package parser

import "time"

// fixedClock pins the tests to 2024-06-15 12:00:00 UTC
type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}
