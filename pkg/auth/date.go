package auth

import (
	"net/http"
	"time"
)

// Clock returns the current time. It is replaced in tests.
type Clock func() time.Time

// SystemClock is the default Clock.
func SystemClock() time.Time {
	return time.Now()
}

// FormatDate formats t in UTC per RFC 1123, e.g. "Tue, 01 Nov 2022 12:00:00 GMT".
func FormatDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// Now returns the current time from clock formatted for the x-ms-date header.
// A nil clock uses SystemClock.
func Now(clock Clock) string {
	if clock == nil {
		clock = SystemClock
	}
	return FormatDate(clock())
}
