// Package biztime centralizes time handling so persistence and tokens always
// operate in UTC regardless of server locale.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowUTCMilli returns the current UTC time in Unix milliseconds.
func NowUTCMilli() int64 {
	return NowUTC().UnixMilli()
}

// FromMilli converts Unix milliseconds to a UTC time.
func FromMilli(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}
