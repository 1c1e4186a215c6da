// Package biztime centralizes wall-clock access. All stored timestamps are UTC.
package biztime

import "time"

// nowFunc is swapped by tests that need a fixed clock.
var nowFunc = time.Now

// NowUTC returns the current time in UTC, truncated to microseconds so the
// value survives a round trip through every supported store.
func NowUTC() time.Time {
	return nowFunc().UTC().Truncate(time.Microsecond)
}

// Freeze pins NowUTC to t and returns a function restoring the real clock.
func Freeze(t time.Time) (restore func()) {
	nowFunc = func() time.Time { return t }
	return func() { nowFunc = time.Now }
}
