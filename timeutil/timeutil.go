// Package timeutil provides the platform time conversions the rest of
// waitkit builds on: Duration/TimePoint split into (seconds, nanoseconds),
// and Windows FILETIME <-> time.Time using the 1601-to-1970 epoch offset.
package timeutil

import "time"

// windowsEpochOffsetSeconds is the gap between the Windows FILETIME epoch
// (1601-01-01) and the Unix epoch (1970-01-01), in seconds.
const windowsEpochOffsetSeconds = 11644473600

// filetimeTicksPerSecond is the number of 100ns FILETIME ticks per second.
const filetimeTicksPerSecond = 10000000

// SplitDuration decomposes d into whole seconds and the remaining
// nanoseconds, matching the Duration <-> (seconds, nanoseconds) contract.
func SplitDuration(d time.Duration) (seconds int64, nanos int64) {
	seconds = int64(d / time.Second)
	nanos = int64(d % time.Second)
	return seconds, nanos
}

// JoinDuration is the inverse of SplitDuration.
func JoinDuration(seconds, nanos int64) time.Duration {
	return time.Duration(seconds)*time.Second + time.Duration(nanos)
}

// ToFILETIME converts t to the raw 100ns-tick count since the Windows
// FILETIME epoch.
func ToFILETIME(t time.Time) int64 {
	unixSeconds := t.Unix()
	windowsSeconds := unixSeconds + windowsEpochOffsetSeconds
	ticks := windowsSeconds*filetimeTicksPerSecond + int64(t.Nanosecond())/100
	return ticks
}

// FromFILETIME converts a raw 100ns-tick FILETIME value to a time.Time.
func FromFILETIME(ticks int64) time.Time {
	windowsSeconds := ticks / filetimeTicksPerSecond
	remainderTicks := ticks % filetimeTicksPerSecond
	unixSeconds := windowsSeconds - windowsEpochOffsetSeconds
	return time.Unix(unixSeconds, remainderTicks*100)
}
