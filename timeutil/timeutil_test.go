package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitJoinDurationRoundTrips(t *testing.T) {
	t.Parallel()
	d := 90*time.Second + 250*time.Millisecond
	sec, nanos := SplitDuration(d)
	assert.Equal(t, int64(90), sec)
	assert.Equal(t, JoinDuration(sec, nanos), d)
}

func TestFILETIMERoundTrip(t *testing.T) {
	t.Parallel()
	want := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	got := FromFILETIME(ToFILETIME(want))
	assert.True(t, want.Equal(got))
}

func TestFILETIMEEpochOffset(t *testing.T) {
	t.Parallel()
	unixEpoch := time.Unix(0, 0).UTC()
	ticks := ToFILETIME(unixEpoch)
	assert.Equal(t, int64(windowsEpochOffsetSeconds*filetimeTicksPerSecond), ticks)
}
