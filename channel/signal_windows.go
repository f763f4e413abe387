//go:build windows

package channel

import "fmt"

// SignalName returns a canonical string for a signal number on Windows,
// where there is no realtime signal range. Signal delivery itself goes
// through the same os/signal plumbing as on POSIX (see signal.go).
func SignalName(n int) string {
	switch n {
	case 2:
		return "SIGINT"
	case 15:
		return "SIGTERM"
	default:
		return fmt.Sprintf("signal %d", n)
	}
}
