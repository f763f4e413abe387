//go:build unix

package channel

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// realtimeBase and realtimeCount bound Linux's SIGRTMIN..SIGRTMAX range so
// SignalName can render "SIGRTMIN+n".
const (
	realtimeBase  = 34 // SIGRTMIN on Linux/glibc; close enough cross-unix for display purposes.
	realtimeCount = 32
)

// SignalName returns the canonical "SIG…" string for a signal number,
// including "SIGRTMIN+n" for realtime signals, grounded on
// golang.org/x/sys/unix's signal name table.
func SignalName(n int) string {
	if n >= realtimeBase && n < realtimeBase+realtimeCount {
		return fmt.Sprintf("SIGRTMIN+%d", n-realtimeBase)
	}
	if name := unix.SignalName(unix.Signal(n)); name != "" {
		return name
	}
	return fmt.Sprintf("signal %d", n)
}
