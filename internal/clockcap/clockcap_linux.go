// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

package clockcap

import "golang.org/x/sys/unix"

// Available reports whether CLOCK_MONOTONIC is usable. The kernel is asked
// directly instead of assuming, the same check git's configure performs.
func Available() bool {
	var ts unix.Timespec
	return unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts) == nil
}
