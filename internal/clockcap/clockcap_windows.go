// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

package clockcap

// Available reports whether a monotonic clock source is usable. Windows
// always provides one through QueryPerformanceCounter.
func Available() bool {
	return true
}
